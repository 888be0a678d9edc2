package readmodel

// Read models for the fulfillment pickers. These collaborators are
// read-only here; address/store management lives elsewhere.

type Address struct {
	AddressID      int64  `json:"address_id"`
	RecipientName  string `json:"recipient_name"`
	RecipientPhone string `json:"recipient_phone"`
	AddressLine    string `json:"address_line"`
	Ward           string `json:"ward"`
	City           string `json:"city"`
	IsDefault      bool   `json:"is_default"`
	Label          string `json:"label"`
	FullAddress    string `json:"full_address"`
}

type Store struct {
	StoreID     int64   `json:"store_id"`
	StoreCode   string  `json:"store_code"`
	StoreName   string  `json:"store_name"`
	Address     string  `json:"address"`
	Phone       *string `json:"phone,omitempty"`
	OpeningTime *string `json:"opening_time,omitempty"`
	ClosingTime *string `json:"closing_time,omitempty"`
	IsActive    bool    `json:"is_active"`
}
