package commerce

import "time"

// Wire shapes of the commerce backend, kept private to this package.

type appliedPromotionDTO struct {
	PromotionID       string `json:"promotionId"`
	PromotionName     string `json:"promotionName"`
	PromotionDetailID int64  `json:"promotionDetailId"`
	PromotionSummary  string `json:"promotionSummary"`
	DiscountType      string `json:"discountType"`
	DiscountValue     int64  `json:"discountValue"`
	SourceLineItemID  *int64 `json:"sourceLineItemId,omitempty"`
}

type cartItemDTO struct {
	LineItemID       int64                `json:"lineItemId"`
	ProductUnitID    int64                `json:"productUnitId"`
	ProductName      string               `json:"productName"`
	UnitName         string               `json:"unitName"`
	Quantity         int                  `json:"quantity"`
	UnitPrice        int64                `json:"unitPrice"`
	OriginalTotal    int64                `json:"originalTotal"`
	FinalTotal       int64                `json:"finalTotal"`
	ImageURL         *string              `json:"imageUrl"`
	StockQuantity    int                  `json:"stockQuantity"`
	HasPromotion     bool                 `json:"hasPromotion"`
	PromotionApplied *appliedPromotionDTO `json:"promotionApplied"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

type cartDTO struct {
	CartID                 int64                 `json:"cartId"`
	CustomerID             int64                 `json:"customerId"`
	Items                  []cartItemDTO         `json:"items"`
	TotalItems             int                   `json:"totalItems"`
	SubTotal               int64                 `json:"subTotal"`
	LineItemDiscount       int64                 `json:"lineItemDiscount"`
	OrderDiscount          int64                 `json:"orderDiscount"`
	TotalPayable           int64                 `json:"totalPayable"`
	AppliedOrderPromotions []appliedPromotionDTO `json:"appliedOrderPromotions"`
	CreatedAt              time.Time             `json:"createdAt"`
	UpdatedAt              time.Time             `json:"updatedAt"`
}

type customerInfoDTO struct {
	CustomerID           int64  `json:"customerId"`
	CustomerName         string `json:"customerName"`
	PhoneNumber          string `json:"phoneNumber"`
	Email                string `json:"email"`
	CurrentLoyaltyPoints int64  `json:"currentLoyaltyPoints"`
}

type deliveryInfoDTO struct {
	RecipientName   string  `json:"recipientName"`
	DeliveryPhone   string  `json:"deliveryPhone"`
	DeliveryAddress string  `json:"deliveryAddress"`
	DeliveryNote    *string `json:"deliveryNote,omitempty"`
}

type orderItemDTO struct {
	ProductUnitID   int64   `json:"productUnitId"`
	ProductName     string  `json:"productName"`
	UnitName        string  `json:"unitName"`
	Barcode         string  `json:"barcode"`
	Quantity        int     `json:"quantity"`
	OriginalPrice   int64   `json:"originalPrice"`
	DiscountedPrice int64   `json:"discountedPrice"`
	DiscountAmount  int64   `json:"discountAmount"`
	LineTotal       int64   `json:"lineTotal"`
	PromotionInfo   *string `json:"promotionInfo"`
}

type onlinePaymentInfoDTO struct {
	TransactionID   string    `json:"transactionId"`
	PaymentProvider string    `json:"paymentProvider"`
	PaymentStatus   string    `json:"paymentStatus"`
	PaymentURL      string    `json:"paymentUrl"`
	QRCode          string    `json:"qrCode"`
	ExpirationTime  time.Time `json:"expirationTime"`
}

// orderDTO accepts both status spellings the backend emits; exactly one
// canonical value leaves this package.
type orderDTO struct {
	OrderID       int64   `json:"orderId"`
	OrderCode     string  `json:"orderCode"`
	OrderStatus   string  `json:"orderStatus"`
	AltStatus     string  `json:"status"`
	DeliveryType  string  `json:"deliveryType"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	TransactionID *string `json:"transactionId"`

	CustomerInfo customerInfoDTO  `json:"customerInfo"`
	DeliveryInfo *deliveryInfoDTO `json:"deliveryInfo"`
	OrderItems   []orderItemDTO   `json:"orderItems"`

	Subtotal              int64 `json:"subtotal"`
	TotalDiscount         int64 `json:"totalDiscount"`
	ShippingFee           int64 `json:"shippingFee"`
	LoyaltyPointsUsed     int64 `json:"loyaltyPointsUsed"`
	LoyaltyPointsDiscount int64 `json:"loyaltyPointsDiscount"`
	TotalAmount           int64 `json:"totalAmount"`
	AmountPaid            int64 `json:"amountPaid"`
	ChangeAmount          int64 `json:"changeAmount"`
	LoyaltyPointsEarned   int64 `json:"loyaltyPointsEarned"`

	OnlinePaymentInfo *onlinePaymentInfoDTO `json:"onlinePaymentInfo"`
	AppliedPromotions []appliedPromotionDTO `json:"appliedPromotions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type addressDTO struct {
	AddressID      int64  `json:"addressId"`
	CustomerID     int64  `json:"customerId"`
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone"`
	AddressLine    string `json:"addressLine"`
	Ward           string `json:"ward"`
	City           string `json:"city"`
	IsDefault      bool   `json:"isDefault"`
	Label          string `json:"label"`
	FullAddress    string `json:"fullAddress"`
}

type storeDTO struct {
	StoreID     int64   `json:"storeId"`
	StoreCode   string  `json:"storeCode"`
	StoreName   string  `json:"storeName"`
	Address     string  `json:"address"`
	Phone       *string `json:"phone"`
	OpeningTime *string `json:"openingTime"`
	ClosingTime *string `json:"closingTime"`
	IsActive    bool    `json:"isActive"`
}
