package request

// UpdateDraftRequest is a partial edit: only present fields are applied.
type UpdateDraftRequest struct {
	DeliveryType  *string `json:"delivery_type,omitempty" binding:"omitempty,oneof=HOME_DELIVERY PICKUP_AT_STORE"`
	AddressID     *int64  `json:"address_id,omitempty"`
	StoreID       *int64  `json:"store_id,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty" binding:"omitempty,oneof=CASH ONLINE"`
	Note          *string `json:"note,omitempty"`
}
