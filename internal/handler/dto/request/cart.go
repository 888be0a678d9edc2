package request

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"gte=0"`
}
