package response

import (
	"log/slog"
	"time"

	"storefront-checkout/internal/domain/order"

	"github.com/jinzhu/copier"
)

type OrderItemResponse struct {
	ProductUnitID   int64   `json:"product_unit_id"`
	ProductName     string  `json:"product_name"`
	UnitName        string  `json:"unit_name"`
	Barcode         string  `json:"barcode"`
	Quantity        int     `json:"quantity"`
	OriginalPrice   int64   `json:"original_price"`
	DiscountedPrice int64   `json:"discounted_price"`
	DiscountAmount  int64   `json:"discount_amount"`
	LineTotal       int64   `json:"line_total"`
	PromotionInfo   *string `json:"promotion_info,omitempty"`
}

type CustomerInfoResponse struct {
	CustomerID           int64  `json:"customer_id"`
	CustomerName         string `json:"customer_name"`
	PhoneNumber          string `json:"phone_number"`
	Email                string `json:"email"`
	CurrentLoyaltyPoints int64  `json:"current_loyalty_points"`
}

type DeliveryInfoResponse struct {
	RecipientName   string  `json:"recipient_name"`
	DeliveryPhone   string  `json:"delivery_phone"`
	DeliveryAddress string  `json:"delivery_address"`
	DeliveryNote    *string `json:"delivery_note,omitempty"`
}

type OrderResponse struct {
	OrderID       int64   `json:"order_id"`
	OrderCode     string  `json:"order_code"`
	Status        string  `json:"status"`
	DeliveryType  string  `json:"delivery_type"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"`
	TransactionID *string `json:"transaction_id,omitempty"`

	Customer CustomerInfoResponse  `json:"customer"`
	Delivery *DeliveryInfoResponse `json:"delivery,omitempty"`
	Items    []OrderItemResponse   `json:"items"`

	SubTotal              int64 `json:"sub_total"`
	TotalDiscount         int64 `json:"total_discount"`
	ShippingFee           int64 `json:"shipping_fee"`
	LoyaltyPointsUsed     int64 `json:"loyalty_points_used"`
	LoyaltyPointsDiscount int64 `json:"loyalty_points_discount"`
	TotalAmount           int64 `json:"total_amount"`
	AmountPaid            int64 `json:"amount_paid"`
	ChangeAmount          int64 `json:"change_amount"`
	LoyaltyPointsEarned   int64 `json:"loyalty_points_earned"`

	OnlinePayment     *OnlinePaymentResponse     `json:"online_payment,omitempty"`
	AppliedPromotions []AppliedPromotionResponse `json:"applied_promotions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderListItemResponse struct {
	OrderID       int64     `json:"order_id"`
	OrderCode     string    `json:"order_code"`
	Status        string    `json:"status"`
	DeliveryType  string    `json:"delivery_type"`
	PaymentMethod string    `json:"payment_method"`
	TotalAmount   int64     `json:"total_amount"`
	ItemCount     int       `json:"item_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromOrder(o *order.Order) *OrderResponse {
	resp := &OrderResponse{}
	if err := copier.Copy(resp, o); err != nil {
		slog.Warn("failed to map order", "error", err)
	}

	resp.Status = string(o.Status)
	resp.DeliveryType = string(o.DeliveryType)
	resp.PaymentMethod = string(o.PaymentMethod)

	if o.OnlinePayment != nil {
		resp.OnlinePayment = &OnlinePaymentResponse{
			TransactionID:  o.OnlinePayment.TransactionID,
			Provider:       string(o.OnlinePayment.Provider),
			PaymentStatus:  o.OnlinePayment.PaymentStatus,
			PaymentURL:     o.OnlinePayment.PaymentURL,
			QRCode:         o.OnlinePayment.QRCode,
			ExpirationTime: o.OnlinePayment.ExpirationTime,
		}
	}
	if len(o.AppliedPromotions) > 0 {
		promos := make([]AppliedPromotionResponse, len(o.AppliedPromotions))
		for i, p := range o.AppliedPromotions {
			promos[i] = fromPromotion(p)
		}
		resp.AppliedPromotions = promos
	}
	return resp
}

func FromOrderList(orders []*order.Order) []OrderListItemResponse {
	items := make([]OrderListItemResponse, len(orders))
	for i, o := range orders {
		items[i] = OrderListItemResponse{
			OrderID:       o.OrderID,
			OrderCode:     o.OrderCode,
			Status:        string(o.Status),
			DeliveryType:  string(o.DeliveryType),
			PaymentMethod: string(o.PaymentMethod),
			TotalAmount:   o.TotalAmount,
			ItemCount:     len(o.Items),
			CreatedAt:     o.CreatedAt,
		}
	}
	return items
}
