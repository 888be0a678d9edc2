package response

import (
	"time"

	"storefront-checkout/internal/usecase/session"
)

type DraftResponse struct {
	DeliveryType  string  `json:"delivery_type"`
	AddressID     *int64  `json:"address_id,omitempty"`
	StoreID       *int64  `json:"store_id,omitempty"`
	PaymentMethod string  `json:"payment_method"`
	Note          string  `json:"note,omitempty"`
}

type OnlinePaymentResponse struct {
	TransactionID  string    `json:"transaction_id"`
	Provider       string    `json:"provider"`
	PaymentStatus  string    `json:"payment_status"`
	PaymentURL     string    `json:"payment_url,omitempty"`
	QRCode         string    `json:"qr_code,omitempty"`
	ExpirationTime time.Time `json:"expiration_time"`
}

type CheckoutStateResponse struct {
	Phase         string                 `json:"phase"`
	Draft         DraftResponse          `json:"draft"`
	Submittable   bool                   `json:"submittable"`
	OrderID       *int64                 `json:"order_id,omitempty"`
	OrderCode     string                 `json:"order_code,omitempty"`
	Payment       *OnlinePaymentResponse `json:"payment,omitempty"`
	SettledStatus *string                `json:"settled_status,omitempty"`
	LastError     string                 `json:"last_error,omitempty"`
}

func FromCheckoutView(v session.View) CheckoutStateResponse {
	resp := CheckoutStateResponse{
		Phase: string(v.Phase),
		Draft: DraftResponse{
			DeliveryType:  string(v.Draft.Fulfillment.Mode),
			AddressID:     v.Draft.Fulfillment.AddressID,
			StoreID:       v.Draft.Fulfillment.StoreID,
			PaymentMethod: string(v.Draft.PaymentMethod),
			Note:          v.Draft.Note,
		},
		Submittable: v.Submittable,
		OrderID:     v.OrderID,
		OrderCode:   v.OrderCode,
		LastError:   v.LastError,
	}

	if v.Payment != nil {
		resp.Payment = &OnlinePaymentResponse{
			TransactionID:  v.Payment.TransactionID,
			Provider:       string(v.Payment.Provider),
			PaymentStatus:  v.Payment.PaymentStatus,
			PaymentURL:     v.Payment.PaymentURL,
			QRCode:         v.Payment.QRCode,
			ExpirationTime: v.Payment.ExpirationTime,
		}
	}
	if v.SettledStatus != nil {
		status := string(*v.SettledStatus)
		resp.SettledStatus = &status
	}
	return resp
}
