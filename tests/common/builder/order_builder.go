package builder

import (
	"time"

	"storefront-checkout/internal/domain/order"
)

// OrderBuilder assembles orders as the backend returns them from checkout.
// Defaults: an UNPAID online order with a payable descriptor.
type OrderBuilder struct {
	ord order.Order
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	return &OrderBuilder{
		ord: order.Order{
			OrderID:       9001,
			OrderCode:     "ORD-20250601-9001",
			Status:        order.StatusUnpaid,
			DeliveryType:  order.HomeDelivery,
			PaymentMethod: order.PaymentOnline,
			PaymentStatus: "PENDING",
			Customer: order.CustomerInfo{
				CustomerID:   7,
				CustomerName: "Nguyen Van A",
				PhoneNumber:  "0900000001",
				Email:        "a@example.com",
			},
			Items: []order.Item{
				{
					ProductUnitID: 501,
					ProductName:   "Jasmine Rice 5kg",
					UnitName:      "bag",
					Quantity:      2,
					OriginalPrice: 125000,
					LineTotal:     250000,
				},
			},
			SubTotal:    250000,
			TotalAmount: 250000,
			OnlinePayment: &order.OnlinePaymentInfo{
				TransactionID:  "TXN-778",
				Provider:       order.ProviderPayOS,
				PaymentStatus:  "PENDING",
				PaymentURL:     "https://pay.example.com/TXN-778",
				QRCode:         "00020101021238570010A000000727",
				ExpirationTime: now.Add(15 * time.Minute),
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (b *OrderBuilder) WithStatus(status order.Status) *OrderBuilder {
	b.ord.Status = status
	return b
}

func (b *OrderBuilder) WithCash() *OrderBuilder {
	b.ord.PaymentMethod = order.PaymentCash
	b.ord.OnlinePayment = nil
	return b
}

// WithoutPayable keeps the online method but strips everything a pay sheet
// could open.
func (b *OrderBuilder) WithoutPayable() *OrderBuilder {
	b.ord.OnlinePayment = nil
	return b
}

func (b *OrderBuilder) WithID(orderID int64) *OrderBuilder {
	b.ord.OrderID = orderID
	return b
}

func (b *OrderBuilder) Build() *order.Order {
	ord := b.ord
	return &ord
}
