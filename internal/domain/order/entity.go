package order

import (
	"time"

	"storefront-checkout/internal/domain/cart"
)

// Order is created once by the backend and only ever re-read afterwards.
type Order struct {
	OrderID       int64
	OrderCode     string
	Status        Status
	DeliveryType  DeliveryType
	PaymentMethod PaymentMethod
	PaymentStatus string
	TransactionID *string

	Customer CustomerInfo
	Delivery *DeliveryInfo
	Items    []Item

	SubTotal              int64
	TotalDiscount         int64
	ShippingFee           int64
	LoyaltyPointsUsed     int64
	LoyaltyPointsDiscount int64
	TotalAmount           int64
	AmountPaid            int64
	ChangeAmount          int64
	LoyaltyPointsEarned   int64

	OnlinePayment     *OnlinePaymentInfo
	AppliedPromotions []cart.AppliedPromotion

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CustomerInfo struct {
	CustomerID           int64
	CustomerName         string
	PhoneNumber          string
	Email                string
	CurrentLoyaltyPoints int64
}

type DeliveryInfo struct {
	RecipientName   string
	DeliveryPhone   string
	DeliveryAddress string
	DeliveryNote    *string
}

type Item struct {
	ProductUnitID   int64
	ProductName     string
	UnitName        string
	Barcode         string
	Quantity        int
	OriginalPrice   int64
	DiscountedPrice int64
	DiscountAmount  int64
	LineTotal       int64
	PromotionInfo   *string
}

// OnlinePaymentInfo is the descriptor returned when an order must be paid
// through an external provider before the backend moves it off UNPAID.
type OnlinePaymentInfo struct {
	TransactionID  string
	Provider       PaymentProvider
	PaymentStatus  string
	PaymentURL     string
	QRCode         string
	ExpirationTime time.Time
}

// HasPayable reports whether the descriptor carries anything a pay sheet
// could present. Mirrors the check screens make before opening one.
func (p *OnlinePaymentInfo) HasPayable() bool {
	return p != nil && (p.PaymentURL != "" || p.QRCode != "")
}
