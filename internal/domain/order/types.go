package order

import "storefront-checkout/internal/pkg/errs"

var ErrUnknownStatus = errs.New("unknown order status")

// Status is the backend-owned order lifecycle value. The client assumes no
// ordering between statuses; the only predicate it relies on is
// AwaitingPayment.
type Status string

const (
	StatusUnpaid    Status = "UNPAID"
	StatusPending   Status = "PENDING"
	StatusPrepared  Status = "PREPARED"
	StatusShipping  Status = "SHIPPING"
	StatusDelivered Status = "DELIVERED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

var validStatuses = map[Status]struct{}{
	StatusUnpaid:    {},
	StatusPending:   {},
	StatusPrepared:  {},
	StatusShipping:  {},
	StatusDelivered: {},
	StatusCompleted: {},
	StatusCancelled: {},
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := validStatuses[st]; !ok {
		return "", errs.Mark(errs.New("order status "+s), ErrUnknownStatus)
	}
	return st, nil
}

// AwaitingPayment is the sole non-terminal value for the payment
// reconciliation loop. Everything else stops polling.
func (s Status) AwaitingPayment() bool {
	return s == StatusUnpaid
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentOnline PaymentMethod = "ONLINE"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentOnline
}

// SettlesImmediately reports whether a successful order creation needs no
// payment reconciliation.
func (m PaymentMethod) SettlesImmediately() bool {
	return m == PaymentCash
}

type DeliveryType string

const (
	HomeDelivery  DeliveryType = "HOME_DELIVERY"
	PickupAtStore DeliveryType = "PICKUP_AT_STORE"
)

func (d DeliveryType) Valid() bool {
	return d == HomeDelivery || d == PickupAtStore
}

type PaymentProvider string

const (
	ProviderMomo         PaymentProvider = "MOMO"
	ProviderVNPay        PaymentProvider = "VNPAY"
	ProviderPayOS        PaymentProvider = "PAYOS"
	ProviderBankTransfer PaymentProvider = "BANK_TRANSFER"
)
