// Package checkout holds the ephemeral order draft a customer assembles
// before submission. Drafts are never persisted.
package checkout

import (
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/pkg/errs"
)

var (
	ErrNoAddressSelected   = errs.New("no delivery address selected")
	ErrNoStoreSelected     = errs.New("no pickup store selected")
	ErrUnknownDeliveryType = errs.New("unknown delivery type")
	ErrUnknownPayment      = errs.New("unknown payment method")
)

// FulfillmentSelection is a tagged union over the two delivery modes.
// Switching the mode keeps the other mode's stored target so flipping back
// does not force the customer to re-pick.
type FulfillmentSelection struct {
	Mode      order.DeliveryType
	AddressID *int64
	StoreID   *int64
}

func NewFulfillmentSelection() FulfillmentSelection {
	return FulfillmentSelection{Mode: order.HomeDelivery}
}

func (f *FulfillmentSelection) SelectHomeDelivery(addressID *int64) {
	f.Mode = order.HomeDelivery
	if addressID != nil {
		f.AddressID = addressID
	}
}

func (f *FulfillmentSelection) SelectPickup(storeID *int64) {
	f.Mode = order.PickupAtStore
	if storeID != nil {
		f.StoreID = storeID
	}
}

// Target returns the id of the active mode's concrete target, if any.
func (f FulfillmentSelection) Target() (int64, bool) {
	switch f.Mode {
	case order.HomeDelivery:
		if f.AddressID != nil {
			return *f.AddressID, true
		}
	case order.PickupAtStore:
		if f.StoreID != nil {
			return *f.StoreID, true
		}
	}
	return 0, false
}

// Validate checks only the active mode; the inactive mode's target is
// irrelevant until the customer switches back.
func (f FulfillmentSelection) Validate() error {
	switch f.Mode {
	case order.HomeDelivery:
		if f.AddressID == nil {
			return ErrNoAddressSelected
		}
	case order.PickupAtStore:
		if f.StoreID == nil {
			return ErrNoStoreSelected
		}
	default:
		return ErrUnknownDeliveryType
	}
	return nil
}

type Draft struct {
	Fulfillment   FulfillmentSelection
	PaymentMethod order.PaymentMethod
	Note          string
}

func NewDraft() Draft {
	return Draft{
		Fulfillment:   NewFulfillmentSelection(),
		PaymentMethod: order.PaymentOnline,
	}
}

func (d Draft) Validate() error {
	if !d.PaymentMethod.Valid() {
		return ErrUnknownPayment
	}
	return d.Fulfillment.Validate()
}
