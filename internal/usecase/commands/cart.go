package commands

import (
	"context"
	"log/slog"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"
)

var (
	ErrLineNotFound      = errs.New("cart line not found")
	ErrGiftLineImmutable = errs.New("gift line quantity cannot be changed")
	ErrQuantityLimit     = errs.New("quantity limit reached")
)

type CartCommands interface {
	// SetQuantity clamps the requested quantity to [0, stock] before anything
	// touches the network. A request that leaves the clamped quantity
	// unchanged is a local no-op reported as ErrQuantityLimit. Dropping a
	// non-gift line to zero is reinterpreted as removal.
	SetQuantity(ctx context.Context, token, customer string, productUnitID int64, quantity int) (*cart.Snapshot, error)
	Remove(ctx context.Context, token, customer string, productUnitID int64) (*cart.Snapshot, error)
	Clear(ctx context.Context, token, customer string) error
}

type cartUseCaseImpl struct {
	gateway CartGateway
	mirror  *shared.CartMirror
	queries queries.CartQueries
	logger  *slog.Logger
}

func NewCartCommands(gateway CartGateway, mirror *shared.CartMirror, cartQueries queries.CartQueries, logger *slog.Logger) CartCommands {
	return &cartUseCaseImpl{
		gateway: gateway,
		mirror:  mirror,
		queries: cartQueries,
		logger:  logger,
	}
}

func (uc *cartUseCaseImpl) SetQuantity(ctx context.Context, token, customer string, productUnitID int64, quantity int) (*cart.Snapshot, error) {
	snap, err := uc.queries.Get(ctx, token, customer)
	if err != nil {
		return nil, err
	}

	line, ok := snap.Line(productUnitID)
	if !ok {
		return nil, ErrLineNotFound
	}
	if line.IsGift() {
		return nil, ErrGiftLineImmutable
	}

	clamped := line.ClampQuantity(quantity)
	if clamped == line.Quantity {
		// Nothing to send; the caller still gets a "limit reached" signal.
		return snap, ErrQuantityLimit
	}

	if clamped == 0 {
		// An explicit deletion event, so gift protection and order history
		// see a removal rather than a zero-quantity line.
		return uc.Remove(ctx, token, customer, productUnitID)
	}

	refreshed, err := uc.gateway.SetLineQuantity(ctx, token, productUnitID, clamped)
	if err != nil {
		// Mirror keeps the prior snapshot: stale but consistent.
		return nil, err
	}
	uc.mirror.Set(customer, refreshed)
	return refreshed, nil
}

func (uc *cartUseCaseImpl) Remove(ctx context.Context, token, customer string, productUnitID int64) (*cart.Snapshot, error) {
	snap, err := uc.queries.Get(ctx, token, customer)
	if err != nil {
		return nil, err
	}

	line, ok := snap.Line(productUnitID)
	if !ok {
		return nil, ErrLineNotFound
	}
	if line.IsGift() {
		return nil, ErrGiftLineImmutable
	}

	refreshed, err := uc.gateway.RemoveLine(ctx, token, productUnitID)
	if err != nil {
		return nil, err
	}
	uc.mirror.Set(customer, refreshed)
	return refreshed, nil
}

func (uc *cartUseCaseImpl) Clear(ctx context.Context, token, customer string) error {
	if err := uc.gateway.ClearCart(ctx, token); err != nil {
		return err
	}
	uc.mirror.Invalidate(customer)
	return nil
}
