package commerce

import (
	"context"
	"fmt"
	"net/http"

	"storefront-checkout/internal/domain/cart"
)

func (c *Client) FetchCart(ctx context.Context, token string) (*cart.Snapshot, error) {
	var dto cartDTO
	if err := c.do(ctx, token, http.MethodGet, "/cart", nil, &dto); err != nil {
		return nil, err
	}
	return cartToDomain(dto), nil
}

type updateCartItemRequest struct {
	ProductUnitID int64 `json:"productUnitId"`
	Quantity      int   `json:"quantity"`
}

func (c *Client) SetLineQuantity(ctx context.Context, token string, productUnitID int64, quantity int) (*cart.Snapshot, error) {
	body := updateCartItemRequest{ProductUnitID: productUnitID, Quantity: quantity}
	path := fmt.Sprintf("/cart/items/%d", productUnitID)

	var dto cartDTO
	if err := c.do(ctx, token, http.MethodPut, path, body, &dto); err != nil {
		return nil, err
	}
	return cartToDomain(dto), nil
}

// RemoveLine deletes a line and re-fetches the cart: the delete response
// body is not trusted to carry the recomputed totals.
func (c *Client) RemoveLine(ctx context.Context, token string, productUnitID int64) (*cart.Snapshot, error) {
	path := fmt.Sprintf("/cart/items/%d", productUnitID)
	if err := c.do(ctx, token, http.MethodDelete, path, nil, nil); err != nil {
		return nil, err
	}
	return c.FetchCart(ctx, token)
}

func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, token, http.MethodDelete, "/cart", nil, nil)
}
