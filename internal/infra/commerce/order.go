package commerce

import (
	"context"
	"fmt"
	"net/http"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/usecase/commands"
)

type createOrderRequest struct {
	DeliveryType  string `json:"deliveryType"`
	PaymentMethod string `json:"paymentMethod"`
	AddressID     *int64 `json:"addressId,omitempty"`
	StoreID       *int64 `json:"storeId,omitempty"`
	OrderNote     string `json:"orderNote,omitempty"`
}

func (c *Client) CreateOrder(ctx context.Context, token string, params commands.CreateOrderParams) (*order.Order, error) {
	body := createOrderRequest{
		DeliveryType:  string(params.DeliveryType),
		PaymentMethod: string(params.PaymentMethod),
		AddressID:     params.AddressID,
		StoreID:       params.StoreID,
		OrderNote:     params.Note,
	}

	var dto orderDTO
	if err := c.do(ctx, token, http.MethodPost, "/checkout", body, &dto); err != nil {
		return nil, err
	}
	return orderToDomain(dto)
}

func (c *Client) FetchOrder(ctx context.Context, token string, orderID int64) (*order.Order, error) {
	path := fmt.Sprintf("/checkout/%d", orderID)

	var dto orderDTO
	if err := c.do(ctx, token, http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	return orderToDomain(dto)
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]*order.Order, error) {
	var dtos []orderDTO
	if err := c.do(ctx, token, http.MethodGet, "/checkout", nil, &dtos); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
