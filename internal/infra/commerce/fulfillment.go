package commerce

import (
	"context"
	"net/http"

	"storefront-checkout/internal/usecase/readmodel"
)

func (c *Client) ListAddresses(ctx context.Context, token string) ([]readmodel.Address, error) {
	var dtos []addressDTO
	if err := c.do(ctx, token, http.MethodGet, "/my-addresses", nil, &dtos); err != nil {
		return nil, err
	}

	addresses := make([]readmodel.Address, len(dtos))
	for i, dto := range dtos {
		addresses[i] = readmodel.Address{
			AddressID:      dto.AddressID,
			RecipientName:  dto.RecipientName,
			RecipientPhone: dto.RecipientPhone,
			AddressLine:    dto.AddressLine,
			Ward:           dto.Ward,
			City:           dto.City,
			IsDefault:      dto.IsDefault,
			Label:          dto.Label,
			FullAddress:    dto.FullAddress,
		}
	}
	return addresses, nil
}

func (c *Client) ListStores(ctx context.Context, token string) ([]readmodel.Store, error) {
	var dtos []storeDTO
	if err := c.do(ctx, token, http.MethodGet, "/stores", nil, &dtos); err != nil {
		return nil, err
	}

	stores := make([]readmodel.Store, 0, len(dtos))
	for _, dto := range dtos {
		if !dto.IsActive {
			continue
		}
		stores = append(stores, readmodel.Store{
			StoreID:     dto.StoreID,
			StoreCode:   dto.StoreCode,
			StoreName:   dto.StoreName,
			Address:     dto.Address,
			Phone:       dto.Phone,
			OpeningTime: dto.OpeningTime,
			ClosingTime: dto.ClosingTime,
			IsActive:    dto.IsActive,
		})
	}
	return stores, nil
}
