package commerce

import (
	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/order"
)

func promotionToDomain(dto appliedPromotionDTO) cart.AppliedPromotion {
	return cart.AppliedPromotion{
		PromotionID:       dto.PromotionID,
		PromotionName:     dto.PromotionName,
		PromotionDetailID: dto.PromotionDetailID,
		PromotionSummary:  dto.PromotionSummary,
		DiscountType:      cart.DiscountType(dto.DiscountType),
		DiscountValue:     dto.DiscountValue,
		SourceLineItemID:  dto.SourceLineItemID,
	}
}

func promotionsToDomain(dtos []appliedPromotionDTO) []cart.AppliedPromotion {
	if len(dtos) == 0 {
		return nil
	}
	out := make([]cart.AppliedPromotion, len(dtos))
	for i, dto := range dtos {
		out[i] = promotionToDomain(dto)
	}
	return out
}

func cartToDomain(dto cartDTO) *cart.Snapshot {
	items := make([]cart.LineItem, len(dto.Items))
	for i, it := range dto.Items {
		var promo *cart.AppliedPromotion
		if it.PromotionApplied != nil {
			p := promotionToDomain(*it.PromotionApplied)
			promo = &p
		}
		items[i] = cart.LineItem{
			LineItemID:    it.LineItemID,
			ProductUnitID: it.ProductUnitID,
			ProductName:   it.ProductName,
			UnitName:      it.UnitName,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			OriginalTotal: it.OriginalTotal,
			FinalTotal:    it.FinalTotal,
			ImageURL:      it.ImageURL,
			StockQuantity: it.StockQuantity,
			Promotion:     promo,
			CreatedAt:     it.CreatedAt,
			UpdatedAt:     it.UpdatedAt,
		}
	}
	return &cart.Snapshot{
		CartID:                 dto.CartID,
		CustomerID:             dto.CustomerID,
		Items:                  items,
		TotalItems:             dto.TotalItems,
		SubTotal:               dto.SubTotal,
		LineItemDiscount:       dto.LineItemDiscount,
		OrderDiscount:          dto.OrderDiscount,
		TotalPayable:           dto.TotalPayable,
		AppliedOrderPromotions: promotionsToDomain(dto.AppliedOrderPromotions),
		CreatedAt:              dto.CreatedAt,
		UpdatedAt:              dto.UpdatedAt,
	}
}

// canonicalStatus resolves the backend's inconsistent status field naming.
// orderStatus wins when both are present.
func (dto orderDTO) canonicalStatus() (order.Status, error) {
	raw := dto.OrderStatus
	if raw == "" {
		raw = dto.AltStatus
	}
	return order.ParseStatus(raw)
}

func orderToDomain(dto orderDTO) (*order.Order, error) {
	status, err := dto.canonicalStatus()
	if err != nil {
		return nil, wrapGatewayErr(KindBadResponse, "unrecognized order status", err)
	}

	items := make([]order.Item, len(dto.OrderItems))
	for i, it := range dto.OrderItems {
		items[i] = order.Item{
			ProductUnitID:   it.ProductUnitID,
			ProductName:     it.ProductName,
			UnitName:        it.UnitName,
			Barcode:         it.Barcode,
			Quantity:        it.Quantity,
			OriginalPrice:   it.OriginalPrice,
			DiscountedPrice: it.DiscountedPrice,
			DiscountAmount:  it.DiscountAmount,
			LineTotal:       it.LineTotal,
			PromotionInfo:   it.PromotionInfo,
		}
	}

	var delivery *order.DeliveryInfo
	if dto.DeliveryInfo != nil {
		delivery = &order.DeliveryInfo{
			RecipientName:   dto.DeliveryInfo.RecipientName,
			DeliveryPhone:   dto.DeliveryInfo.DeliveryPhone,
			DeliveryAddress: dto.DeliveryInfo.DeliveryAddress,
			DeliveryNote:    dto.DeliveryInfo.DeliveryNote,
		}
	}

	var payment *order.OnlinePaymentInfo
	if dto.OnlinePaymentInfo != nil {
		payment = &order.OnlinePaymentInfo{
			TransactionID:  dto.OnlinePaymentInfo.TransactionID,
			Provider:       order.PaymentProvider(dto.OnlinePaymentInfo.PaymentProvider),
			PaymentStatus:  dto.OnlinePaymentInfo.PaymentStatus,
			PaymentURL:     dto.OnlinePaymentInfo.PaymentURL,
			QRCode:         dto.OnlinePaymentInfo.QRCode,
			ExpirationTime: dto.OnlinePaymentInfo.ExpirationTime,
		}
	}

	return &order.Order{
		OrderID:       dto.OrderID,
		OrderCode:     dto.OrderCode,
		Status:        status,
		DeliveryType:  order.DeliveryType(dto.DeliveryType),
		PaymentMethod: order.PaymentMethod(dto.PaymentMethod),
		PaymentStatus: dto.PaymentStatus,
		TransactionID: dto.TransactionID,
		Customer: order.CustomerInfo{
			CustomerID:           dto.CustomerInfo.CustomerID,
			CustomerName:         dto.CustomerInfo.CustomerName,
			PhoneNumber:          dto.CustomerInfo.PhoneNumber,
			Email:                dto.CustomerInfo.Email,
			CurrentLoyaltyPoints: dto.CustomerInfo.CurrentLoyaltyPoints,
		},
		Delivery:              delivery,
		Items:                 items,
		SubTotal:              dto.Subtotal,
		TotalDiscount:         dto.TotalDiscount,
		ShippingFee:           dto.ShippingFee,
		LoyaltyPointsUsed:     dto.LoyaltyPointsUsed,
		LoyaltyPointsDiscount: dto.LoyaltyPointsDiscount,
		TotalAmount:           dto.TotalAmount,
		AmountPaid:            dto.AmountPaid,
		ChangeAmount:          dto.ChangeAmount,
		LoyaltyPointsEarned:   dto.LoyaltyPointsEarned,
		OnlinePayment:         payment,
		AppliedPromotions:     promotionsToDomain(dto.AppliedPromotions),
		CreatedAt:             dto.CreatedAt,
		UpdatedAt:             dto.UpdatedAt,
	}, nil
}
