package response

import (
	"log/slog"
	"time"

	"storefront-checkout/internal/domain/cart"

	"github.com/jinzhu/copier"
)

type AppliedPromotionResponse struct {
	PromotionID      string `json:"promotion_id"`
	PromotionName    string `json:"promotion_name"`
	PromotionSummary string `json:"promotion_summary"`
	DiscountType     string `json:"discount_type"`
	DiscountValue    int64  `json:"discount_value"`
	SourceLineItemID *int64 `json:"source_line_item_id,omitempty"`
}

type CartLineResponse struct {
	LineItemID    int64                     `json:"line_item_id"`
	ProductUnitID int64                     `json:"product_unit_id"`
	ProductName   string                    `json:"product_name"`
	UnitName      string                    `json:"unit_name"`
	Quantity      int                       `json:"quantity"`
	UnitPrice     int64                     `json:"unit_price"`
	OriginalTotal int64                     `json:"original_total"`
	FinalTotal    int64                     `json:"final_total"`
	ImageURL      *string                   `json:"image_url,omitempty"`
	StockQuantity int                       `json:"stock_quantity"`
	Promotion     *AppliedPromotionResponse `json:"promotion,omitempty"`

	// Affordance flags so screens never re-derive gift protection.
	IsGift       bool `json:"is_gift"`
	CanIncrement bool `json:"can_increment"`
	CanDecrement bool `json:"can_decrement"`
}

type CartResponse struct {
	CartID          int64                      `json:"cart_id"`
	Items           []CartLineResponse         `json:"items"`
	TotalItems      int                        `json:"total_items"`
	SubTotal        int64                      `json:"sub_total"`
	LineDiscount    int64                      `json:"line_item_discount"`
	OrderDiscount   int64                      `json:"order_discount"`
	TotalPayable    int64                      `json:"total_payable"`
	OrderPromotions []AppliedPromotionResponse `json:"applied_order_promotions,omitempty"`
	UpdatedAt       time.Time                  `json:"updated_at"`

	// Set when a mutation was a no-op (e.g. stock ceiling reached).
	Notice string `json:"notice,omitempty"`
}

func FromCartSnapshot(snap *cart.Snapshot) *CartResponse {
	resp := &CartResponse{
		CartID:        snap.CartID,
		TotalItems:    snap.TotalItems,
		SubTotal:      snap.SubTotal,
		LineDiscount:  snap.LineItemDiscount,
		OrderDiscount: snap.OrderDiscount,
		TotalPayable:  snap.TotalPayable,
		UpdatedAt:     snap.UpdatedAt,
	}

	resp.Items = make([]CartLineResponse, len(snap.Items))
	for i, line := range snap.Items {
		item := CartLineResponse{}
		if err := copier.Copy(&item, &line); err != nil {
			slog.Warn("failed to map cart line", "error", err)
		}
		item.IsGift = line.IsGift()
		item.CanIncrement = !line.IsGift() && line.Quantity < line.StockQuantity
		item.CanDecrement = !line.IsGift() && line.Quantity > 0
		resp.Items[i] = item
	}

	for _, p := range snap.AppliedOrderPromotions {
		resp.OrderPromotions = append(resp.OrderPromotions, fromPromotion(p))
	}
	return resp
}

func fromPromotion(p cart.AppliedPromotion) AppliedPromotionResponse {
	return AppliedPromotionResponse{
		PromotionID:      p.PromotionID,
		PromotionName:    p.PromotionName,
		PromotionSummary: p.PromotionSummary,
		DiscountType:     string(p.DiscountType),
		DiscountValue:    p.DiscountValue,
		SourceLineItemID: p.SourceLineItemID,
	}
}
