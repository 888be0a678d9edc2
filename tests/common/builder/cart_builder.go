package builder

import (
	"time"

	"storefront-checkout/internal/domain/cart"
)

// CartBuilder assembles cart snapshots the way the backend would compute
// them. Defaults: one regular line, quantity 2 of 10 in stock.
type CartBuilder struct {
	snap cart.Snapshot
}

func NewCartBuilder() *CartBuilder {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &CartBuilder{
		snap: cart.Snapshot{
			CartID:     101,
			CustomerID: 7,
			Items: []cart.LineItem{
				{
					LineItemID:    1001,
					ProductUnitID: 501,
					ProductName:   "Jasmine Rice 5kg",
					UnitName:      "bag",
					Quantity:      2,
					UnitPrice:     125000,
					OriginalTotal: 250000,
					FinalTotal:    250000,
					StockQuantity: 10,
					CreatedAt:     now,
					UpdatedAt:     now,
				},
			},
			TotalItems:   2,
			SubTotal:     250000,
			TotalPayable: 250000,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

func (b *CartBuilder) WithEmpty() *CartBuilder {
	b.snap.Items = nil
	b.snap.TotalItems = 0
	b.snap.SubTotal = 0
	b.snap.TotalPayable = 0
	return b
}

func (b *CartBuilder) WithLine(productUnitID int64, quantity, stock int) *CartBuilder {
	b.snap.Items = append(b.snap.Items, cart.LineItem{
		LineItemID:    2000 + productUnitID,
		ProductUnitID: productUnitID,
		ProductName:   "Extra Product",
		UnitName:      "unit",
		Quantity:      quantity,
		UnitPrice:     50000,
		OriginalTotal: int64(quantity) * 50000,
		FinalTotal:    int64(quantity) * 50000,
		StockQuantity: stock,
	})
	b.snap.TotalItems += quantity
	return b
}

// WithGiftLine appends a line carrying a 100% percentage promotion.
func (b *CartBuilder) WithGiftLine(productUnitID int64) *CartBuilder {
	b.snap.Items = append(b.snap.Items, cart.LineItem{
		LineItemID:    3000 + productUnitID,
		ProductUnitID: productUnitID,
		ProductName:   "Gift Tote Bag",
		UnitName:      "piece",
		Quantity:      1,
		UnitPrice:     30000,
		OriginalTotal: 30000,
		FinalTotal:    0,
		StockQuantity: 1,
		Promotion: &cart.AppliedPromotion{
			PromotionID:      "PROMO-GIFT",
			PromotionName:    "Free tote with rice",
			PromotionSummary: "Buy rice, get a tote",
			DiscountType:     cart.DiscountPercentage,
			DiscountValue:    100,
		},
	})
	b.snap.TotalItems++
	return b
}

func (b *CartBuilder) WithQuantity(productUnitID int64, quantity int) *CartBuilder {
	for i := range b.snap.Items {
		if b.snap.Items[i].ProductUnitID == productUnitID {
			b.snap.Items[i].Quantity = quantity
		}
	}
	return b
}

func (b *CartBuilder) Build() *cart.Snapshot {
	snap := b.snap
	return &snap
}
