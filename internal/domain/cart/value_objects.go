package cart

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

// AppliedPromotion is computed server-side; the client only ever displays it.
type AppliedPromotion struct {
	PromotionID       string
	PromotionName     string
	PromotionDetailID int64
	PromotionSummary  string
	DiscountType      DiscountType
	DiscountValue     int64
	// Set on order-level promotions triggered by a specific line.
	SourceLineItemID *int64
}

// IsFullDiscount reports a 100% percentage discount, which marks the line
// it is attached to as a gift line.
func (p AppliedPromotion) IsFullDiscount() bool {
	return p.DiscountType == DiscountPercentage && p.DiscountValue == 100
}
