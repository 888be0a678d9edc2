package cart

import "time"

// Snapshot is the client's view of the server-computed cart. All monetary
// fields are owned by the commerce backend; nothing here recomputes them.
type Snapshot struct {
	CartID                 int64
	CustomerID             int64
	Items                  []LineItem
	TotalItems             int
	SubTotal               int64
	LineItemDiscount       int64
	OrderDiscount          int64
	TotalPayable           int64
	AppliedOrderPromotions []AppliedPromotion
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (s *Snapshot) IsEmpty() bool {
	return s == nil || s.TotalItems == 0 || len(s.Items) == 0
}

func (s *Snapshot) Line(productUnitID int64) (*LineItem, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Items {
		if s.Items[i].ProductUnitID == productUnitID {
			return &s.Items[i], true
		}
	}
	return nil, false
}

type LineItem struct {
	LineItemID    int64
	ProductUnitID int64
	ProductName   string
	UnitName      string
	Quantity      int
	UnitPrice     int64
	OriginalTotal int64
	FinalTotal    int64
	ImageURL      *string
	StockQuantity int
	Promotion     *AppliedPromotion
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsGift reports whether the line is fully discounted by a percentage
// promotion. Gift quantities are server-fixed; the only mutation permitted
// is whole-cart clearing.
func (li LineItem) IsGift() bool {
	return li.Promotion != nil && li.Promotion.IsFullDiscount()
}

// ClampQuantity bounds a requested quantity to [0, stock].
func (li LineItem) ClampQuantity(requested int) int {
	if requested < 0 {
		return 0
	}
	if requested > li.StockQuantity {
		return li.StockQuantity
	}
	return requested
}
