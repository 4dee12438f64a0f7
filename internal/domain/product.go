package domain

import "time"

// WeightVariant is one purchasable size of a product, e.g. "250 g" or
// "12 pcs", with its own pricing and stock.
type WeightVariant struct {
	Weight string  `json:"weight"`
	Price  float64 `json:"price"`
	MRP    float64 `json:"mrp"`
	Stock  int     `json:"stock"`
}

// Product is a catalog product. Grocery products typically carry weight
// variants; the base price/mrp/stock apply when no variants exist.
type Product struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Slug           string          `json:"slug"`
	Description    string          `json:"description,omitempty"`
	Price          float64         `json:"price"`
	MRP            float64         `json:"mrp,omitempty"`
	Stock          int             `json:"stock"`
	Weight         string          `json:"weight,omitempty"`
	WeightVariants []WeightVariant `json:"weightVariants,omitempty"`
	Images         []string        `json:"images"`
	Categories     []string        `json:"categories"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// DefaultVariant returns the variant shown and priced by default: the first
// one when variants exist, nil otherwise.
func (p *Product) DefaultVariant() *WeightVariant {
	if len(p.WeightVariants) == 0 {
		return nil
	}
	return &p.WeightVariants[0]
}

// EffectivePrice returns the price for the variant at the given index. An
// out-of-range index, or a product without variants, falls back to the
// default variant price and finally the base price.
func (p *Product) EffectivePrice(variantIndex int) float64 {
	if variantIndex >= 0 && variantIndex < len(p.WeightVariants) {
		return p.WeightVariants[variantIndex].Price
	}
	if v := p.DefaultVariant(); v != nil {
		return v.Price
	}
	return p.Price
}

// FirstImage returns the primary product image, or empty when none exist.
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// InStock reports whether any variant (or the base stock) has units left.
func (p *Product) InStock() bool {
	if len(p.WeightVariants) == 0 {
		return p.Stock > 0
	}
	for _, v := range p.WeightVariants {
		if v.Stock > 0 {
			return true
		}
	}
	return false
}
