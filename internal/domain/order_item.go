package domain

// OrderItem is a line item in an order. Product is a weak reference into the
// catalog and may dangle after the product is deleted; ProductTitle and
// ProductImage are denormalized snapshots frozen at purchase time.
type OrderItem struct {
	Product      *string `json:"product,omitempty"`
	Name         string  `json:"name,omitempty"`
	Qty          int     `json:"qty"`
	Price        float64 `json:"price"`
	Weight       string  `json:"weight,omitempty"`
	ProductTitle *string `json:"productTitle,omitempty"`
	ProductImage *string `json:"productImage,omitempty"`
}

// DisplayName returns the best available name for the item: the denormalized
// title, then the client-sent name, then a deleted-product placeholder.
func (i *OrderItem) DisplayName() string {
	if i.ProductTitle != nil && *i.ProductTitle != "" {
		return *i.ProductTitle
	}
	if i.Name != "" {
		return i.Name
	}
	return "Product (Deleted)"
}

// LineTotal returns the total price for this line item.
func (i *OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Qty)
}
