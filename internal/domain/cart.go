package domain

import "time"

// Cart is a server-side shopping cart, keyed by a client-generated cart id
// and expired by the store TTL.
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem is a single line in the cart. VariantIndex selects the weight
// variant the customer picked; -1 means the base product.
type CartItem struct {
	ProductID    string  `json:"productId"`
	VariantIndex int     `json:"variantIndex"`
	Title        string  `json:"title"`
	Weight       string  `json:"weight,omitempty"`
	Price        float64 `json:"price"`
	Image        string  `json:"image,omitempty"`
	Qty          int     `json:"qty"`
}

// Total calculates the total price of all items in the cart.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Qty)
	}
	return total
}

// ItemCount returns the total number of units in the cart.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Qty
	}
	return count
}

// FindItemIndex returns the index of the cart line matching the given product
// and variant, or -1 when absent.
func (c *Cart) FindItemIndex(productID string, variantIndex int) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].VariantIndex == variantIndex {
			return i
		}
	}
	return -1
}
