package entity

import (
	"time"

	"avrstore/pkg/money"
)

// CartItem carries a price snapshot taken when the product was added.
type CartItem struct {
	ProductID string  `json:"product_id" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	Price     float64 `json:"price" firestore:"price"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
	Image     string  `json:"image,omitempty" firestore:"image,omitempty"`
}

// Cart is keyed by user id.
type Cart struct {
	UserID    string     `json:"user_id" firestore:"userId"`
	Items     []CartItem `json:"items" firestore:"items"`
	Total     float64    `json:"total" firestore:"total"`
	ItemCount int        `json:"item_count" firestore:"itemCount"`
	Version   int64      `json:"version" firestore:"version"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
}

func NewCart(userID string) *Cart {
	return &Cart{
		UserID: userID,
		Items:  []CartItem{},
	}
}

// AddItem merges into an existing line for the same product.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			c.Recalculate()
			return
		}
	}
	c.Items = append(c.Items, item)
	c.Recalculate()
}

// UpdateQuantity sets a line's quantity; zero or less removes it.
// It reports whether the product was in the cart.
func (c *Cart) UpdateQuantity(productID string, quantity int) bool {
	if quantity <= 0 {
		return c.RemoveItem(productID)
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.Recalculate()
			return true
		}
	}
	return false
}

func (c *Cart) RemoveItem(productID string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.Recalculate()
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.Recalculate()
}

// Recalculate derives Total and ItemCount from Items.
func (c *Cart) Recalculate() {
	var acc money.Accumulator
	count := 0
	for _, item := range c.Items {
		acc.Add(item.Price, item.Quantity)
		count += item.Quantity
	}
	c.Total = acc.Total()
	c.ItemCount = count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
