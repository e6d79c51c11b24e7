// internal/models/cart.go
package models

// CartItem is one cart row: a snapshot of the product's display fields plus
// the chosen option and a unit price resolved at insertion time. The unit
// price is fixed on first insertion and never re-derived, so later catalog
// changes cannot retroactively alter lines already in the cart.
type CartItem struct {
	ProductID      string         `json:"product_id"`
	Name           string         `json:"name"`
	Category       string         `json:"category"`
	Image          string         `json:"image"`
	SelectedOption *ProductOption `json:"selected_option,omitempty"`
	UnitPrice      float64        `json:"unit_price"`
	Quantity       int            `json:"quantity"`
}

// OptionLabel returns the chosen option's label, or "" when the row carries
// no variant.
func (i *CartItem) OptionLabel() string {
	if i.SelectedOption == nil {
		return ""
	}
	return i.SelectedOption.Label
}

// LineTotal is the unit price times the quantity.
func (i *CartItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
