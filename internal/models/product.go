// internal/models/product.go
package models

// ProductOption is a named, independently priced variant of a product,
// typically a size. Labels are unique within their parent product.
type ProductOption struct {
	Label string `json:"label"`
	Price Price  `json:"price"`
}

// Product is one catalog entry. The catalog is loaded once at startup and
// never mutated afterwards.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       Price           `json:"price"`
	Description string          `json:"description"`
	Ingredients []string        `json:"ingredients"`
	Image       string          `json:"image"`
	Options     []ProductOption `json:"options,omitempty"`
	INCI        string          `json:"inci,omitempty"`
}

// Option returns the declared option with the given label.
func (p *Product) Option(label string) (*ProductOption, bool) {
	for i := range p.Options {
		if p.Options[i].Label == label {
			return &p.Options[i], true
		}
	}
	return nil, false
}

// FirstOption returns the first option in declaration order, or nil when
// the product declares none.
func (p *Product) FirstOption() *ProductOption {
	if len(p.Options) == 0 {
		return nil
	}
	return &p.Options[0]
}
