// internal/models/price.go
package models

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// PriceUnavailable is the sentinel text marking a product that cannot be
// ordered yet.
const PriceUnavailable = "Bientôt disponible"

// Price is either a numeric amount or free text such as "à partir de 18".
// Catalog files may use either JSON form.
type Price struct {
	Amount float64
	Text   string
	IsText bool
}

func PriceOf(amount float64) Price {
	return Price{Amount: amount}
}

func PriceText(text string) Price {
	return Price{Text: text, IsText: true}
}

// Orderable reports whether a product carrying this price may be added to
// the cart. Only the unavailability sentinel blocks ordering; any other
// text still resolves to a numeric amount at add time.
func (p Price) Orderable() bool {
	return !p.IsText || p.Text != PriceUnavailable
}

var priceNonNumeric = regexp.MustCompile(`[^0-9.]`)

// Resolve returns the numeric unit price. Textual prices are stripped of
// currency symbols and surrounding words before parsing; anything that
// still fails to parse resolves to 0 rather than surfacing an error.
func (p Price) Resolve() float64 {
	if !p.IsText {
		return p.Amount
	}
	cleaned := priceNonNumeric.ReplaceAllString(p.Text, "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return amount
}

// String renders the price the way the catalog authored it.
func (p Price) String() string {
	if p.IsText {
		return p.Text
	}
	return strconv.FormatFloat(p.Amount, 'f', -1, 64)
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.IsText {
		return json.Marshal(p.Text)
	}
	return json.Marshal(p.Amount)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*p = Price{Text: text, IsText: true}
		return nil
	}
	var amount float64
	if err := json.Unmarshal(data, &amount); err != nil {
		return err
	}
	*p = Price{Amount: amount}
	return nil
}
