// internal/models/glossary.go
package models

// GlossaryItem is one botanical glossary entry. INCI is the standardized
// international cosmetic ingredient name.
type GlossaryItem struct {
	Name        string `json:"name"`
	INCI        string `json:"inci"`
	Description string `json:"description"`
}
