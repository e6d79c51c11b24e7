// internal/models/selection.go
package models

// SelectionState is the detail-view state for one session: the product being
// viewed, its active option and the quantity selector. Selecting a product
// derives the option and quantity fields in the same transition, so the
// state is always internally consistent.
type SelectionState struct {
	Product        *Product       `json:"product,omitempty"`
	ActiveOption   *ProductOption `json:"active_option,omitempty"`
	DetailQuantity int            `json:"detail_quantity"`
}
