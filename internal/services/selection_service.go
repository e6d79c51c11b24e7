// internal/services/selection_service.go
package services

import (
	"sync"

	"github.com/espacenaturae/storefront-backend/internal/models"
)

// SelectionService tracks the detail-view state per session: the product
// being viewed, its active option and the quantity selector.
type SelectionService struct {
	mtx      sync.RWMutex
	sessions map[string]*models.SelectionState
}

func NewSelectionService() *SelectionService {
	return &SelectionService{sessions: make(map[string]*models.SelectionState)}
}

// SelectProduct makes the product the session's active one. The active
// option and quantity are derived in the same transition: the first declared
// option becomes active (none when the product declares no options) and the
// detail quantity resets to 1. This holds on every product change, including
// switching products while already in detail view.
func (s *SelectionService) SelectProduct(sessionID string, product *models.Product) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	state := &models.SelectionState{
		Product:        product,
		ActiveOption:   product.FirstOption(),
		DetailQuantity: 1,
	}
	s.sessions[sessionID] = state
}

// SetActiveOption overrides the active option of the currently selected
// product by label. It reports whether the label named one of the product's
// declared options; with no product selected it reports false.
func (s *SelectionService) SetActiveOption(sessionID, label string) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	state, exists := s.sessions[sessionID]
	if !exists || state.Product == nil {
		return false
	}

	option, found := state.Product.Option(label)
	if !found {
		return false
	}
	state.ActiveOption = option
	return true
}

// AdjustQuantity applies delta to the detail quantity selector, clamped to a
// floor of 1. Increments are unbounded since no inventory is tracked.
func (s *SelectionService) AdjustQuantity(sessionID string, delta int) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	state, exists := s.sessions[sessionID]
	if !exists {
		return
	}

	quantity := state.DetailQuantity + delta
	if quantity < 1 {
		quantity = 1
	}
	state.DetailQuantity = quantity
}

// State returns a snapshot of the session's selection. A session that never
// selected anything gets the empty state with quantity 1.
func (s *SelectionService) State(sessionID string) models.SelectionState {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	state, exists := s.sessions[sessionID]
	if !exists {
		return models.SelectionState{DetailQuantity: 1}
	}
	return *state
}
