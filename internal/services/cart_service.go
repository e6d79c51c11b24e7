// internal/services/cart_service.go
package services

import (
	"sync"

	"github.com/espacenaturae/storefront-backend/internal/models"
)

// lineKey is the sole identity of a cart row: the product id plus the exact
// option label, or the absence of one. Add, update and remove all resolve
// lines through this key, so a product can sit in the cart both with and
// without an option and the two rows never shadow each other.
type lineKey struct {
	productID   string
	optionLabel string
	hasOption   bool
}

type cart struct {
	items []*models.CartItem
	index map[lineKey]*models.CartItem
}

func newCart() *cart {
	return &cart{index: make(map[lineKey]*models.CartItem)}
}

func itemKey(item *models.CartItem) lineKey {
	return lineKey{
		productID:   item.ProductID,
		optionLabel: item.OptionLabel(),
		hasOption:   item.SelectedOption != nil,
	}
}

// CartService owns the in-memory carts, one per session. Cart state is
// ephemeral: nothing survives a process restart and there is no
// cross-session sharing.
type CartService struct {
	mtx   sync.RWMutex
	carts map[string]*cart
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string]*cart)}
}

func (s *CartService) cartFor(sessionID string) *cart {
	c, exists := s.carts[sessionID]
	if !exists {
		c = newCart()
		s.carts[sessionID] = c
	}
	return c
}

// AddItem adds quantity units of the product, with the given option when one
// is chosen, to the session's cart. A product whose effective price is the
// unavailability sentinel is silently ignored. The returned flag is the
// cart-opened signal: true exactly when the cart changed, so the caller can
// open the cart panel. An existing line for the same (product, option) pair
// gets its quantity incremented in place with the unit price left untouched;
// the price is fixed at first insertion and never re-derived.
func (s *CartService) AddItem(sessionID string, product *models.Product, option *models.ProductOption, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}

	effective := product.Price
	if option != nil {
		effective = option.Price
	}
	if !effective.Orderable() {
		return false
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	c := s.cartFor(sessionID)

	key := lineKey{productID: product.ID}
	if option != nil {
		key.optionLabel = option.Label
		key.hasOption = true
	}

	if existing, found := c.index[key]; found {
		existing.Quantity += quantity
		return true
	}

	item := &models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Image:     product.Image,
		UnitPrice: effective.Resolve(),
		Quantity:  quantity,
	}
	if option != nil {
		chosen := *option
		item.SelectedOption = &chosen
	}

	c.items = append(c.items, item)
	c.index[key] = item
	return true
}

// UpdateQuantity applies delta to the line identified by the exact
// (productID, optionLabel-or-absence) pair, clamping the result to a floor
// of 1. Dropping a line requires an explicit RemoveItem; decrementing never
// does it. A miss is a silent no-op.
func (s *CartService) UpdateQuantity(sessionID, productID string, optionLabel *string, delta int) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	c, exists := s.carts[sessionID]
	if !exists {
		return
	}

	item, found := c.index[keyOf(productID, optionLabel)]
	if !found {
		return
	}

	newQuantity := item.Quantity + delta
	if newQuantity < 1 {
		newQuantity = 1
	}
	item.Quantity = newQuantity
}

// RemoveItem drops the line identified by the exact key. A miss is a silent
// no-op.
func (s *CartService) RemoveItem(sessionID, productID string, optionLabel *string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	c, exists := s.carts[sessionID]
	if !exists {
		return
	}

	key := keyOf(productID, optionLabel)
	if _, found := c.index[key]; !found {
		return
	}
	delete(c.index, key)

	for i, item := range c.items {
		if itemKey(item) == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
}

func keyOf(productID string, optionLabel *string) lineKey {
	key := lineKey{productID: productID}
	if optionLabel != nil {
		key.optionLabel = *optionLabel
		key.hasOption = true
	}
	return key
}

// Items returns a snapshot of the session's cart in insertion order.
func (s *CartService) Items(sessionID string) []models.CartItem {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	c, exists := s.carts[sessionID]
	if !exists {
		return []models.CartItem{}
	}

	items := make([]models.CartItem, 0, len(c.items))
	for _, item := range c.items {
		snapshot := *item
		if item.SelectedOption != nil {
			option := *item.SelectedOption
			snapshot.SelectedOption = &option
		}
		items = append(items, snapshot)
	}
	return items
}

// Total sums unit price times quantity over the session's cart.
func (s *CartService) Total(sessionID string) float64 {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	c, exists := s.carts[sessionID]
	if !exists {
		return 0
	}

	var total float64
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

// Count is the number of units across all lines, for the cart badge.
func (s *CartService) Count(sessionID string) int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	c, exists := s.carts[sessionID]
	if !exists {
		return 0
	}

	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}
