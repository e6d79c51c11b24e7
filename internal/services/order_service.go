// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/espacenaturae/storefront-backend/internal/config"
	"github.com/espacenaturae/storefront-backend/internal/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// ComposedMail is the fully prepared hand-off to the external
// mail-composition mechanism: a subject/body pair plus the ready-to-open
// mailto URL. The hand-off is fire-and-forget; no delivery feedback exists.
type ComposedMail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Mailto  string `json:"mailto"`
}

type ContactRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message" validate:"required"`
}

// OrderService turns cart contents and contact forms into mail drafts.
// Checkout never places an order server-side; the customer finalizes by
// sending the draft.
type OrderService struct {
	store       config.StoreConfig
	cartService *CartService
}

func NewOrderService(store config.StoreConfig, cartService *CartService) *OrderService {
	return &OrderService{store: store, cartService: cartService}
}

// Checkout composes the order mail for the session's current cart: one line
// per cart row, the grand total, and the customer-coordinates boilerplate.
// The derivation is pure; the cart is left untouched so the customer can
// still adjust it after previewing the draft.
func (s *OrderService) Checkout(sessionID string) (*ComposedMail, error) {
	items := s.cartService.Items(sessionID)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subject := fmt.Sprintf("Nouvelle commande - %s", s.store.Name)
	body := s.composeOrderBody(items, s.cartService.Total(sessionID))

	return s.compose(subject, body), nil
}

func (s *OrderService) composeOrderBody(items []models.CartItem, total float64) string {
	cur := s.store.CurrencySuffix

	var lines []string
	for _, item := range items {
		label := ""
		if item.SelectedOption != nil {
			label = fmt.Sprintf(" (%s)", item.SelectedOption.Label)
		}
		lines = append(lines, fmt.Sprintf("- %s%s x%d : %s%s (Total: %s%s)",
			item.Name, label, item.Quantity,
			formatAmount(item.UnitPrice), cur,
			formatAmount(item.LineTotal()), cur))
	}

	return fmt.Sprintf(
		"Bonjour %s,\n\nJe souhaite passer la commande suivante :\n\n%s\n\nTotal : %s%s\n\nCoordonnées client :\nNom :\nTéléphone :\nAdresse de livraison :\n\nMerci !",
		s.store.Name, strings.Join(lines, "\n"), formatAmount(total), cur)
}

// ComposeContact turns a contact-form submission into a mail draft. An empty
// subject falls back to a generic inquiry subject.
func (s *OrderService) ComposeContact(form *ContactRequest) *ComposedMail {
	topic := form.Subject
	if topic == "" {
		topic = "Demande de renseignement"
	}

	subject := fmt.Sprintf("Contact: %s", topic)
	body := fmt.Sprintf("De: %s %s\nEmail: %s\nTéléphone: %s\n\nMessage:\n%s",
		form.FirstName, form.LastName, form.Email, form.Phone, form.Message)

	return s.compose(subject, body)
}

func (s *OrderService) compose(subject, body string) *ComposedMail {
	return &ComposedMail{
		To:      s.store.OrderEmail,
		Subject: subject,
		Body:    body,
		Mailto: fmt.Sprintf("mailto:%s?subject=%s&body=%s",
			s.store.OrderEmail, encodeComponent(subject), encodeComponent(body)),
	}
}

// encodeComponent percent-encodes a mailto query component. QueryEscape uses
// form encoding where spaces become "+", which mail clients do not decode,
// so those are rewritten to %20.
func encodeComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

// formatAmount renders an amount without trailing zeros, matching how the
// catalog authors prices (18, 22.5).
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
