// internal/services/order_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espacenaturae/storefront-backend/internal/config"
)

func testStore() config.StoreConfig {
	return config.StoreConfig{
		Name:           "Espace Naturaē",
		OrderEmail:     "info@espacenaturae.ca",
		CurrencySuffix: "$",
	}
}

func TestCheckoutComposesOrderBody(t *testing.T) {
	cartService := NewCartService()
	orderService := NewOrderService(testStore(), cartService)

	product := faceBalm()
	option, _ := product.Option("15g")
	cartService.AddItem(testSession, product, option, 2)
	cartService.AddItem(testSession, elixir(), nil, 1)

	mail, err := orderService.Checkout(testSession)
	require.NoError(t, err)

	assert.Equal(t, "info@espacenaturae.ca", mail.To)
	assert.Equal(t, "Nouvelle commande - Espace Naturaē", mail.Subject)

	expectedBody := "Bonjour Espace Naturaē,\n\n" +
		"Je souhaite passer la commande suivante :\n\n" +
		"- Baume de suif pour le visage à la calendula (15g) x2 : 18$ (Total: 36$)\n" +
		"- Huile Élixir x1 : 28$ (Total: 28$)\n\n" +
		"Total : 64$\n\n" +
		"Coordonnées client :\nNom :\nTéléphone :\nAdresse de livraison :\n\nMerci !"
	assert.Equal(t, expectedBody, mail.Body)
}

func TestCheckoutDoesNotMutateCart(t *testing.T) {
	cartService := NewCartService()
	orderService := NewOrderService(testStore(), cartService)
	cartService.AddItem(testSession, elixir(), nil, 1)

	_, err := orderService.Checkout(testSession)
	require.NoError(t, err)

	assert.Len(t, cartService.Items(testSession), 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	orderService := NewOrderService(testStore(), NewCartService())

	_, err := orderService.Checkout(testSession)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestMailtoIsFullyPercentEncoded(t *testing.T) {
	cartService := NewCartService()
	orderService := NewOrderService(testStore(), cartService)
	cartService.AddItem(testSession, elixir(), nil, 1)

	mail, err := orderService.Checkout(testSession)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(mail.Mailto, "mailto:info@espacenaturae.ca?subject="))
	assert.Contains(t, mail.Mailto, "&body=")

	// Raw spaces and newlines must never survive in the URI
	assert.NotContains(t, mail.Mailto, " ")
	assert.NotContains(t, mail.Mailto, "\n")
	assert.NotContains(t, mail.Mailto, "+")
	assert.Contains(t, mail.Mailto, "%20")
	assert.Contains(t, mail.Mailto, "%0A")
}

func TestComposeContact(t *testing.T) {
	orderService := NewOrderService(testStore(), NewCartService())

	mail := orderService.ComposeContact(&ContactRequest{
		FirstName: "Marie",
		LastName:  "Tremblay",
		Email:     "marie@example.com",
		Phone:     "450-555-0101",
		Subject:   "Question sur le baume",
		Message:   "Convient-il aux peaux sensibles ?",
	})

	assert.Equal(t, "Contact: Question sur le baume", mail.Subject)
	assert.Equal(t,
		"De: Marie Tremblay\nEmail: marie@example.com\nTéléphone: 450-555-0101\n\nMessage:\nConvient-il aux peaux sensibles ?",
		mail.Body)
	assert.True(t, strings.HasPrefix(mail.Mailto, "mailto:info@espacenaturae.ca?subject="))
}

func TestComposeContactDefaultSubject(t *testing.T) {
	orderService := NewOrderService(testStore(), NewCartService())

	mail := orderService.ComposeContact(&ContactRequest{
		FirstName: "Marie",
		LastName:  "Tremblay",
		Email:     "marie@example.com",
		Message:   "Bonjour",
	})

	assert.Equal(t, "Contact: Demande de renseignement", mail.Subject)
}
