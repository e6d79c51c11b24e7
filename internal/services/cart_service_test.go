// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/espacenaturae/storefront-backend/internal/models"
)

const testSession = "session-1"

func faceBalm() *models.Product {
	return &models.Product{
		ID:       "1",
		Name:     "Baume de suif pour le visage à la calendula",
		Category: "Visage & Corps",
		Price:    models.PriceText("à partir de 18"),
		Options: []models.ProductOption{
			{Label: "15g", Price: models.PriceOf(18)},
			{Label: "30g", Price: models.PriceOf(30)},
		},
	}
}

func lipBalm() *models.Product {
	return &models.Product{
		ID:       "3",
		Name:     "Baume à Lèvres",
		Category: "Soin des Lèvres",
		Price:    models.PriceText(models.PriceUnavailable),
	}
}

func elixir() *models.Product {
	return &models.Product{
		ID:       "4",
		Name:     "Huile Élixir",
		Category: "Visage & Corps",
		Price:    models.PriceOf(28),
	}
}

type CartServiceTestSuite struct {
	suite.Suite
	cartService *CartService
}

func (suite *CartServiceTestSuite) SetupTest() {
	suite.cartService = NewCartService()
}

func (suite *CartServiceTestSuite) option(product *models.Product, label string) *models.ProductOption {
	option, found := product.Option(label)
	suite.Require().True(found)
	return option
}

func (suite *CartServiceTestSuite) TestAddResolvesOptionPrice() {
	product := faceBalm()
	opened := suite.cartService.AddItem(testSession, product, suite.option(product, "30g"), 1)

	assert.True(suite.T(), opened)
	items := suite.cartService.Items(testSession)
	suite.Require().Len(items, 1)
	assert.Equal(suite.T(), 30.0, items[0].UnitPrice)
	assert.Equal(suite.T(), "30g", items[0].OptionLabel())
}

func (suite *CartServiceTestSuite) TestAddResolvesTextualBasePrice() {
	suite.cartService.AddItem(testSession, faceBalm(), nil, 1)

	items := suite.cartService.Items(testSession)
	suite.Require().Len(items, 1)
	assert.Equal(suite.T(), 18.0, items[0].UnitPrice)
	assert.Nil(suite.T(), items[0].SelectedOption)
}

func (suite *CartServiceTestSuite) TestRepeatAddMergesAndKeepsFirstPrice() {
	product := faceBalm()
	suite.cartService.AddItem(testSession, product, suite.option(product, "15g"), 1)

	// Simulate a catalog price change between the two adds; the stored unit
	// price must remain the one resolved on first insertion.
	repriced := faceBalm()
	repriced.Options[0].Price = models.PriceOf(99)
	suite.cartService.AddItem(testSession, repriced, suite.option(repriced, "15g"), 2)

	items := suite.cartService.Items(testSession)
	suite.Require().Len(items, 1)
	assert.Equal(suite.T(), 3, items[0].Quantity)
	assert.Equal(suite.T(), 18.0, items[0].UnitPrice)
}

func (suite *CartServiceTestSuite) TestSentinelPriceIsSilentNoop() {
	opened := suite.cartService.AddItem(testSession, lipBalm(), nil, 1)

	assert.False(suite.T(), opened)
	assert.Empty(suite.T(), suite.cartService.Items(testSession))
	assert.Equal(suite.T(), 0.0, suite.cartService.Total(testSession))
}

func (suite *CartServiceTestSuite) TestUnparseablePriceFallsBackToZero() {
	product := &models.Product{
		ID:    "9",
		Name:  "Coffret découverte",
		Price: models.PriceText("sur demande"),
	}

	opened := suite.cartService.AddItem(testSession, product, nil, 2)

	assert.True(suite.T(), opened)
	items := suite.cartService.Items(testSession)
	suite.Require().Len(items, 1)
	assert.Equal(suite.T(), 0.0, items[0].UnitPrice)
	assert.Equal(suite.T(), 0.0, suite.cartService.Total(testSession))
}

func (suite *CartServiceTestSuite) TestOptionAndNoOptionAreDistinctLines() {
	product := faceBalm()
	suite.cartService.AddItem(testSession, product, nil, 1)
	suite.cartService.AddItem(testSession, product, suite.option(product, "15g"), 1)
	suite.cartService.AddItem(testSession, product, suite.option(product, "30g"), 1)

	assert.Len(suite.T(), suite.cartService.Items(testSession), 3)
}

func (suite *CartServiceTestSuite) TestUpdateQuantityClampsToFloor() {
	suite.cartService.AddItem(testSession, elixir(), nil, 2)

	suite.cartService.UpdateQuantity(testSession, "4", nil, -5)
	items := suite.cartService.Items(testSession)
	suite.Require().Len(items, 1)
	assert.Equal(suite.T(), 1, items[0].Quantity)

	suite.cartService.UpdateQuantity(testSession, "4", nil, 3)
	items = suite.cartService.Items(testSession)
	assert.Equal(suite.T(), 4, items[0].Quantity)
}

func (suite *CartServiceTestSuite) TestUpdateMatchesExactOptionKey() {
	product := faceBalm()
	suite.cartService.AddItem(testSession, product, nil, 1)
	suite.cartService.AddItem(testSession, product, suite.option(product, "15g"), 1)

	label := "15g"
	suite.cartService.UpdateQuantity(testSession, "1", &label, 2)

	for _, item := range suite.cartService.Items(testSession) {
		if item.SelectedOption != nil {
			assert.Equal(suite.T(), 3, item.Quantity)
		} else {
			assert.Equal(suite.T(), 1, item.Quantity)
		}
	}
}

func (suite *CartServiceTestSuite) TestUpdateMissIsNoop() {
	suite.cartService.AddItem(testSession, elixir(), nil, 1)

	suite.cartService.UpdateQuantity(testSession, "missing", nil, 5)
	label := "15g"
	suite.cartService.UpdateQuantity(testSession, "4", &label, 5)

	items := suite.cartService.Items(testSession)
	suite.Require().Len(items, 1)
	assert.Equal(suite.T(), 1, items[0].Quantity)
}

func (suite *CartServiceTestSuite) TestRemoveMatchesExactOptionKey() {
	product := faceBalm()
	suite.cartService.AddItem(testSession, product, nil, 1)
	suite.cartService.AddItem(testSession, product, suite.option(product, "15g"), 1)

	label := "15g"
	suite.cartService.RemoveItem(testSession, "1", &label)

	items := suite.cartService.Items(testSession)
	suite.Require().Len(items, 1)
	assert.Nil(suite.T(), items[0].SelectedOption)
}

func (suite *CartServiceTestSuite) TestRemoveMissIsNoop() {
	suite.cartService.AddItem(testSession, elixir(), nil, 1)
	suite.cartService.RemoveItem(testSession, "missing", nil)

	assert.Len(suite.T(), suite.cartService.Items(testSession), 1)
}

func (suite *CartServiceTestSuite) TestTotalSumsLineTotals() {
	product := faceBalm()
	suite.cartService.AddItem(testSession, product, suite.option(product, "15g"), 2) // 36
	suite.cartService.AddItem(testSession, elixir(), nil, 1)                         // 28

	assert.Equal(suite.T(), 64.0, suite.cartService.Total(testSession))
	assert.Equal(suite.T(), 3, suite.cartService.Count(testSession))
}

func (suite *CartServiceTestSuite) TestSessionsAreIsolated() {
	suite.cartService.AddItem("session-a", elixir(), nil, 1)

	assert.Empty(suite.T(), suite.cartService.Items("session-b"))
	assert.Len(suite.T(), suite.cartService.Items("session-a"), 1)
}

func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
