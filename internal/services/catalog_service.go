// internal/services/catalog_service.go
package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/espacenaturae/storefront-backend/internal/catalog"
	"github.com/espacenaturae/storefront-backend/internal/models"
)

// CatalogService is the read side over the static catalog: product lookups
// plus the glossary letter index and filter. Glossary results are always
// returned in locale-aware name order, the catalog being authored in French.
type CatalogService struct {
	catalog  *catalog.Catalog
	collator *collate.Collator
}

func NewCatalogService(c *catalog.Catalog) *CatalogService {
	return &CatalogService{
		catalog:  c,
		collator: collate.New(language.French),
	}
}

func (s *CatalogService) Products() []models.Product {
	return s.catalog.Products()
}

func (s *CatalogService) Product(id string) (*models.Product, bool) {
	return s.catalog.Product(id)
}

// firstLetter gives the case-normalized first character of a name, the unit
// of the glossary letter index.
func firstLetter(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return ""
}

// GlossaryLetters returns the distinct first letters present across all
// glossary items, case-normalized and sorted ascending.
func (s *CatalogService) GlossaryLetters() []string {
	seen := make(map[string]bool)
	var letters []string
	for _, item := range s.catalog.Glossary() {
		letter := firstLetter(item.Name)
		if letter != "" && !seen[letter] {
			seen[letter] = true
			letters = append(letters, letter)
		}
	}
	sort.Strings(letters)
	return letters
}

// GlossaryItems returns the glossary filtered by first letter, or every item
// when letter is empty. An absent letter yields an empty set. Items are
// sorted by name with French collation regardless of filter state.
func (s *CatalogService) GlossaryItems(letter string) []models.GlossaryItem {
	all := s.catalog.Glossary()

	items := make([]models.GlossaryItem, 0, len(all))
	for _, item := range all {
		if letter == "" || firstLetter(item.Name) == strings.ToUpper(letter) {
			items = append(items, item)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return s.collator.CompareString(items[i].Name, items[j].Name) < 0
	})
	return items
}
