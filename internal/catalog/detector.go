package catalog

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ahmednasr/product-compare/internal/models"
)

// CategoryKeywords are checked in order; the first one found in the user text wins.
var CategoryKeywords = []string{"smartphone", "laptop", "headphone", "camera", "tv"}

// DetectCategory returns the first category keyword contained in text.
func DetectCategory(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, category := range CategoryKeywords {
		if strings.Contains(lower, category) {
			return category, true
		}
	}
	return "", false
}

// FilterByCategory keeps the products whose category contains category, ignoring case.
func FilterByCategory(products []models.Product, category string) []models.Product {
	needle := strings.ToLower(category)
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Available computes the product subset for the latest user message in messages.
// It returns full when there is no user message, no keyword matches, or the
// matching category has no products.
func Available(full []models.Product, messages []models.Message) []models.Product {
	last, ok := lastUserMessage(messages)
	if !ok {
		return full
	}
	category, ok := DetectCategory(last)
	if !ok {
		return full
	}

	log.Debug().Str("category", category).Msg("loading products for category")
	filtered := FilterByCategory(full, category)
	if len(filtered) == 0 {
		log.Debug().Str("category", category).Msg("no products in category; using full catalog")
		return full
	}
	return filtered
}

func lastUserMessage(messages []models.Message) (string, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleUser {
			return messages[i].Content, true
		}
	}
	return "", false
}
