// Package catalog holds the built-in product list and the keyword based
// category detection that narrows it for a conversation.
package catalog

import "github.com/ahmednasr/product-compare/internal/models"

// Sample returns a fresh copy of the built-in catalog.
func Sample() []models.Product {
	return []models.Product{
		{
			ID:       "phone1",
			Name:     "SuperPhone X",
			Category: "smartphone",
			Price:    799,
			Features: []string{"6.7-inch display", "5G", "128GB storage", "Dual camera"},
			Pros:     []string{"Excellent camera", "Fast processor", "All-day battery"},
			Cons:     []string{"No headphone jack", "Expensive"},
		},
		{
			ID:       "phone2",
			Name:     "UltraPhone 12",
			Category: "smartphone",
			Price:    699,
			Features: []string{"6.4-inch display", "5G", "64GB storage", "Triple camera"},
			Pros:     []string{"Great value", "Expandable storage", "Fast charging"},
			Cons:     []string{"Average camera quality", "Plastic build"},
		},
	}
}
