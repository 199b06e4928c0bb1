package models

import "strings"

// Supermarket describes one of the known German store chains
type Supermarket struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // discount, standard, premium, hypermarket
}

// Category describes a product category shopping items are tagged with
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// supermarkets is the fixed catalog served by GET /api/supermarkets.
// Store positioning (budget vs premium) is also baked into the prompt.
var supermarkets = []Supermarket{
	{ID: "lidl", Name: "Lidl", Type: "discount"},
	{ID: "aldi", Name: "Aldi", Type: "discount"},
	{ID: "edeka", Name: "Edeka", Type: "premium"},
	{ID: "rewe", Name: "Rewe", Type: "standard"},
	{ID: "kaufland", Name: "Kaufland", Type: "hypermarket"},
}

var categories = []Category{
	{ID: "vegetables", Name: "Vegetables"},
	{ID: "fruits", Name: "Fruits"},
	{ID: "meat", Name: "Meat"},
	{ID: "fish", Name: "Fish"},
	{ID: "dairy", Name: "Dairy"},
	{ID: "bread", Name: "Bread & Bakery"},
	{ID: "beverages", Name: "Beverages"},
	{ID: "snacks", Name: "Snacks"},
	{ID: "frozen", Name: "Frozen Foods"},
	{ID: "pantry", Name: "Pantry"},
	{ID: "cleaning", Name: "Cleaning"},
	{ID: "hygiene", Name: "Hygiene"},
}

// Supermarkets returns the known store catalog
func Supermarkets() []Supermarket {
	return supermarkets
}

// Categories returns the product category catalog
func Categories() []Category {
	return categories
}

// KnownStore reports whether name matches a catalog store (by id or
// display name, case-insensitive)
func KnownStore(name string) bool {
	for _, s := range supermarkets {
		if strings.EqualFold(name, s.ID) || strings.EqualFold(name, s.Name) {
			return true
		}
	}
	return false
}
