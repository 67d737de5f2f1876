package config

import "os"

// Course is one sellable catalog item. Amount is in minor currency units
// (paise for INR). GraphyProductID is the learning platform's identifier
// for the same course; empty means enrollment cannot be completed for it.
type Course struct {
	ID              string
	Name            string
	Amount          int64
	Currency        string
	GraphyProductID string
}

// LoadCatalog returns the canonical course table. This is the single source
// of truth for both order pricing and Graphy product mapping; it is built
// once at startup and read-only afterwards.
func LoadCatalog() map[string]Course {
	courses := []Course{
		{
			ID:              "fundamentals-of-facebook-ads",
			Name:            "Fundamentals of Facebook Ads",
			Amount:          99900,
			Currency:        "INR",
			GraphyProductID: os.Getenv("GRAPHY_PRODUCT_FUNDAMENTALS"),
		},
		{
			ID:              "business-growth-plan",
			Name:            "Business Growth Plan",
			Amount:          4999100,
			Currency:        "INR",
			GraphyProductID: os.Getenv("GRAPHY_PRODUCT_BUSINESS_GROWTH"),
		},
		{
			ID:              "value-plan",
			Name:            "Value Plan",
			Amount:          1499100,
			Currency:        "INR",
			GraphyProductID: os.Getenv("GRAPHY_PRODUCT_VALUE_PLAN"),
		},
		{
			ID:              "meta-andromeda-base",
			Name:            "Meta Andromeda Base",
			Amount:          149100,
			Currency:        "INR",
			GraphyProductID: os.Getenv("GRAPHY_PRODUCT_META_BASE"),
		},
		{
			ID:              "meta-andromeda-mentorship",
			Name:            "Meta Andromeda Mentorship",
			Amount:          499100,
			Currency:        "INR",
			GraphyProductID: os.Getenv("GRAPHY_PRODUCT_META_MENTORSHIP"),
		},
	}

	catalog := make(map[string]Course, len(courses))
	for _, c := range courses {
		catalog[c.ID] = c
	}
	return catalog
}
