package models

import "github.com/shopspring/decimal"

// SizeVariant records an authored size-range price override. It is
// informational only; no computation reads it.
type SizeVariant struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Sizes       []string        `json:"sizes"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Variants    []SizeVariant   `json:"variants,omitempty"`
}

// HasSize reports whether the product is offered in the given size label.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}

	return false
}

type ProductResponse struct {
	Product *Product `json:"product"`
	// Image the storefront should display: the enriched payload when one
	// exists, the catalog default otherwise.
	DisplayImage string `json:"display_image"`
	Generating   bool   `json:"generating"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}
