package product

import (
	"FreshKeep-Backend/domain"
	"sort"
	"strings"
)

type SortKey string

const (
	SortByManufactureDate SortKey = "manufacture_date"
	SortByExpiryDate      SortKey = "expiry_date"
	SortByMass            SortKey = "mass"
)

// ParseSortKey falls back to expiry date, the default ordering of the
// listing screen.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByManufactureDate, SortByExpiryDate, SortByMass:
		return SortKey(s)
	default:
		return SortByExpiryDate
	}
}

// SortProducts returns a fresh slice ordered ascending by key. The sort is
// stable: ties keep their input order. The input slice is never mutated.
func SortProducts(items []domain.ProductResponse, key SortKey) []domain.ProductResponse {
	out := make([]domain.ProductResponse, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case SortByManufactureDate:
			return out[i].ManufactureDate.Before(out[j].ManufactureDate)
		case SortByMass:
			return out[i].Mass < out[j].Mass
		default:
			return out[i].ExpiryDate.Before(out[j].ExpiryDate)
		}
	})

	return out
}

// FilterProducts keeps items whose name contains query as a
// case-insensitive substring. An empty query matches everything.
func FilterProducts(items []domain.ProductResponse, query string) []domain.ProductResponse {
	out := make([]domain.ProductResponse, 0, len(items))
	query = strings.ToLower(query)

	for _, item := range items {
		if query == "" || strings.Contains(strings.ToLower(item.Name), query) {
			out = append(out, item)
		}
	}

	return out
}
