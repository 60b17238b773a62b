package types

import "sort"

type SortKey string

const (
	SortDefault   SortKey = "default"
	SortRating    SortKey = "rating"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
)

// ParseSortKey maps unknown values to the default, keeping server order.
func ParseSortKey(value string) SortKey {
	switch SortKey(value) {
	case SortRating, SortPriceAsc, SortPriceDesc, SortNewest, SortOldest:
		return SortKey(value)
	}
	return SortDefault
}

// SortProducts orders the fetched page in place. The sort is stable so
// rating ties keep server order. Default leaves the slice untouched.
func SortProducts(products []Product, key SortKey) {
	var less func(a, b Product) bool
	switch key {
	case SortRating:
		less = func(a, b Product) bool { return a.RatingAvg > b.RatingAvg }
	case SortPriceAsc:
		less = func(a, b Product) bool { return a.BasePrice < b.BasePrice }
	case SortPriceDesc:
		less = func(a, b Product) bool { return a.BasePrice > b.BasePrice }
	case SortNewest:
		less = func(a, b Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortOldest:
		less = func(a, b Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}

// Sorted returns a sorted copy, leaving the fetched page untouched.
func Sorted(products []Product, key SortKey) []Product {
	if key == SortDefault || key == "" {
		return products
	}
	out := make([]Product, len(products))
	copy(out, products)
	SortProducts(out, key)
	return out
}
