package types

import "time"

type Collection struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	CollectionId string `json:"collectionId"`
}

// Product is the read-only projection returned by the product service.
// Results are replaced wholesale on every fetch, never patched.
type Product struct {
	Id              string    `json:"id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	CategoryId      string    `json:"categoryId"`
	Brand           string    `json:"brand"`
	BasePrice       float64   `json:"basePrice"`
	DiscountPercent float64   `json:"discountPercentage,omitempty"`
	RatingAvg       float64   `json:"ratingAvg"`
	CreatedAt       time.Time `json:"createdAt"`
	MainImage       string    `json:"mainImage,omitempty"`
}
