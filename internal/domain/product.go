package domain

import "time"

type Product struct {
	ProductID      int64     `db:"product_id"`
	CategoryID     int64     `db:"category_id"`
	BrandID        int64     `db:"brand_id"`
	ProductModelID int64     `db:"product_model_id"`
	TagID          *int64    `db:"tag_id"`
	Price          float64   `db:"price"`
	DateAdded      time.Time `db:"date_added"`
}

type ProductVariant struct {
	VariantID int64  `db:"variant_id"`
	ProductID int64  `db:"product_id"`
	Color     string `db:"color"`
	Size      string `db:"size"`
	Quantity  int64  `db:"quantity"`
}

type Image struct {
	ImageID  int64  `db:"image_id"`
	ImageURL string `db:"image_url"`
}

// ProductDetail is the denormalized read model: one row per product with the
// joined reference names plus every variant and linked image URL.
type ProductDetail struct {
	ProductID        int64            `db:"product_id"`
	CategoryID       int64            `db:"category_id"`
	CategoryName     string           `db:"category_name"`
	BrandID          int64            `db:"brand_id"`
	BrandName        string           `db:"brand_name"`
	ProductModelID   int64            `db:"product_model_id"`
	ModelName        string           `db:"model_name"`
	ModelDescription *string          `db:"model_description"`
	TagID            *int64           `db:"tag_id"`
	TagName          *string          `db:"tag_name"`
	Price            float64          `db:"price"`
	DateAdded        time.Time        `db:"date_added"`
	Variants         []ProductVariant `db:"-"`
	Images           []string         `db:"-"`
}
