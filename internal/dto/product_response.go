package dto

type ProductCoreResponse struct {
	ProductID      int64   `json:"product_id"`
	CategoryID     int64   `json:"category_id"`
	BrandID        int64   `json:"brand_id"`
	ProductModelID int64   `json:"product_model_id"`
	TagID          *int64  `json:"tag_id"`
	Price          float64 `json:"price"`
	DateAdded      string  `json:"date_added"`
}

type CreateProductResponse struct {
	Product ProductCoreResponse `json:"product"`
	Images  []string            `json:"images"`
}

type ProductVariantResponse struct {
	VariantID int64  `json:"variant_id"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
}

type ProductResponse struct {
	ProductID        int64                    `json:"product_id"`
	CategoryID       int64                    `json:"category_id"`
	CategoryName     string                   `json:"category_name"`
	BrandID          int64                    `json:"brand_id"`
	BrandName        string                   `json:"brand_name"`
	ProductModelID   int64                    `json:"product_model_id"`
	ModelName        string                   `json:"model_name"`
	ModelDescription *string                  `json:"model_description"`
	TagID            *int64                   `json:"tag_id"`
	TagName          *string                  `json:"tag_name"`
	Price            float64                  `json:"price"`
	DateAdded        string                   `json:"date_added"`
	Variants         []ProductVariantResponse `json:"variants"`
	Images           []string                 `json:"images"`
}
