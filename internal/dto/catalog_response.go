package dto

type CategoryResponse struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
}

type BrandResponse struct {
	BrandID   int64  `json:"brand_id"`
	BrandName string `json:"brand_name"`
}

type TagResponse struct {
	TagID   int64  `json:"tag_id"`
	TagName string `json:"tag_name"`
}

type ProductModelResponse struct {
	ProductModelID int64   `json:"product_model_id"`
	ModelName      string  `json:"model_name"`
	BrandID        int64   `json:"brand_id"`
	Description    *string `json:"description"`
}
