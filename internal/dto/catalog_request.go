package dto

type CategoryRequest struct {
	CategoryName string `json:"category_name"`
}

type BrandRequest struct {
	BrandName string `json:"brand_name"`
}

type TagRequest struct {
	TagName string `json:"tag_name"`
}

type ProductModelRequest struct {
	ModelName   string  `json:"model_name"`
	BrandID     int64   `json:"brand_id"`
	Description *string `json:"description"`
}
