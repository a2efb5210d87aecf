package dto

// CreateProductRequest carries the multipart form fields of the create
// endpoint. Numeric fields arrive as strings and are validated by the service.
type CreateProductRequest struct {
	Category    string `form:"category"`
	Brand       string `form:"brand"`
	Model       string `form:"model"`
	Description string `form:"description"`
	Color       string `form:"color"`
	Size        string `form:"size"`
	Quantity    string `form:"quantity"`
	Price       string `form:"price"`
	Tag         string `form:"tag"`
}

type ProductVariantRequest struct {
	VariantID int64  `json:"variant_id"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
}

type UpdateProductRequest struct {
	Category         int64                   `json:"category"`
	Brand            int64                   `json:"brand"`
	ProductModelID   int64                   `json:"product_model_id"`
	Tag              *int64                  `json:"tag"`
	Price            float64                 `json:"price"`
	ModelName        string                  `json:"model_name"`
	ModelDescription string                  `json:"model_description"`
	Variants         []ProductVariantRequest `json:"variants"`
}

type UpdateProductTagRequest struct {
	Tag string `json:"tag"`
}
