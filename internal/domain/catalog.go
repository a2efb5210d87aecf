package domain

type Category struct {
	ID   int64  `db:"category_id"`
	Name string `db:"category_name"`
}

type Brand struct {
	ID   int64  `db:"brand_id"`
	Name string `db:"brand_name"`
}

type Tag struct {
	ID   int64  `db:"tag_id"`
	Name string `db:"tag_name"`
}

type ProductModel struct {
	ID          int64   `db:"product_model_id"`
	ModelName   string  `db:"model_name"`
	BrandID     int64   `db:"brand_id"`
	Description *string `db:"description"`
}
