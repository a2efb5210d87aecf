package repository

import (
	"context"
	"database/sql"

	"github.com/drezzup/catalog-service/internal/domain"
	"github.com/drezzup/catalog-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// CatalogRepository covers the independent reference tables: categories,
// brands, tags and product models. Lookups return the zero value with a nil
// error when no row matches; callers decide whether that is a not-found.
type CatalogRepository interface {
	GetCategories(ctx context.Context) (data []domain.Category, err error)
	GetCategoryByID(ctx context.Context, id int64) (data domain.Category, err error)
	GetCategoryByName(ctx context.Context, name string) (data domain.Category, err error)
	AddCategory(ctx context.Context, name string) (data domain.Category, err error)
	UpdateCategory(ctx context.Context, id int64, name string) (data domain.Category, err error)
	DeleteCategory(ctx context.Context, id int64) (err error)

	GetBrands(ctx context.Context) (data []domain.Brand, err error)
	GetBrandByID(ctx context.Context, id int64) (data domain.Brand, err error)
	AddBrand(ctx context.Context, name string) (data domain.Brand, err error)
	UpdateBrand(ctx context.Context, id int64, name string) (data domain.Brand, err error)
	DeleteBrand(ctx context.Context, id int64) (err error)

	GetTags(ctx context.Context) (data []domain.Tag, err error)
	GetTagByID(ctx context.Context, id int64) (data domain.Tag, err error)
	AddTag(ctx context.Context, name string) (data domain.Tag, err error)
	UpdateTag(ctx context.Context, id int64, name string) (data domain.Tag, err error)
	DeleteTag(ctx context.Context, id int64) (err error)

	GetProductModels(ctx context.Context) (data []domain.ProductModel, err error)
	GetProductModelByID(ctx context.Context, id int64) (data domain.ProductModel, err error)
	AddProductModel(ctx context.Context, modelName string, brandID int64) (data domain.ProductModel, err error)
	UpdateProductModel(ctx context.Context, id int64, modelName string, description *string) (data domain.ProductModel, err error)
	DeleteProductModel(ctx context.Context, id int64) (err error)
}

type CatalogRepositoryImpl struct {
	db *sqlx.DB
}

func CreateCatalogRepository(db *sqlx.DB) CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

func (r *CatalogRepositoryImpl) getRow(ctx context.Context, dest interface{}, component string, query string, args ...interface{}) error {
	err := r.db.QueryRowxContext(ctx, query, args...).StructScan(dest)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		log.Error().Err(err).Str("component", component).Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *CatalogRepositoryImpl) selectRows(ctx context.Context, dest interface{}, component string, query string, args ...interface{}) error {
	err := r.db.SelectContext(ctx, dest, query, args...)
	if err != nil {
		log.Error().Err(err).Str("component", component).Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *CatalogRepositoryImpl) deleteRow(ctx context.Context, component string, query string, id int64) error {
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error().Err(err).Str("component", component).Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *CatalogRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	err = r.selectRows(ctx, &data, "GetCategories", "SELECT category_id, category_name FROM categories ORDER BY category_id")
	return
}

func (r *CatalogRepositoryImpl) GetCategoryByID(ctx context.Context, id int64) (data domain.Category, err error) {
	err = r.getRow(ctx, &data, "GetCategoryByID", "SELECT category_id, category_name FROM categories WHERE category_id = $1", id)
	return
}

func (r *CatalogRepositoryImpl) GetCategoryByName(ctx context.Context, name string) (data domain.Category, err error) {
	err = r.getRow(ctx, &data, "GetCategoryByName", "SELECT category_id, category_name FROM categories WHERE category_name = $1", name)
	return
}

func (r *CatalogRepositoryImpl) AddCategory(ctx context.Context, name string) (data domain.Category, err error) {
	err = r.getRow(ctx, &data, "AddCategory", "INSERT INTO categories (category_name) VALUES ($1) RETURNING category_id, category_name", name)
	return
}

func (r *CatalogRepositoryImpl) UpdateCategory(ctx context.Context, id int64, name string) (data domain.Category, err error) {
	err = r.getRow(ctx, &data, "UpdateCategory", "UPDATE categories SET category_name = $1 WHERE category_id = $2 RETURNING category_id, category_name", name, id)
	return
}

func (r *CatalogRepositoryImpl) DeleteCategory(ctx context.Context, id int64) (err error) {
	return r.deleteRow(ctx, "DeleteCategory", "DELETE FROM categories WHERE category_id = $1", id)
}

func (r *CatalogRepositoryImpl) GetBrands(ctx context.Context) (data []domain.Brand, err error) {
	err = r.selectRows(ctx, &data, "GetBrands", "SELECT brand_id, brand_name FROM brands ORDER BY brand_id")
	return
}

func (r *CatalogRepositoryImpl) GetBrandByID(ctx context.Context, id int64) (data domain.Brand, err error) {
	err = r.getRow(ctx, &data, "GetBrandByID", "SELECT brand_id, brand_name FROM brands WHERE brand_id = $1", id)
	return
}

func (r *CatalogRepositoryImpl) AddBrand(ctx context.Context, name string) (data domain.Brand, err error) {
	err = r.getRow(ctx, &data, "AddBrand", "INSERT INTO brands (brand_name) VALUES ($1) RETURNING brand_id, brand_name", name)
	return
}

func (r *CatalogRepositoryImpl) UpdateBrand(ctx context.Context, id int64, name string) (data domain.Brand, err error) {
	err = r.getRow(ctx, &data, "UpdateBrand", "UPDATE brands SET brand_name = $1 WHERE brand_id = $2 RETURNING brand_id, brand_name", name, id)
	return
}

func (r *CatalogRepositoryImpl) DeleteBrand(ctx context.Context, id int64) (err error) {
	return r.deleteRow(ctx, "DeleteBrand", "DELETE FROM brands WHERE brand_id = $1", id)
}

func (r *CatalogRepositoryImpl) GetTags(ctx context.Context) (data []domain.Tag, err error) {
	err = r.selectRows(ctx, &data, "GetTags", "SELECT tag_id, tag_name FROM tag ORDER BY tag_id")
	return
}

func (r *CatalogRepositoryImpl) GetTagByID(ctx context.Context, id int64) (data domain.Tag, err error) {
	err = r.getRow(ctx, &data, "GetTagByID", "SELECT tag_id, tag_name FROM tag WHERE tag_id = $1", id)
	return
}

func (r *CatalogRepositoryImpl) AddTag(ctx context.Context, name string) (data domain.Tag, err error) {
	err = r.getRow(ctx, &data, "AddTag", "INSERT INTO tag (tag_name) VALUES ($1) RETURNING tag_id, tag_name", name)
	return
}

func (r *CatalogRepositoryImpl) UpdateTag(ctx context.Context, id int64, name string) (data domain.Tag, err error) {
	err = r.getRow(ctx, &data, "UpdateTag", "UPDATE tag SET tag_name = $1 WHERE tag_id = $2 RETURNING tag_id, tag_name", name, id)
	return
}

func (r *CatalogRepositoryImpl) DeleteTag(ctx context.Context, id int64) (err error) {
	return r.deleteRow(ctx, "DeleteTag", "DELETE FROM tag WHERE tag_id = $1", id)
}

func (r *CatalogRepositoryImpl) GetProductModels(ctx context.Context) (data []domain.ProductModel, err error) {
	err = r.selectRows(ctx, &data, "GetProductModels", "SELECT product_model_id, model_name, brand_id, description FROM product_models ORDER BY product_model_id")
	return
}

func (r *CatalogRepositoryImpl) GetProductModelByID(ctx context.Context, id int64) (data domain.ProductModel, err error) {
	err = r.getRow(ctx, &data, "GetProductModelByID", "SELECT product_model_id, model_name, brand_id, description FROM product_models WHERE product_model_id = $1", id)
	return
}

func (r *CatalogRepositoryImpl) AddProductModel(ctx context.Context, modelName string, brandID int64) (data domain.ProductModel, err error) {
	err = r.getRow(ctx, &data, "AddProductModel", "INSERT INTO product_models (model_name, brand_id) VALUES ($1, $2) RETURNING product_model_id, model_name, brand_id, description", modelName, brandID)
	return
}

func (r *CatalogRepositoryImpl) UpdateProductModel(ctx context.Context, id int64, modelName string, description *string) (data domain.ProductModel, err error) {
	err = r.getRow(ctx, &data, "UpdateProductModel", "UPDATE product_models SET model_name = $1, description = $2 WHERE product_model_id = $3 RETURNING product_model_id, model_name, brand_id, description", modelName, description, id)
	return
}

func (r *CatalogRepositoryImpl) DeleteProductModel(ctx context.Context, id int64) (err error) {
	return r.deleteRow(ctx, "DeleteProductModel", "DELETE FROM product_models WHERE product_model_id = $1", id)
}
