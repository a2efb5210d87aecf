package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/drezzup/catalog-service/internal/domain"
	"github.com/drezzup/catalog-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// ProductRepository owns the product aggregate: the product row, its
// variants and its image links. Write methods run against the transaction
// opened by HandleTrx when one is active, otherwise against the pool.
type ProductRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) error

	AddProductModel(ctx context.Context, modelName string, description string) (id int64, err error)
	UpdateProductModelByID(ctx context.Context, id int64, modelName string, description string) (err error)
	GetOrCreateTag(ctx context.Context, name string) (id *int64, err error)

	AddProduct(ctx context.Context, data domain.Product) (res domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (affected int64, err error)
	UpdateProductTag(ctx context.Context, productID int64, tagID *int64) (affected int64, err error)
	DeleteProduct(ctx context.Context, productID int64) (affected int64, err error)

	GetProductVariants(ctx context.Context, productID int64) (data []domain.ProductVariant, err error)
	AddProductVariant(ctx context.Context, data domain.ProductVariant) (res domain.ProductVariant, err error)
	UpdateProductVariant(ctx context.Context, data domain.ProductVariant) (err error)
	DeleteProductVariant(ctx context.Context, variantID int64) (err error)

	AddImage(ctx context.Context, imageURL string) (id int64, err error)
	AddProductImage(ctx context.Context, productID int64, imageID int64) (err error)

	GetProducts(ctx context.Context) (data []domain.ProductDetail, err error)
	GetProductsByCategoryID(ctx context.Context, categoryID int64) (data []domain.ProductDetail, err error)
	GetProductByID(ctx context.Context, productID int64) (data domain.ProductDetail, err error)
}

type ProductRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreateProductRepository(db *sqlx.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) ext() sqlx.ExtContext {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// HandleTrx runs fn against a repository bound to a single transaction.
// Any error returned by fn rolls the whole transaction back.
func (r *ProductRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		log.Error().Err(err).Str("component", "HandleTrx").Msg("")
		return errs.ErrInternalServer
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	trxRepo := &ProductRepositoryImpl{db: r.db, tx: tx}

	err = fn(ctx, trxRepo)

	return err
}

func (r *ProductRepositoryImpl) AddProductModel(ctx context.Context, modelName string, description string) (id int64, err error) {
	err = r.ext().QueryRowxContext(ctx,
		"INSERT INTO product_models (model_name, description) VALUES ($1, $2) RETURNING product_model_id",
		modelName, description).Scan(&id)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProductModel").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) UpdateProductModelByID(ctx context.Context, id int64, modelName string, description string) (err error) {
	_, err = r.ext().ExecContext(ctx,
		"UPDATE product_models SET model_name = $1, description = $2 WHERE product_model_id = $3",
		modelName, description, id)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProductModelByID").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

// GetOrCreateTag resolves a tag name to its id, inserting the tag on first
// use. A blank name resolves to no tag at all.
func (r *ProductRepositoryImpl) GetOrCreateTag(ctx context.Context, name string) (id *int64, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	var tagID int64
	err = r.ext().QueryRowxContext(ctx, "SELECT tag_id FROM tag WHERE tag_name = $1", name).Scan(&tagID)
	if err == nil {
		return &tagID, nil
	}
	if err != sql.ErrNoRows {
		log.Error().Err(err).Str("component", "GetOrCreateTag").Msg("")
		return nil, errs.ErrInternalServer
	}

	err = r.ext().QueryRowxContext(ctx, "INSERT INTO tag (tag_name) VALUES ($1) RETURNING tag_id", name).Scan(&tagID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrCreateTag").Msg("")
		return nil, errs.ErrInternalServer
	}

	return &tagID, nil
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (res domain.Product, err error) {
	err = r.ext().QueryRowxContext(ctx,
		"INSERT INTO products (category_id, brand_id, product_model_id, tag_id, price) VALUES ($1, $2, $3, $4, $5) RETURNING product_id, category_id, brand_id, product_model_id, tag_id, price, date_added",
		data.CategoryID, data.BrandID, data.ProductModelID, data.TagID, data.Price).StructScan(&res)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (affected int64, err error) {
	result, err := r.ext().ExecContext(ctx,
		"UPDATE products SET category_id = $1, brand_id = $2, product_model_id = $3, tag_id = $4, price = $5 WHERE product_id = $6",
		data.CategoryID, data.BrandID, data.ProductModelID, data.TagID, data.Price, data.ProductID)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return 0, errs.ErrInternalServer
	}

	affected, err = result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) UpdateProductTag(ctx context.Context, productID int64, tagID *int64) (affected int64, err error) {
	result, err := r.ext().ExecContext(ctx,
		"UPDATE products SET tag_id = $1 WHERE product_id = $2", tagID, productID)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProductTag").Msg("")
		return 0, errs.ErrInternalServer
	}

	affected, err = result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProductTag").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

// DeleteProduct removes the product row only; variants and image links go
// with it through the ON DELETE CASCADE constraints on the child tables.
func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, productID int64) (affected int64, err error) {
	result, err := r.ext().ExecContext(ctx, "DELETE FROM products WHERE product_id = $1", productID)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return 0, errs.ErrInternalServer
	}

	affected, err = result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) GetProductVariants(ctx context.Context, productID int64) (data []domain.ProductVariant, err error) {
	err = sqlx.SelectContext(ctx, r.ext(), &data,
		"SELECT variant_id, product_id, color, size, quantity FROM product_variants WHERE product_id = $1 ORDER BY variant_id", productID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductVariants").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) AddProductVariant(ctx context.Context, data domain.ProductVariant) (res domain.ProductVariant, err error) {
	err = r.ext().QueryRowxContext(ctx,
		"INSERT INTO product_variants (product_id, color, size, quantity) VALUES ($1, $2, $3, $4) RETURNING variant_id, product_id, color, size, quantity",
		data.ProductID, data.Color, data.Size, data.Quantity).StructScan(&res)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProductVariant").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) UpdateProductVariant(ctx context.Context, data domain.ProductVariant) (err error) {
	_, err = r.ext().ExecContext(ctx,
		"UPDATE product_variants SET color = $1, size = $2, quantity = $3 WHERE variant_id = $4",
		data.Color, data.Size, data.Quantity, data.VariantID)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProductVariant").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProductVariant(ctx context.Context, variantID int64) (err error) {
	_, err = r.ext().ExecContext(ctx, "DELETE FROM product_variants WHERE variant_id = $1", variantID)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProductVariant").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *ProductRepositoryImpl) AddImage(ctx context.Context, imageURL string) (id int64, err error) {
	err = r.ext().QueryRowxContext(ctx, "INSERT INTO images (image_url) VALUES ($1) RETURNING image_id", imageURL).Scan(&id)
	if err != nil {
		log.Error().Err(err).Str("component", "AddImage").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) AddProductImage(ctx context.Context, productID int64, imageID int64) (err error) {
	_, err = r.ext().ExecContext(ctx, "INSERT INTO product_images (product_id, image_id) VALUES ($1, $2)", productID, imageID)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProductImage").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

const productDetailQuery = `SELECT p.product_id, p.category_id, c.category_name, p.brand_id, b.brand_name,
	p.product_model_id, pm.model_name, pm.description AS model_description,
	p.tag_id, t.tag_name, p.price, p.date_added
FROM products p
JOIN categories c ON p.category_id = c.category_id
JOIN brands b ON p.brand_id = b.brand_id
JOIN product_models pm ON p.product_model_id = pm.product_model_id
LEFT JOIN tag t ON p.tag_id = t.tag_id`

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context) (data []domain.ProductDetail, err error) {
	err = sqlx.SelectContext(ctx, r.ext(), &data, productDetailQuery+" ORDER BY p.product_id")
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrInternalServer
	}

	if err = r.loadProductChildren(ctx, data); err != nil {
		return nil, err
	}

	return
}

func (r *ProductRepositoryImpl) GetProductsByCategoryID(ctx context.Context, categoryID int64) (data []domain.ProductDetail, err error) {
	err = sqlx.SelectContext(ctx, r.ext(), &data, productDetailQuery+" WHERE p.category_id = $1 ORDER BY p.product_id", categoryID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsByCategoryID").Msg("")
		return nil, errs.ErrInternalServer
	}

	if err = r.loadProductChildren(ctx, data); err != nil {
		return nil, err
	}

	return
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, productID int64) (data domain.ProductDetail, err error) {
	err = r.ext().QueryRowxContext(ctx, productDetailQuery+" WHERE p.product_id = $1", productID).StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return data, errs.ErrInternalServer
	}

	details := []domain.ProductDetail{data}
	if err = r.loadProductChildren(ctx, details); err != nil {
		return data, err
	}

	return details[0], nil
}

// loadProductChildren batch-loads variants and image URLs for the given
// detail rows. Products without children end up with empty slices, never nil.
func (r *ProductRepositoryImpl) loadProductChildren(ctx context.Context, details []domain.ProductDetail) error {
	if len(details) == 0 {
		return nil
	}

	ids := make([]int64, len(details))
	index := make(map[int64]int, len(details))
	for i := range details {
		ids[i] = details[i].ProductID
		index[details[i].ProductID] = i
		details[i].Variants = []domain.ProductVariant{}
		details[i].Images = []string{}
	}

	var variants []domain.ProductVariant
	err := sqlx.SelectContext(ctx, r.ext(), &variants,
		"SELECT variant_id, product_id, color, size, quantity FROM product_variants WHERE product_id = ANY($1) ORDER BY variant_id",
		pq.Array(ids))
	if err != nil {
		log.Error().Err(err).Str("component", "loadProductChildren").Msg("")
		return errs.ErrInternalServer
	}

	for _, v := range variants {
		i := index[v.ProductID]
		details[i].Variants = append(details[i].Variants, v)
	}

	var images []struct {
		ProductID int64  `db:"product_id"`
		ImageURL  string `db:"image_url"`
	}
	err = sqlx.SelectContext(ctx, r.ext(), &images,
		"SELECT pi.product_id, i.image_url FROM product_images pi JOIN images i ON pi.image_id = i.image_id WHERE pi.product_id = ANY($1) ORDER BY i.image_id",
		pq.Array(ids))
	if err != nil {
		log.Error().Err(err).Str("component", "loadProductChildren").Msg("")
		return errs.ErrInternalServer
	}

	for _, img := range images {
		i := index[img.ProductID]
		details[i].Images = append(details[i].Images, img.ImageURL)
	}

	return nil
}
