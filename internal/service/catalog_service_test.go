package service

import (
	"context"
	"testing"

	"github.com/drezzup/catalog-service/internal/domain"
	"github.com/drezzup/catalog-service/internal/dto"
	"github.com/drezzup/catalog-service/pkg/errs"
	"github.com/stretchr/testify/assert"
)

type mockCatalogRepository struct {
	getCategoriesFn     func(ctx context.Context) ([]domain.Category, error)
	getCategoryByIDFn   func(ctx context.Context, id int64) (domain.Category, error)
	getCategoryByNameFn func(ctx context.Context, name string) (domain.Category, error)
	addCategoryFn       func(ctx context.Context, name string) (domain.Category, error)
	updateCategoryFn    func(ctx context.Context, id int64, name string) (domain.Category, error)
	deleteCategoryFn    func(ctx context.Context, id int64) error

	getBrandsFn    func(ctx context.Context) ([]domain.Brand, error)
	getBrandByIDFn func(ctx context.Context, id int64) (domain.Brand, error)
	addBrandFn     func(ctx context.Context, name string) (domain.Brand, error)
	updateBrandFn  func(ctx context.Context, id int64, name string) (domain.Brand, error)
	deleteBrandFn  func(ctx context.Context, id int64) error

	getTagsFn    func(ctx context.Context) ([]domain.Tag, error)
	getTagByIDFn func(ctx context.Context, id int64) (domain.Tag, error)
	addTagFn     func(ctx context.Context, name string) (domain.Tag, error)
	updateTagFn  func(ctx context.Context, id int64, name string) (domain.Tag, error)
	deleteTagFn  func(ctx context.Context, id int64) error

	getProductModelsFn    func(ctx context.Context) ([]domain.ProductModel, error)
	getProductModelByIDFn func(ctx context.Context, id int64) (domain.ProductModel, error)
	addProductModelFn     func(ctx context.Context, modelName string, brandID int64) (domain.ProductModel, error)
	updateProductModelFn  func(ctx context.Context, id int64, modelName string, description *string) (domain.ProductModel, error)
	deleteProductModelFn  func(ctx context.Context, id int64) error
}

func (m *mockCatalogRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return m.getCategoriesFn(ctx)
}

func (m *mockCatalogRepository) GetCategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	return m.getCategoryByIDFn(ctx, id)
}

func (m *mockCatalogRepository) GetCategoryByName(ctx context.Context, name string) (domain.Category, error) {
	return m.getCategoryByNameFn(ctx, name)
}

func (m *mockCatalogRepository) AddCategory(ctx context.Context, name string) (domain.Category, error) {
	return m.addCategoryFn(ctx, name)
}

func (m *mockCatalogRepository) UpdateCategory(ctx context.Context, id int64, name string) (domain.Category, error) {
	return m.updateCategoryFn(ctx, id, name)
}

func (m *mockCatalogRepository) DeleteCategory(ctx context.Context, id int64) error {
	return m.deleteCategoryFn(ctx, id)
}

func (m *mockCatalogRepository) GetBrands(ctx context.Context) ([]domain.Brand, error) {
	return m.getBrandsFn(ctx)
}

func (m *mockCatalogRepository) GetBrandByID(ctx context.Context, id int64) (domain.Brand, error) {
	return m.getBrandByIDFn(ctx, id)
}

func (m *mockCatalogRepository) AddBrand(ctx context.Context, name string) (domain.Brand, error) {
	return m.addBrandFn(ctx, name)
}

func (m *mockCatalogRepository) UpdateBrand(ctx context.Context, id int64, name string) (domain.Brand, error) {
	return m.updateBrandFn(ctx, id, name)
}

func (m *mockCatalogRepository) DeleteBrand(ctx context.Context, id int64) error {
	return m.deleteBrandFn(ctx, id)
}

func (m *mockCatalogRepository) GetTags(ctx context.Context) ([]domain.Tag, error) {
	return m.getTagsFn(ctx)
}

func (m *mockCatalogRepository) GetTagByID(ctx context.Context, id int64) (domain.Tag, error) {
	return m.getTagByIDFn(ctx, id)
}

func (m *mockCatalogRepository) AddTag(ctx context.Context, name string) (domain.Tag, error) {
	return m.addTagFn(ctx, name)
}

func (m *mockCatalogRepository) UpdateTag(ctx context.Context, id int64, name string) (domain.Tag, error) {
	return m.updateTagFn(ctx, id, name)
}

func (m *mockCatalogRepository) DeleteTag(ctx context.Context, id int64) error {
	return m.deleteTagFn(ctx, id)
}

func (m *mockCatalogRepository) GetProductModels(ctx context.Context) ([]domain.ProductModel, error) {
	return m.getProductModelsFn(ctx)
}

func (m *mockCatalogRepository) GetProductModelByID(ctx context.Context, id int64) (domain.ProductModel, error) {
	return m.getProductModelByIDFn(ctx, id)
}

func (m *mockCatalogRepository) AddProductModel(ctx context.Context, modelName string, brandID int64) (domain.ProductModel, error) {
	return m.addProductModelFn(ctx, modelName, brandID)
}

func (m *mockCatalogRepository) UpdateProductModel(ctx context.Context, id int64, modelName string, description *string) (domain.ProductModel, error) {
	return m.updateProductModelFn(ctx, id, modelName, description)
}

func (m *mockCatalogRepository) DeleteProductModel(ctx context.Context, id int64) error {
	return m.deleteProductModelFn(ctx, id)
}

func TestGetCategories(t *testing.T) {
	repo := &mockCatalogRepository{
		getCategoriesFn: func(ctx context.Context) ([]domain.Category, error) {
			return []domain.Category{{ID: 1, Name: "sneakers"}, {ID: 2, Name: "boots"}}, nil
		},
	}
	svc := CreateCatalogService(repo)

	res, err := svc.GetCategories(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "sneakers", res[0].CategoryName)
}

func TestGetCategoriesEmpty(t *testing.T) {
	repo := &mockCatalogRepository{
		getCategoriesFn: func(ctx context.Context) ([]domain.Category, error) {
			return nil, nil
		},
	}
	svc := CreateCatalogService(repo)

	res, err := svc.GetCategories(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Len(t, res, 0)
}

func TestAddCategoryDuplicateName(t *testing.T) {
	repo := &mockCatalogRepository{
		getCategoryByNameFn: func(ctx context.Context, name string) (domain.Category, error) {
			return domain.Category{ID: 1, Name: name}, nil
		},
	}
	svc := CreateCatalogService(repo)

	_, err := svc.AddCategory(context.Background(), dto.CategoryRequest{CategoryName: "sneakers"})
	assert.Equal(t, errs.ErrDuplicateName, err)
}

func TestAddCategory(t *testing.T) {
	repo := &mockCatalogRepository{
		getCategoryByNameFn: func(ctx context.Context, name string) (domain.Category, error) {
			return domain.Category{}, nil
		},
		addCategoryFn: func(ctx context.Context, name string) (domain.Category, error) {
			return domain.Category{ID: 5, Name: name}, nil
		},
	}
	svc := CreateCatalogService(repo)

	res, err := svc.AddCategory(context.Background(), dto.CategoryRequest{CategoryName: "sneakers"})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), res.CategoryID)
	assert.Equal(t, "sneakers", res.CategoryName)
}

func TestAddCategoryMissingName(t *testing.T) {
	svc := CreateCatalogService(&mockCatalogRepository{})

	_, err := svc.AddCategory(context.Background(), dto.CategoryRequest{})
	assert.Equal(t, errs.ErrClient, err)
}

func TestGetCategoryByNameNotFound(t *testing.T) {
	repo := &mockCatalogRepository{
		getCategoryByNameFn: func(ctx context.Context, name string) (domain.Category, error) {
			return domain.Category{}, nil
		},
	}
	svc := CreateCatalogService(repo)

	_, err := svc.GetCategoryByName(context.Background(), "ghost")
	assert.Equal(t, errs.ErrNotFound, err)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	repo := &mockCatalogRepository{
		getCategoryByIDFn: func(ctx context.Context, id int64) (domain.Category, error) {
			return domain.Category{}, nil
		},
	}
	svc := CreateCatalogService(repo)

	_, err := svc.UpdateCategory(context.Background(), 99, dto.CategoryRequest{CategoryName: "heels"})
	assert.Equal(t, errs.ErrNotFound, err)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	repo := &mockCatalogRepository{
		getCategoryByIDFn: func(ctx context.Context, id int64) (domain.Category, error) {
			return domain.Category{}, nil
		},
	}
	svc := CreateCatalogService(repo)

	err := svc.DeleteCategory(context.Background(), 99)
	assert.Equal(t, errs.ErrNotFound, err)
}

func TestUpdateBrand(t *testing.T) {
	repo := &mockCatalogRepository{
		getBrandByIDFn: func(ctx context.Context, id int64) (domain.Brand, error) {
			return domain.Brand{ID: id, Name: "nike"}, nil
		},
		updateBrandFn: func(ctx context.Context, id int64, name string) (domain.Brand, error) {
			return domain.Brand{ID: id, Name: name}, nil
		},
	}
	svc := CreateCatalogService(repo)

	res, err := svc.UpdateBrand(context.Background(), 2, dto.BrandRequest{BrandName: "adidas"})
	assert.NoError(t, err)
	assert.Equal(t, "adidas", res.BrandName)
}

func TestDeleteBrandNotFound(t *testing.T) {
	repo := &mockCatalogRepository{
		getBrandByIDFn: func(ctx context.Context, id int64) (domain.Brand, error) {
			return domain.Brand{}, nil
		},
	}
	svc := CreateCatalogService(repo)

	err := svc.DeleteBrand(context.Background(), 99)
	assert.Equal(t, errs.ErrNotFound, err)
}

func TestUpdateTagNotFound(t *testing.T) {
	repo := &mockCatalogRepository{
		getTagByIDFn: func(ctx context.Context, id int64) (domain.Tag, error) {
			return domain.Tag{}, nil
		},
	}
	svc := CreateCatalogService(repo)

	_, err := svc.UpdateTag(context.Background(), 99, dto.TagRequest{TagName: "sale"})
	assert.Equal(t, errs.ErrNotFound, err)
}

func TestAddProductModel(t *testing.T) {
	repo := &mockCatalogRepository{
		addProductModelFn: func(ctx context.Context, modelName string, brandID int64) (domain.ProductModel, error) {
			return domain.ProductModel{ID: 4, ModelName: modelName, BrandID: brandID}, nil
		},
	}
	svc := CreateCatalogService(repo)

	res, err := svc.AddProductModel(context.Background(), dto.ProductModelRequest{ModelName: "Air Max 90", BrandID: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(4), res.ProductModelID)
	assert.Equal(t, int64(2), res.BrandID)
}

func TestAddProductModelMissingBrand(t *testing.T) {
	svc := CreateCatalogService(&mockCatalogRepository{})

	_, err := svc.AddProductModel(context.Background(), dto.ProductModelRequest{ModelName: "Air Max 90"})
	assert.Equal(t, errs.ErrClient, err)
}

func TestDeleteProductModelNotFound(t *testing.T) {
	repo := &mockCatalogRepository{
		getProductModelByIDFn: func(ctx context.Context, id int64) (domain.ProductModel, error) {
			return domain.ProductModel{}, nil
		},
	}
	svc := CreateCatalogService(repo)

	err := svc.DeleteProductModel(context.Background(), 99)
	assert.Equal(t, errs.ErrNotFound, err)
}
