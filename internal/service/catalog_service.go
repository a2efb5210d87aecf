package service

import (
	"context"

	"github.com/drezzup/catalog-service/internal/dto"
	"github.com/drezzup/catalog-service/internal/repository"
	"github.com/drezzup/catalog-service/pkg/errs"
)

// CatalogService handles the reference tables referenced by products. Every
// update and delete checks existence first so an absent row surfaces as a
// not-found instead of a silent zero-row mutation.
type CatalogService interface {
	GetCategories(ctx context.Context) (res []dto.CategoryResponse, err error)
	GetCategoryByName(ctx context.Context, name string) (res dto.CategoryResponse, err error)
	AddCategory(ctx context.Context, payload dto.CategoryRequest) (res dto.CategoryResponse, err error)
	UpdateCategory(ctx context.Context, id int64, payload dto.CategoryRequest) (res dto.CategoryResponse, err error)
	DeleteCategory(ctx context.Context, id int64) (err error)

	GetBrands(ctx context.Context) (res []dto.BrandResponse, err error)
	AddBrand(ctx context.Context, payload dto.BrandRequest) (res dto.BrandResponse, err error)
	UpdateBrand(ctx context.Context, id int64, payload dto.BrandRequest) (res dto.BrandResponse, err error)
	DeleteBrand(ctx context.Context, id int64) (err error)

	GetTags(ctx context.Context) (res []dto.TagResponse, err error)
	AddTag(ctx context.Context, payload dto.TagRequest) (res dto.TagResponse, err error)
	UpdateTag(ctx context.Context, id int64, payload dto.TagRequest) (res dto.TagResponse, err error)
	DeleteTag(ctx context.Context, id int64) (err error)

	GetProductModels(ctx context.Context) (res []dto.ProductModelResponse, err error)
	AddProductModel(ctx context.Context, payload dto.ProductModelRequest) (res dto.ProductModelResponse, err error)
	UpdateProductModel(ctx context.Context, id int64, payload dto.ProductModelRequest) (res dto.ProductModelResponse, err error)
	DeleteProductModel(ctx context.Context, id int64) (err error)
}

type CatalogServiceImpl struct {
	repo repository.CatalogRepository
}

func CreateCatalogService(repo repository.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{repo: repo}
}

func (s *CatalogServiceImpl) GetCategories(ctx context.Context) (res []dto.CategoryResponse, err error) {
	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	res = make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, dto.CategoryResponse{CategoryID: c.ID, CategoryName: c.Name})
	}

	return
}

func (s *CatalogServiceImpl) GetCategoryByName(ctx context.Context, name string) (res dto.CategoryResponse, err error) {
	if name == "" {
		return res, errs.ErrClient
	}

	category, err := s.repo.GetCategoryByName(ctx, name)
	if err != nil {
		return res, err
	}
	if category.ID == 0 {
		return res, errs.ErrNotFound
	}

	return dto.CategoryResponse{CategoryID: category.ID, CategoryName: category.Name}, nil
}

func (s *CatalogServiceImpl) AddCategory(ctx context.Context, payload dto.CategoryRequest) (res dto.CategoryResponse, err error) {
	if payload.CategoryName == "" {
		return res, errs.ErrClient
	}

	existing, err := s.repo.GetCategoryByName(ctx, payload.CategoryName)
	if err != nil {
		return res, err
	}
	if existing.ID != 0 {
		return res, errs.ErrDuplicateName
	}

	category, err := s.repo.AddCategory(ctx, payload.CategoryName)
	if err != nil {
		return res, err
	}

	return dto.CategoryResponse{CategoryID: category.ID, CategoryName: category.Name}, nil
}

func (s *CatalogServiceImpl) UpdateCategory(ctx context.Context, id int64, payload dto.CategoryRequest) (res dto.CategoryResponse, err error) {
	if payload.CategoryName == "" {
		return res, errs.ErrClient
	}

	existing, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return res, err
	}
	if existing.ID == 0 {
		return res, errs.ErrNotFound
	}

	category, err := s.repo.UpdateCategory(ctx, id, payload.CategoryName)
	if err != nil {
		return res, err
	}

	return dto.CategoryResponse{CategoryID: category.ID, CategoryName: category.Name}, nil
}

func (s *CatalogServiceImpl) DeleteCategory(ctx context.Context, id int64) (err error) {
	existing, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == 0 {
		return errs.ErrNotFound
	}

	return s.repo.DeleteCategory(ctx, id)
}

func (s *CatalogServiceImpl) GetBrands(ctx context.Context) (res []dto.BrandResponse, err error) {
	brands, err := s.repo.GetBrands(ctx)
	if err != nil {
		return nil, err
	}

	res = make([]dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		res = append(res, dto.BrandResponse{BrandID: b.ID, BrandName: b.Name})
	}

	return
}

func (s *CatalogServiceImpl) AddBrand(ctx context.Context, payload dto.BrandRequest) (res dto.BrandResponse, err error) {
	if payload.BrandName == "" {
		return res, errs.ErrClient
	}

	brand, err := s.repo.AddBrand(ctx, payload.BrandName)
	if err != nil {
		return res, err
	}

	return dto.BrandResponse{BrandID: brand.ID, BrandName: brand.Name}, nil
}

func (s *CatalogServiceImpl) UpdateBrand(ctx context.Context, id int64, payload dto.BrandRequest) (res dto.BrandResponse, err error) {
	if payload.BrandName == "" {
		return res, errs.ErrClient
	}

	existing, err := s.repo.GetBrandByID(ctx, id)
	if err != nil {
		return res, err
	}
	if existing.ID == 0 {
		return res, errs.ErrNotFound
	}

	brand, err := s.repo.UpdateBrand(ctx, id, payload.BrandName)
	if err != nil {
		return res, err
	}

	return dto.BrandResponse{BrandID: brand.ID, BrandName: brand.Name}, nil
}

func (s *CatalogServiceImpl) DeleteBrand(ctx context.Context, id int64) (err error) {
	existing, err := s.repo.GetBrandByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == 0 {
		return errs.ErrNotFound
	}

	return s.repo.DeleteBrand(ctx, id)
}

func (s *CatalogServiceImpl) GetTags(ctx context.Context) (res []dto.TagResponse, err error) {
	tags, err := s.repo.GetTags(ctx)
	if err != nil {
		return nil, err
	}

	res = make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		res = append(res, dto.TagResponse{TagID: t.ID, TagName: t.Name})
	}

	return
}

func (s *CatalogServiceImpl) AddTag(ctx context.Context, payload dto.TagRequest) (res dto.TagResponse, err error) {
	if payload.TagName == "" {
		return res, errs.ErrClient
	}

	tag, err := s.repo.AddTag(ctx, payload.TagName)
	if err != nil {
		return res, err
	}

	return dto.TagResponse{TagID: tag.ID, TagName: tag.Name}, nil
}

func (s *CatalogServiceImpl) UpdateTag(ctx context.Context, id int64, payload dto.TagRequest) (res dto.TagResponse, err error) {
	if payload.TagName == "" {
		return res, errs.ErrClient
	}

	existing, err := s.repo.GetTagByID(ctx, id)
	if err != nil {
		return res, err
	}
	if existing.ID == 0 {
		return res, errs.ErrNotFound
	}

	tag, err := s.repo.UpdateTag(ctx, id, payload.TagName)
	if err != nil {
		return res, err
	}

	return dto.TagResponse{TagID: tag.ID, TagName: tag.Name}, nil
}

func (s *CatalogServiceImpl) DeleteTag(ctx context.Context, id int64) (err error) {
	existing, err := s.repo.GetTagByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == 0 {
		return errs.ErrNotFound
	}

	return s.repo.DeleteTag(ctx, id)
}

func (s *CatalogServiceImpl) GetProductModels(ctx context.Context) (res []dto.ProductModelResponse, err error) {
	models, err := s.repo.GetProductModels(ctx)
	if err != nil {
		return nil, err
	}

	res = make([]dto.ProductModelResponse, 0, len(models))
	for _, m := range models {
		res = append(res, dto.ProductModelResponse{
			ProductModelID: m.ID,
			ModelName:      m.ModelName,
			BrandID:        m.BrandID,
			Description:    m.Description,
		})
	}

	return
}

func (s *CatalogServiceImpl) AddProductModel(ctx context.Context, payload dto.ProductModelRequest) (res dto.ProductModelResponse, err error) {
	if payload.ModelName == "" || payload.BrandID == 0 {
		return res, errs.ErrClient
	}

	model, err := s.repo.AddProductModel(ctx, payload.ModelName, payload.BrandID)
	if err != nil {
		return res, err
	}

	return dto.ProductModelResponse{
		ProductModelID: model.ID,
		ModelName:      model.ModelName,
		BrandID:        model.BrandID,
		Description:    model.Description,
	}, nil
}

func (s *CatalogServiceImpl) UpdateProductModel(ctx context.Context, id int64, payload dto.ProductModelRequest) (res dto.ProductModelResponse, err error) {
	if payload.ModelName == "" {
		return res, errs.ErrClient
	}

	existing, err := s.repo.GetProductModelByID(ctx, id)
	if err != nil {
		return res, err
	}
	if existing.ID == 0 {
		return res, errs.ErrNotFound
	}

	model, err := s.repo.UpdateProductModel(ctx, id, payload.ModelName, payload.Description)
	if err != nil {
		return res, err
	}

	return dto.ProductModelResponse{
		ProductModelID: model.ID,
		ModelName:      model.ModelName,
		BrandID:        model.BrandID,
		Description:    model.Description,
	}, nil
}

func (s *CatalogServiceImpl) DeleteProductModel(ctx context.Context, id int64) (err error) {
	existing, err := s.repo.GetProductModelByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == 0 {
		return errs.ErrNotFound
	}

	return s.repo.DeleteProductModel(ctx, id)
}
