package service

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/drezzup/catalog-service/config"
	"github.com/drezzup/catalog-service/internal/domain"
	"github.com/drezzup/catalog-service/internal/dto"
	"github.com/drezzup/catalog-service/internal/infrastructure/objectstorage"
	"github.com/drezzup/catalog-service/internal/repository"
	"github.com/drezzup/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const maxProductImages = 5

type ProductService interface {
	CreateProduct(ctx context.Context, payload dto.CreateProductRequest, files []*multipart.FileHeader) (res dto.CreateProductResponse, err error)
	GetProducts(ctx context.Context) (res []dto.ProductResponse, err error)
	GetProductsByCategory(ctx context.Context, categoryID int64) (res []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, productID int64) (res dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, productID int64, payload dto.UpdateProductRequest) (res dto.ProductResponse, err error)
	UpdateProductTag(ctx context.Context, productID int64, payload dto.UpdateProductTagRequest) (err error)
	DeleteProduct(ctx context.Context, productID int64) (err error)
}

type ProductServiceImpl struct {
	repo          repository.ProductRepository
	uploader      objectstorage.Uploader
	config        config.Config
	kafkaProducer *kafka.Conn
}

func CreateProductService(repo repository.ProductRepository, uploader objectstorage.Uploader, config config.Config, kafkaProducer *kafka.Conn) ProductService {
	return &ProductServiceImpl{repo: repo, uploader: uploader, config: config, kafkaProducer: kafkaProducer}
}

// CreateProduct builds the whole aggregate in one transaction: a fresh model
// row, the resolved tag, the product, its initial variant and one image plus
// link row per uploaded file. Uploads run sequentially inside the transaction
// so the stored image order matches the upload order; objects already pushed
// to storage when a later step fails are not cleaned up.
func (s *ProductServiceImpl) CreateProduct(ctx context.Context, payload dto.CreateProductRequest, files []*multipart.FileHeader) (res dto.CreateProductResponse, err error) {
	if payload.Category == "" || payload.Brand == "" || payload.Model == "" ||
		payload.Color == "" || payload.Size == "" || payload.Quantity == "" || payload.Price == "" {
		return res, errs.ErrClient
	}

	categoryID, err := strconv.ParseInt(payload.Category, 10, 64)
	if err != nil {
		return res, errs.ErrClient
	}
	brandID, err := strconv.ParseInt(payload.Brand, 10, 64)
	if err != nil {
		return res, errs.ErrClient
	}
	quantity, err := strconv.ParseInt(payload.Quantity, 10, 64)
	if err != nil {
		return res, errs.ErrClient
	}
	price, err := strconv.ParseFloat(payload.Price, 64)
	if err != nil {
		return res, errs.ErrClient
	}
	if len(files) > maxProductImages {
		return res, errs.ErrClient
	}

	var created domain.Product
	imageURLs := []string{}

	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.ProductRepository) error {
		modelID, err := repo.AddProductModel(ctx, payload.Model, payload.Description)
		if err != nil {
			return err
		}

		tagID, err := repo.GetOrCreateTag(ctx, payload.Tag)
		if err != nil {
			return err
		}

		created, err = repo.AddProduct(ctx, domain.Product{
			CategoryID:     categoryID,
			BrandID:        brandID,
			ProductModelID: modelID,
			TagID:          tagID,
			Price:          price,
		})
		if err != nil {
			return err
		}

		_, err = repo.AddProductVariant(ctx, domain.ProductVariant{
			ProductID: created.ProductID,
			Color:     payload.Color,
			Size:      payload.Size,
			Quantity:  quantity,
		})
		if err != nil {
			return err
		}

		for _, file := range files {
			f, err := file.Open()
			if err != nil {
				log.Error().Err(err).Str("component", "CreateProduct").Msg("")
				return errs.ErrInternalServer
			}

			url, err := s.uploader.UploadFile(ctx, f, file.Header.Get("Content-Type"), file.Filename)
			f.Close()
			if err != nil {
				log.Error().Err(err).Str("component", "CreateProduct").Msg("")
				return errs.ErrInternalServer
			}
			imageURLs = append(imageURLs, url)

			imageID, err := repo.AddImage(ctx, url)
			if err != nil {
				return err
			}
			if err := repo.AddProductImage(ctx, created.ProductID, imageID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if len(imageURLs) > 0 {
			log.Warn().Strs("urls", imageURLs).Str("component", "CreateProduct").Msg("transaction rolled back, uploaded objects orphaned")
		}
		return dto.CreateProductResponse{}, errs.ErrInternalServer
	}

	s.publishEvent("product_created", dto.ProductCoreResponse{
		ProductID:      created.ProductID,
		CategoryID:     created.CategoryID,
		BrandID:        created.BrandID,
		ProductModelID: created.ProductModelID,
		TagID:          created.TagID,
		Price:          created.Price,
		DateAdded:      created.DateAdded.Format(time.RFC3339),
	})

	return dto.CreateProductResponse{
		Product: dto.ProductCoreResponse{
			ProductID:      created.ProductID,
			CategoryID:     created.CategoryID,
			BrandID:        created.BrandID,
			ProductModelID: created.ProductModelID,
			TagID:          created.TagID,
			Price:          created.Price,
			DateAdded:      created.DateAdded.Format(time.RFC3339),
		},
		Images: imageURLs,
	}, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (res []dto.ProductResponse, err error) {
	details, err := s.repo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	res = make([]dto.ProductResponse, 0, len(details))
	for _, d := range details {
		res = append(res, toProductResponse(d))
	}

	return
}

func (s *ProductServiceImpl) GetProductsByCategory(ctx context.Context, categoryID int64) (res []dto.ProductResponse, err error) {
	details, err := s.repo.GetProductsByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	res = make([]dto.ProductResponse, 0, len(details))
	for _, d := range details {
		res = append(res, toProductResponse(d))
	}

	return
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, productID int64) (res dto.ProductResponse, err error) {
	detail, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return res, err
	}
	if detail.ProductID == 0 {
		return res, errs.ErrNotFound
	}

	return toProductResponse(detail), nil
}

// UpdateProduct rewrites the product scalars and, when a variants list is
// present, reconciles the stored variants against it: entries with an id are
// updated in place, entries without one are inserted, and every stored
// variant missing from the list is deleted. Image updates are not handled
// here.
func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, productID int64, payload dto.UpdateProductRequest) (res dto.ProductResponse, err error) {
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.ProductRepository) error {
		if payload.ModelName != "" && payload.ModelDescription != "" {
			if err := repo.UpdateProductModelByID(ctx, payload.ProductModelID, payload.ModelName, payload.ModelDescription); err != nil {
				return err
			}
		}

		affected, err := repo.UpdateProduct(ctx, domain.Product{
			ProductID:      productID,
			CategoryID:     payload.Category,
			BrandID:        payload.Brand,
			ProductModelID: payload.ProductModelID,
			TagID:          payload.Tag,
			Price:          payload.Price,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return errs.ErrNotFound
		}

		if payload.Variants == nil {
			return nil
		}

		existing, err := repo.GetProductVariants(ctx, productID)
		if err != nil {
			return err
		}

		keep := make(map[int64]bool, len(payload.Variants))
		for _, v := range payload.Variants {
			if v.VariantID != 0 {
				keep[v.VariantID] = true
				if err := repo.UpdateProductVariant(ctx, domain.ProductVariant{
					VariantID: v.VariantID,
					Color:     v.Color,
					Size:      v.Size,
					Quantity:  v.Quantity,
				}); err != nil {
					return err
				}
				continue
			}

			if _, err := repo.AddProductVariant(ctx, domain.ProductVariant{
				ProductID: productID,
				Color:     v.Color,
				Size:      v.Size,
				Quantity:  v.Quantity,
			}); err != nil {
				return err
			}
		}

		for _, v := range existing {
			if !keep[v.VariantID] {
				if err := repo.DeleteProductVariant(ctx, v.VariantID); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		if err == errs.ErrNotFound {
			return res, err
		}
		return res, errs.ErrInternalServer
	}

	res, err = s.GetProductByID(ctx, productID)
	if err != nil {
		return res, err
	}

	s.publishEvent("product_updated", res)

	return
}

func (s *ProductServiceImpl) UpdateProductTag(ctx context.Context, productID int64, payload dto.UpdateProductTagRequest) (err error) {
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.ProductRepository) error {
		tagID, err := repo.GetOrCreateTag(ctx, payload.Tag)
		if err != nil {
			return err
		}

		affected, err := repo.UpdateProductTag(ctx, productID, tagID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errs.ErrNotFound
		}

		return nil
	})
	if err != nil && err != errs.ErrNotFound {
		return errs.ErrInternalServer
	}

	return err
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, productID int64) (err error) {
	affected, err := s.repo.DeleteProduct(ctx, productID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrNotFound
	}

	s.publishEvent("product_deleted", map[string]int64{"product_id": productID})

	return nil
}

func toProductResponse(d domain.ProductDetail) dto.ProductResponse {
	variants := make([]dto.ProductVariantResponse, 0, len(d.Variants))
	for _, v := range d.Variants {
		variants = append(variants, dto.ProductVariantResponse{
			VariantID: v.VariantID,
			Color:     v.Color,
			Size:      v.Size,
			Quantity:  v.Quantity,
		})
	}

	images := d.Images
	if images == nil {
		images = []string{}
	}

	return dto.ProductResponse{
		ProductID:        d.ProductID,
		CategoryID:       d.CategoryID,
		CategoryName:     d.CategoryName,
		BrandID:          d.BrandID,
		BrandName:        d.BrandName,
		ProductModelID:   d.ProductModelID,
		ModelName:        d.ModelName,
		ModelDescription: d.ModelDescription,
		TagID:            d.TagID,
		TagName:          d.TagName,
		Price:            d.Price,
		DateAdded:        d.DateAdded.Format(time.RFC3339),
		Variants:         variants,
		Images:           images,
	}
}

func (s *ProductServiceImpl) publishEvent(eventType string, data interface{}) {
	if s.kafkaProducer == nil {
		return
	}

	jsonMsg, err := json.Marshal(dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = s.kafkaProducer.WriteMessages(kafka.Message{Value: jsonMsg})
		if err == nil {
			return
		}
		log.Warn().Err(err).Str("component", "publishEvent").Msgf("failed to write Kafka message (attempt %d/%d)", i+1, maxRetries)
		time.Sleep(time.Second * time.Duration(i+1))
	}

	log.Error().Err(err).Str("component", "publishEvent").Msg("giving up on Kafka message")
}
