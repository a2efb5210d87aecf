package controller

import (
	"mime/multipart"
	"strconv"

	"github.com/drezzup/catalog-service/internal/dto"
	"github.com/drezzup/catalog-service/internal/service"
	"github.com/drezzup/catalog-service/pkg/errs"
	"github.com/drezzup/catalog-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, admin ...echo.MiddlewareFunc) {
	pc := ProductController{
		service: service,
	}

	e.GET("/products", pc.GetProducts)
	e.GET("/products/:product_id", pc.GetProductByID)
	e.GET("/products/category/:category_id", pc.GetProductsByCategory)
	e.POST("/products", pc.CreateProduct, admin...)
	e.PUT("/products/:product_id", pc.UpdateProduct, admin...)
	e.PATCH("/products/:product_id/tag", pc.UpdateProductTag, admin...)
	e.DELETE("/products/:product_id", pc.DeleteProduct, admin...)
}

// CreateProduct consumes a multipart form: scalar fields plus up to five
// files under the "images" key. A request with no files is still valid.
func (c *ProductController) CreateProduct(e echo.Context) error {
	payload := dto.CreateProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "CreateProduct").Msg("")
	}

	var files []*multipart.FileHeader
	form, err := e.MultipartForm()
	if err == nil && form != nil {
		files = form.File["images"]
	}

	respPayload, err := c.service.CreateProduct(e.Request().Context(), payload, files)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "product created", respPayload)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	resp, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("product_id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProductsByCategory(e echo.Context) error {
	categoryID, err := strconv.ParseInt(e.Param("category_id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetProductsByCategory(e.Request().Context(), categoryID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("product_id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.UpdateProductRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	resp, err := c.service.UpdateProduct(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "product updated", resp)
}

func (c *ProductController) UpdateProductTag(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("product_id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.UpdateProductTagRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProductTag").Msg("")
	}

	err = c.service.UpdateProductTag(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "product tag updated", nil)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("product_id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "product deleted", nil)
}
