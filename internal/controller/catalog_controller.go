package controller

import (
	"strconv"

	"github.com/drezzup/catalog-service/internal/dto"
	"github.com/drezzup/catalog-service/internal/service"
	"github.com/drezzup/catalog-service/pkg/errs"
	"github.com/drezzup/catalog-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	service service.CatalogService
}

// CreateCatalogController registers the reference-table routes. Reads are
// public; every mutation sits behind the admin middleware passed in.
func CreateCatalogController(e *echo.Group, service service.CatalogService, admin ...echo.MiddlewareFunc) {
	cc := CatalogController{
		service: service,
	}

	e.GET("/categories", cc.GetCategories)
	e.GET("/categories/:category_name", cc.GetCategoryByName)
	e.POST("/categories", cc.AddCategory, admin...)
	e.PUT("/categories/:id", cc.UpdateCategory, admin...)
	e.DELETE("/categories/:id", cc.DeleteCategory, admin...)

	e.GET("/brands", cc.GetBrands)
	e.POST("/brands", cc.AddBrand, admin...)
	e.PUT("/brands/:id", cc.UpdateBrand, admin...)
	e.DELETE("/brands/:id", cc.DeleteBrand, admin...)

	e.GET("/tags", cc.GetTags)
	e.POST("/tags", cc.AddTag, admin...)
	e.PUT("/tags/:id", cc.UpdateTag, admin...)
	e.DELETE("/tags/:id", cc.DeleteTag, admin...)

	e.GET("/product-models", cc.GetProductModels)
	e.POST("/product-models", cc.AddProductModel, admin...)
	e.PUT("/product-models/:id", cc.UpdateProductModel, admin...)
	e.DELETE("/product-models/:id", cc.DeleteProductModel, admin...)
}

func (c *CatalogController) GetCategories(e echo.Context) error {
	resp, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) GetCategoryByName(e echo.Context) error {
	resp, err := c.service.GetCategoryByName(e.Request().Context(), e.Param("category_name"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
	}

	resp, err := c.service.AddCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *CatalogController) UpdateCategory(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.CategoryRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCategory").Msg("")
	}

	resp, err := c.service.UpdateCategory(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) DeleteCategory(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.DeleteCategory(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "category deleted", nil)
}

func (c *CatalogController) GetBrands(e echo.Context) error {
	resp, err := c.service.GetBrands(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) AddBrand(e echo.Context) error {
	payload := dto.BrandRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddBrand").Msg("")
	}

	resp, err := c.service.AddBrand(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *CatalogController) UpdateBrand(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.BrandRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateBrand").Msg("")
	}

	resp, err := c.service.UpdateBrand(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) DeleteBrand(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.DeleteBrand(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "brand deleted", nil)
}

func (c *CatalogController) GetTags(e echo.Context) error {
	resp, err := c.service.GetTags(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) AddTag(e echo.Context) error {
	payload := dto.TagRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddTag").Msg("")
	}

	resp, err := c.service.AddTag(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *CatalogController) UpdateTag(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.TagRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateTag").Msg("")
	}

	resp, err := c.service.UpdateTag(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) DeleteTag(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.DeleteTag(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "tag deleted", nil)
}

func (c *CatalogController) GetProductModels(e echo.Context) error {
	resp, err := c.service.GetProductModels(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) AddProductModel(e echo.Context) error {
	payload := dto.ProductModelRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProductModel").Msg("")
	}

	resp, err := c.service.AddProductModel(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *CatalogController) UpdateProductModel(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.ProductModelRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProductModel").Msg("")
	}

	resp, err := c.service.UpdateProductModel(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) DeleteProductModel(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.DeleteProductModel(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "product model deleted", nil)
}
