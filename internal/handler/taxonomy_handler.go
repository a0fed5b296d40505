package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/internal/service"
)

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"sort_order"`
}

type tagRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

// GetCategories 按 sort_order 返回全部分类。
func (a *API) GetCategories(c *gin.Context) {
	categories, err := a.taxonomy.ListCategories()
	if err != nil {
		a.logger.Error().Err(err).Msg("list categories failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory 创建分类（仅管理员）。
func (a *API) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req, "name is required") {
		return
	}

	category, err := a.taxonomy.CreateCategory(service.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryExists):
			respondError(c, http.StatusBadRequest, "Category already exists")
		default:
			respondError(c, http.StatusBadRequest, "Failed to create category")
		}
		return
	}

	c.JSON(http.StatusOK, category)
}

// GetTags 按名称返回全部标签。
func (a *API) GetTags(c *gin.Context) {
	tags, err := a.taxonomy.ListTags()
	if err != nil {
		a.logger.Error().Err(err).Msg("list tags failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, tags)
}

// CreateTag 创建标签（仅管理员）。
func (a *API) CreateTag(c *gin.Context) {
	var req tagRequest
	if !bindJSON(c, &req, "name is required") {
		return
	}

	tag, err := a.taxonomy.CreateTag(req.Name, req.Slug)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTagExists):
			respondError(c, http.StatusBadRequest, "Tag already exists")
		default:
			respondError(c, http.StatusBadRequest, "Failed to create tag")
		}
		return
	}

	c.JSON(http.StatusOK, tag)
}
