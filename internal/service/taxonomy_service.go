package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell/internal/db"
)

var (
	ErrCategoryExists = errors.New("category already exists")
	ErrTagExists      = errors.New("tag already exists")
)

// TaxonomyService wraps category and tag management.
type TaxonomyService struct {
	db *gorm.DB
}

// CategoryInput represents fields accepted when creating a category.
type CategoryInput struct {
	Name        string
	Slug        string
	Description string
	Color       string
	Icon        string
	SortOrder   int
}

// NewTaxonomyService creates a TaxonomyService instance.
func NewTaxonomyService(gdb *gorm.DB) *TaxonomyService {
	return &TaxonomyService{db: gdb}
}

// ListCategories 按 sort_order 正序返回全部分类。
func (s *TaxonomyService) ListCategories() ([]db.Category, error) {
	var categories []db.Category
	if err := s.db.Order("sort_order asc").Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory 创建分类，slug 缺省时从名称派生。
func (s *TaxonomyService) CreateCategory(input CategoryInput) (*db.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(name)
	}

	var existing db.Category
	if err := s.db.Where("name = ? OR slug = ?", name, slug).First(&existing).Error; err == nil {
		return nil, ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := db.Category{
		PublicID:    uuid.NewString(),
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		Color:       strings.TrimSpace(input.Color),
		Icon:        strings.TrimSpace(input.Icon),
		SortOrder:   input.SortOrder,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}

	return &category, nil
}

// ListTags 按名称正序返回全部标签。
func (s *TaxonomyService) ListTags() ([]db.Tag, error) {
	var tags []db.Tag
	if err := s.db.Order("name asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag 创建标签，slug 缺省时从名称派生。
func (s *TaxonomyService) CreateTag(name, slug string) (*db.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = Slugify(name)
	}

	var existing db.Tag
	if err := s.db.Where("name = ? OR slug = ?", name, slug).First(&existing).Error; err == nil {
		return nil, ErrTagExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := db.Tag{
		PublicID: uuid.NewString(),
		Name:     name,
		Slug:     slug,
	}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, err
	}

	return &tag, nil
}
