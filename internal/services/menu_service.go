package services

import (
	"context"
	"log"
	"time"

	"breakfastpos/internal/caching"
	"breakfastpos/internal/common"
	"breakfastpos/internal/models"
	"breakfastpos/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	productCacheTTL  = 10 * time.Minute
	categoryCacheTTL = 30 * time.Minute
)

type CreateProductRequest struct {
	CategoryID  uuid.UUID       `json:"category_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Available   *bool           `json:"available,omitempty"`
}

type UpdateProductRequest struct {
	CategoryID  uuid.UUID       `json:"category_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
}

type CreateCategoryRequest struct {
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

// MenuService owns the product catalog and its categories. Reads go through
// the cache; every write invalidates the affected keys so the next read
// repopulates from the database.
type MenuService interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, categoryID *uuid.UUID, limit, offset int) ([]*models.Product, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)

	CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ToggleAvailability(ctx context.Context, id uuid.UUID) (*models.Product, error)

	CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type menuService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	cache        caching.CacheService
}

func NewMenuService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, cache caching.CacheService) MenuService {
	return &menuService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// GetProduct is the pricing lookup used at checkout, so it is the hottest
// read in the system. Returns (nil, nil) when no such product exists.
func (s *menuService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	cached, err := s.cache.GetProduct(ctx, id)
	if err != nil {
		log.Printf("WARN: product cache read failed for %s: %v", id, err)
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if err := s.cache.SetProduct(ctx, product, productCacheTTL); err != nil {
		log.Printf("WARN: product cache write failed for %s: %v", id, err)
	}
	return product, nil
}

func (s *menuService) ListProducts(ctx context.Context, categoryID *uuid.UUID, limit, offset int) ([]*models.Product, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)

	var (
		products []*models.Product
		err      error
	)
	if categoryID != nil {
		products, err = s.productRepo.ListByCategory(ctx, *categoryID, limit, offset)
	} else {
		products, err = s.productRepo.List(ctx, limit, offset)
	}
	if err != nil {
		return nil, common.NewInternal("list products", err)
	}
	return products, nil
}

func (s *menuService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	cached, err := s.cache.GetCategories(ctx)
	if err != nil {
		log.Printf("WARN: category cache read failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, common.NewInternal("list categories", err)
	}

	if err := s.cache.SetCategories(ctx, categories, categoryCacheTTL); err != nil {
		log.Printf("WARN: category cache write failed: %v", err)
	}
	return categories, nil
}

func (s *menuService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if err := s.validateProductFields(req.Name, req.Price); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, common.NewInternal("look up category", err)
	}
	if category == nil {
		return nil, common.NewNotFound("category not found with id: %s", req.CategoryID)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	product := &models.Product{
		ID:          uuid.New(),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   available,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, common.NewInternal("create product", err)
	}

	log.Printf("product created: %s (%s)", product.Name, product.ID)
	return product, nil
}

func (s *menuService) UpdateProduct(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := s.validateProductFields(req.Name, req.Price); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, common.NewInternal("look up product", err)
	}
	if product == nil {
		return nil, common.NewNotFound("product not found with id: %s", id)
	}

	product.CategoryID = req.CategoryID
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Available = req.Available

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, common.NewInternal("update product", err)
	}
	s.evictProduct(ctx, id)

	return product, nil
}

func (s *menuService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return common.NewInternal("look up product", err)
	}
	if product == nil {
		return common.NewNotFound("product not found with id: %s", id)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return common.NewInternal("delete product", err)
	}
	s.evictProduct(ctx, id)

	log.Printf("product deleted: %s (%s)", product.Name, id)
	return nil
}

// ToggleAvailability flips the sold-out flag. This is the switch staff hit
// when the kitchen runs out of an item mid-service.
func (s *menuService) ToggleAvailability(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, common.NewInternal("look up product", err)
	}
	if product == nil {
		return nil, common.NewNotFound("product not found with id: %s", id)
	}

	product.Available = !product.Available
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, common.NewInternal("update product availability", err)
	}
	s.evictProduct(ctx, id)

	log.Printf("product %s availability set to %t", product.Name, product.Available)
	return product, nil
}

func (s *menuService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error) {
	if err := common.ValidateRequiredString(req.Name, "category name"); err != nil {
		return nil, common.NewInvalidRequest("%s", err.Error())
	}

	category := &models.Category{
		ID:           uuid.New(),
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, common.NewInternal("create category", err)
	}
	s.evictCategories(ctx)

	return category, nil
}

func (s *menuService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return common.NewInternal("look up category", err)
	}
	if category == nil {
		return common.NewNotFound("category not found with id: %s", id)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return common.NewInternal("delete category", err)
	}
	s.evictCategories(ctx)

	return nil
}

func (s *menuService) validateProductFields(name string, price decimal.Decimal) error {
	if err := common.ValidateRequiredString(name, "product name"); err != nil {
		return common.NewInvalidRequest("%s", err.Error())
	}
	if err := common.ValidateNonNegativePrice(price, "product price"); err != nil {
		return common.NewInvalidRequest("%s", err.Error())
	}
	return nil
}

func (s *menuService) evictProduct(ctx context.Context, id uuid.UUID) {
	if err := s.cache.DeleteProduct(ctx, id); err != nil {
		log.Printf("WARN: product cache eviction failed for %s: %v", id, err)
	}
}

func (s *menuService) evictCategories(ctx context.Context) {
	if err := s.cache.InvalidateCategories(ctx); err != nil {
		log.Printf("WARN: category cache eviction failed: %v", err)
	}
}
