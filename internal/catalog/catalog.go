// Package catalog is the read model for product aggregates plus the
// administrative mutation surface that feeds it.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/loomwear/internal/models"
)

var (
	// ErrNotFound means no product exists with the requested id.
	ErrNotFound = errors.New("catalog: product not found")
	// ErrStoreUnavailable means the backing store could not be reached.
	// Callers render a degraded view instead of failing hard.
	ErrStoreUnavailable = errors.New("catalog: store unavailable")
)

// Service assembles product aggregates. Reads have no side effects.
type Service struct {
	db *gorm.DB
}

// NewService binds the service to the provided DB handle.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// byPosition sorts child collections by their explicit position, with the
// insertion sequence (id) breaking ties. Storage order is never trusted.
func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order asc, id asc")
}

// GetProduct returns the full aggregate: product, ordered images, colors
// and sizes, and the bundle/pairing/related relation sets.
func (s *Service) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Images", byPosition).
		Preload("Colors", byPosition).
		Preload("Sizes", byPosition).
		Preload("Bundles").
		Preload("PairsWith").
		Preload("RelatedProducts").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &product, nil
}

// ListProducts returns product aggregates with their ordered child
// collections, plus the total count for pagination.
func (s *Service) ListProducts(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, mapErr(err)
	}

	var products []models.Product
	err := s.db.WithContext(ctx).
		Preload("Images", byPosition).
		Preload("Colors", byPosition).
		Preload("Sizes", byPosition).
		Limit(limit).Offset(offset).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return nil, 0, mapErr(err)
	}
	return products, total, nil
}

// CreateProduct persists a new product record.
func (s *Service) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// AddImage attaches an image to the product. A zero SortOrder is the
// documented default, so several children may share position 0 and rely on
// the insertion-sequence tie-break.
func (s *Service) AddImage(ctx context.Context, productID int, image *models.ProductImage) error {
	return s.addChild(ctx, productID, func() error {
		image.ProductID = productID
		return s.db.WithContext(ctx).Create(image).Error
	})
}

// AddColor attaches a color swatch to the product.
func (s *Service) AddColor(ctx context.Context, productID int, color *models.Color) error {
	return s.addChild(ctx, productID, func() error {
		color.ProductID = productID
		return s.db.WithContext(ctx).Create(color).Error
	})
}

// AddSize attaches a size option to the product.
func (s *Service) AddSize(ctx context.Context, productID int, size *models.Size) error {
	return s.addChild(ctx, productID, func() error {
		size.ProductID = productID
		return s.db.WithContext(ctx).Create(size).Error
	})
}

func (s *Service) addChild(ctx context.Context, productID int, create func() error) error {
	var exists int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).Count(&exists).Error; err != nil {
		return mapErr(err)
	}
	if exists == 0 {
		return ErrNotFound
	}
	if err := create(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteProduct removes a product and all of its owned children in one
// transaction.
func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.Color{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.Size{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.BundleItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.PairedProduct{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.RelatedProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
