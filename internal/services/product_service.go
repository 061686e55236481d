package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/models"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/owner"
	"gorm.io/gorm"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ApplyProductInput copies the client-settable product fields onto p.
// IsActive and ownership stay server-controlled.
func ApplyProductInput(p *models.Product, req *dto.ProductRequest) {
	p.Name = strings.TrimSpace(req.Name)
	p.Description = req.Description
	p.Price = req.Price
	p.Stock = req.Stock
}

func (s *ProductService) List(ctx context.Context, repID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Scopes(owner.ForRepresentative(repID)).Order("id").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Create(ctx context.Context, repID uint, req *dto.ProductRequest) (*models.Product, error) {
	product := models.Product{RepresentativeID: repID, IsActive: true}
	ApplyProductInput(&product, req)
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) Get(ctx context.Context, repID, productID uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).Scopes(owner.ForRepresentative(repID)).First(&product, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Update(ctx context.Context, repID, productID uint, req *dto.ProductRequest) (*models.Product, error) {
	product, err := s.Get(ctx, repID, productID)
	if err != nil {
		return nil, err
	}
	ApplyProductInput(product, req)
	err = s.db.WithContext(ctx).Model(product).
		Select("name", "description", "price", "stock").
		Updates(product).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, repID, productID uint) error {
	result := s.db.WithContext(ctx).Scopes(owner.ForRepresentative(repID)).Delete(&models.Product{}, productID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
