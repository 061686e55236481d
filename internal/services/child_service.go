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

type ChildService struct {
	db *gorm.DB
}

func NewChildService(db *gorm.DB) *ChildService {
	return &ChildService{db: db}
}

// ApplyChildInput copies the client-settable child fields onto c.
func ApplyChildInput(c *models.Child, req *dto.ChildRequest) error {
	birthDate, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		return fmt.Errorf("invalid birth_date: %w", err)
	}
	c.FullName = strings.TrimSpace(req.FullName)
	c.BirthDate = birthDate
	c.Country = strings.TrimSpace(req.Country)
	return nil
}

func (s *ChildService) List(ctx context.Context, repID uint) ([]models.Child, error) {
	var children []models.Child
	err := s.db.WithContext(ctx).Scopes(owner.ForRepresentative(repID)).Order("id").Find(&children).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	return children, nil
}

func (s *ChildService) Create(ctx context.Context, repID uint, req *dto.ChildRequest) (*models.Child, error) {
	child := models.Child{RepresentativeID: repID}
	if err := ApplyChildInput(&child, req); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&child).Error; err != nil {
		return nil, fmt.Errorf("failed to create child: %w", err)
	}
	return &child, nil
}

func (s *ChildService) Get(ctx context.Context, repID, childID uint) (*models.Child, error) {
	var child models.Child
	err := s.db.WithContext(ctx).Scopes(owner.ForRepresentative(repID)).First(&child, childID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChildNotFound
		}
		return nil, err
	}
	return &child, nil
}

func (s *ChildService) Update(ctx context.Context, repID, childID uint, req *dto.ChildRequest) (*models.Child, error) {
	child, err := s.Get(ctx, repID, childID)
	if err != nil {
		return nil, err
	}
	if err := ApplyChildInput(child, req); err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Model(child).
		Select("full_name", "birth_date", "country").
		Updates(child).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update child: %w", err)
	}
	return child, nil
}

func (s *ChildService) Delete(ctx context.Context, repID, childID uint) error {
	result := s.db.WithContext(ctx).Scopes(owner.ForRepresentative(repID)).Delete(&models.Child{}, childID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete child: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrChildNotFound
	}
	return nil
}
