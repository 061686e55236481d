package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/models"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/owner"
	"github.com/nyaruka/phonenumbers"
	"gorm.io/gorm"
)

type RepresentativeService struct {
	db          *gorm.DB
	hasher      *PasswordHasher
	phoneRegion string
}

func NewRepresentativeService(db *gorm.DB, hasher *PasswordHasher, phoneRegion string) *RepresentativeService {
	return &RepresentativeService{db: db, hasher: hasher, phoneRegion: phoneRegion}
}

// NormalizePhone parses a phone number and formats it as E.164. Numbers
// without a country prefix are read in the given default region.
func NormalizePhone(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsPossibleNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func (s *RepresentativeService) normalizePhone(phone *string) (*string, error) {
	if phone == nil || strings.TrimSpace(*phone) == "" {
		return nil, nil
	}
	normalized, err := NormalizePhone(*phone, s.phoneRegion)
	if err != nil {
		return nil, err
	}
	return &normalized, nil
}

// Register creates a new active representative. Email uniqueness is
// enforced by the unique index; a violation maps to ErrEmailTaken.
func (s *RepresentativeService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Representative, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Representative{}).
		Where("email = ?", NormalizeEmail(req.Email)).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	birthDate, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth_date: %w", err)
	}

	phone, err := s.normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	rep := models.Representative{
		FullName:       strings.TrimSpace(req.FullName),
		BirthDate:      birthDate,
		Country:        strings.TrimSpace(req.Country),
		Email:          NormalizeEmail(req.Email),
		Phone:          phone,
		HashedPassword: hash,
		IsActive:       true,
	}

	if err := s.db.WithContext(ctx).Create(&rep).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create representative: %w", err)
	}

	slog.Info("representative registered", "representative_id", rep.ID)
	return &rep, nil
}

// ApplyRepresentativeUpdate copies the whitelisted profile fields of req
// onto rep. Identity, password and the active flag are never touched.
func ApplyRepresentativeUpdate(rep *models.Representative, req *dto.UpdateRepresentativeRequest) error {
	if req.FullName != nil {
		rep.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.BirthDate != nil {
		d, err := dto.ParseDate(*req.BirthDate)
		if err != nil {
			return fmt.Errorf("invalid birth_date: %w", err)
		}
		rep.BirthDate = d
	}
	if req.Country != nil {
		rep.Country = strings.TrimSpace(*req.Country)
	}
	if req.Email != nil {
		rep.Email = NormalizeEmail(*req.Email)
	}
	return nil
}

func (s *RepresentativeService) Update(ctx context.Context, repID uint, req *dto.UpdateRepresentativeRequest) (*models.Representative, error) {
	var rep models.Representative
	if err := s.db.WithContext(ctx).First(&rep, repID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load representative: %w", err)
	}

	if err := ApplyRepresentativeUpdate(&rep, req); err != nil {
		return nil, err
	}
	if req.Phone != nil {
		phone, err := s.normalizePhone(req.Phone)
		if err != nil {
			return nil, err
		}
		rep.Phone = phone
	}

	err := s.db.WithContext(ctx).Model(&rep).
		Select("full_name", "birth_date", "country", "email", "phone").
		Updates(&rep).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update representative: %w", err)
	}

	return &rep, nil
}

// SetActive toggles the active flag. It is not exposed over HTTP.
func (s *RepresentativeService) SetActive(ctx context.Context, repID uint, active bool) error {
	result := s.db.WithContext(ctx).Model(&models.Representative{}).
		Where("id = ?", repID).
		Update("is_active", active)
	if result.Error != nil {
		return fmt.Errorf("failed to update active flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUnauthorized
	}
	return nil
}

// Dashboard aggregates everything the representative owns.
func (s *RepresentativeService) Dashboard(ctx context.Context, rep *models.Representative) (*dto.DashboardResponse, error) {
	db := s.db.WithContext(ctx)

	var children []models.Child
	if err := db.Scopes(owner.ForRepresentative(rep.ID)).Order("id").Find(&children).Error; err != nil {
		return nil, fmt.Errorf("failed to load children: %w", err)
	}

	var products []models.Product
	if err := db.Scopes(owner.ForRepresentative(rep.ID)).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	var invitations []models.Invitation
	if err := db.Scopes(owner.ForSender(rep.ID)).Order("id").Find(&invitations).Error; err != nil {
		return nil, fmt.Errorf("failed to load invitations: %w", err)
	}

	return &dto.DashboardResponse{
		Representative: dto.NewRepresentativeResponse(rep),
		Children:       dto.NewChildResponses(children),
		Products:       dto.NewProductResponses(products),
		Invitations:    dto.NewInvitationResponses(invitations),
	}, nil
}
