package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/models"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/owner"
	"gorm.io/gorm"
)

const (
	inviteCodeBytes   = 8
	maxInviteAttempts = 5
)

// GenerateInviteCode returns 8 random bytes encoded as unpadded base64url.
func GenerateInviteCode() (string, error) {
	raw := make([]byte, inviteCodeBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// InvitationService drives the unused -> used lifecycle of invitation codes.
type InvitationService struct {
	db       *gorm.DB
	metrics  *metrics.Metrics
	generate func() (string, error)
	now      func() time.Time
}

func NewInvitationService(db *gorm.DB, m *metrics.Metrics) *InvitationService {
	return &InvitationService{
		db:       db,
		metrics:  m,
		generate: GenerateInviteCode,
		now:      time.Now,
	}
}

// Create persists a fresh unused invitation owned by senderID. A code that
// collides with an existing one is regenerated a bounded number of times.
func (s *InvitationService) Create(ctx context.Context, senderID uint) (*models.Invitation, error) {
	for attempt := 1; attempt <= maxInviteAttempts; attempt++ {
		code, err := s.generate()
		if err != nil {
			return nil, err
		}

		inv := models.Invitation{
			Code:      code,
			IsUsed:    false,
			CreatedAt: s.now().UTC(),
			SenderID:  senderID,
		}

		err = s.db.WithContext(ctx).Create(&inv).Error
		if err == nil {
			s.metrics.InvitationCreated()
			slog.Info("invitation created", "representative_id", senderID, "invitation_id", inv.ID)
			return &inv, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create invitation: %w", err)
		}
		slog.Warn("invitation code collision", "attempt", attempt)
	}
	return nil, ErrCodeCollision
}

func (s *InvitationService) ListByOwner(ctx context.Context, senderID uint) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := s.db.WithContext(ctx).
		Scopes(owner.ForSender(senderID)).
		Order("id").
		Find(&invitations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return invitations, nil
}

// LookupUnused finds an unused invitation. Used and missing codes are
// reported identically.
func (s *InvitationService) LookupUnused(ctx context.Context, code string) (*models.Invitation, error) {
	var inv models.Invitation
	err := s.db.WithContext(ctx).
		Where("code = ? AND is_used = ?", code, false).
		First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}
	return &inv, nil
}

// Redeem marks an unused code as used. Any active representative may
// redeem, the sender included. The conditional update makes the transition
// happen at most once even under concurrent redeems.
func (s *InvitationService) Redeem(ctx context.Context, code string, actingID uint) (*models.Invitation, error) {
	var redeemed models.Invitation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv models.Invitation
		if err := tx.Where("code = ? AND is_used = ?", code, false).First(&inv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvitationNotFound
			}
			return err
		}

		usedAt := s.now().UTC()
		result := tx.Model(&models.Invitation{}).
			Where("id = ? AND is_used = ?", inv.ID, false).
			Updates(map[string]interface{}{
				"is_used": true,
				"used_at": usedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInvitationNotFound
		}

		inv.IsUsed = true
		inv.UsedAt = &usedAt
		redeemed = inv
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvitationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to redeem invitation: %w", err)
	}

	s.metrics.InvitationRedeemed()
	slog.Info("invitation redeemed", "invitation_id", redeemed.ID, "representative_id", actingID)
	return &redeemed, nil
}
