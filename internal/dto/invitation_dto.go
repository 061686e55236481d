package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/models"
)

type InvitationResponse struct {
	ID        uint       `json:"id"`
	Code      string     `json:"code"`
	IsUsed    bool       `json:"is_used"`
	CreatedAt time.Time  `json:"created_at"`
	UsedAt    *time.Time `json:"used_at"`
	SenderID  uint       `json:"sender_id"`
}

func NewInvitationResponse(inv *models.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:        inv.ID,
		Code:      inv.Code,
		IsUsed:    inv.IsUsed,
		CreatedAt: inv.CreatedAt,
		UsedAt:    inv.UsedAt,
		SenderID:  inv.SenderID,
	}
}

func NewInvitationResponses(invitations []models.Invitation) []InvitationResponse {
	out := make([]InvitationResponse, 0, len(invitations))
	for i := range invitations {
		out = append(out, NewInvitationResponse(&invitations[i]))
	}
	return out
}
