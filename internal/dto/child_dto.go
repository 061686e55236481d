package dto

import (
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/models"
	validation "github.com/go-ozzo/ozzo-validation"
)

type ChildRequest struct {
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`
	Country   string `json:"country"`
}

func (r ChildRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.BirthDate, validation.Required, validation.Date(DateLayout), validation.By(notInFuture)),
		validation.Field(&r.Country, validation.Required, validation.Length(1, 100)),
	)
}

type ChildResponse struct {
	ID               uint   `json:"id"`
	FullName         string `json:"full_name"`
	BirthDate        string `json:"birth_date"`
	Country          string `json:"country"`
	RepresentativeID uint   `json:"representative_id"`
}

func NewChildResponse(c *models.Child) ChildResponse {
	return ChildResponse{
		ID:               c.ID,
		FullName:         c.FullName,
		BirthDate:        FormatDate(c.BirthDate),
		Country:          c.Country,
		RepresentativeID: c.RepresentativeID,
	}
}

func NewChildResponses(children []models.Child) []ChildResponse {
	out := make([]ChildResponse, 0, len(children))
	for i := range children {
		out = append(out, NewChildResponse(&children[i]))
	}
	return out
}
