package dto

import (
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type RegisterRequest struct {
	FullName  string  `json:"full_name"`
	BirthDate string  `json:"birth_date"`
	Country   string  `json:"country"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Password  string  `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.BirthDate, validation.Required, validation.Date(DateLayout), validation.By(notInFuture)),
		validation.Field(&r.Country, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 255), is.Email),
		validation.Field(&r.Phone, validation.Length(4, 32)),
		validation.Field(&r.Password, validation.Required, validation.Length(3, 72)),
	)
}

// UpdateRepresentativeRequest lists the only profile fields a
// representative may change. Nil fields are left untouched.
type UpdateRepresentativeRequest struct {
	FullName  *string `json:"full_name"`
	BirthDate *string `json:"birth_date"`
	Country   *string `json:"country"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

func (r UpdateRepresentativeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.BirthDate, validation.NilOrNotEmpty, validation.Date(DateLayout), validation.By(notInFuture)),
		validation.Field(&r.Country, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, validation.Length(3, 255), is.Email),
		validation.Field(&r.Phone, validation.Length(0, 32)),
	)
}

type RepresentativeResponse struct {
	ID        uint    `json:"id"`
	FullName  string  `json:"full_name"`
	BirthDate string  `json:"birth_date"`
	Country   string  `json:"country"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	IsActive  bool    `json:"is_active"`
}

func NewRepresentativeResponse(rep *models.Representative) RepresentativeResponse {
	return RepresentativeResponse{
		ID:        rep.ID,
		FullName:  rep.FullName,
		BirthDate: FormatDate(rep.BirthDate),
		Country:   rep.Country,
		Email:     rep.Email,
		Phone:     rep.Phone,
		IsActive:  rep.IsActive,
	}
}

type DashboardResponse struct {
	Representative RepresentativeResponse `json:"representative"`
	Children       []ChildResponse        `json:"children"`
	Products       []ProductResponse      `json:"products"`
	Invitations    []InvitationResponse   `json:"invitations"`
}
