package models

type PartnerKind string

const (
	PartnerKindSeller PartnerKind = "seller"
	PartnerKindModel  PartnerKind = "model"
)

// PartnerApplication is a seller or model signup form submission.
type PartnerApplication struct {
	Kind    PartnerKind `json:"kind"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Message string      `json:"message,omitempty"`
	Date    string      `json:"date"`
}

type PartnerApplicationRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10"`
	Message string `json:"message,omitempty"`
}
