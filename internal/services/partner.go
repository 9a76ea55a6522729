package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glamzz/glamzz-store/internal/errors"
	"github.com/glamzz/glamzz-store/internal/models"
	repository "github.com/glamzz/glamzz-store/internal/repositories"
	"github.com/glamzz/glamzz-store/pkg/sendgrid"
)

// PartnerService records seller and model signup applications.
type PartnerService struct {
	partners *repository.PartnerStore
	email    sendgrid.EmailService
}

func NewPartnerService(partners *repository.PartnerStore, email sendgrid.EmailService) *PartnerService {
	return &PartnerService{partners: partners, email: email}
}

func (s *PartnerService) Apply(ctx context.Context, kind models.PartnerKind, req *models.PartnerApplicationRequest) (*models.PartnerApplication, error) {

	if kind != models.PartnerKindSeller && kind != models.PartnerKindModel {
		return nil, errors.BadRequestError("Unknown partner program")
	}

	app := models.PartnerApplication{
		Kind:    kind,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Date:    time.Now().Format("02/01/2006"),
	}

	s.partners.Append(app)

	// Acknowledgement is best-effort; the application is recorded either way.
	if s.email != nil {
		msg := &sendgrid.Message{
			To:      app.Email,
			Subject: fmt.Sprintf("We received your %s application", kind),
			Content: fmt.Sprintf("Hi %s,\n\nThanks for applying to the GLAMZZ %s program. Our team will reach out on %s.\n\nGLAMZZ Fashion Hub", app.Name, kind, app.Phone),
		}

		if err := s.email.Send(ctx, msg); err != nil {
			slog.Warn("Failed to send partner application acknowledgement",
				slog.String("kind", string(kind)),
				slog.String("error", err.Error()))
		}
	}

	return &app, nil
}

func (s *PartnerService) Applications() []models.PartnerApplication {
	return s.partners.List()
}
