package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/glamzz/glamzz-store/internal/models"
	repository "github.com/glamzz/glamzz-store/internal/repositories"
	service "github.com/glamzz/glamzz-store/internal/services"
	"github.com/glamzz/glamzz-store/pkg/sendgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) Send(ctx context.Context, msg *sendgrid.Message) error {
	args := m.Called(ctx, msg)

	return args.Error(0)
}

func partnerRequest() *models.PartnerApplicationRequest {
	return &models.PartnerApplicationRequest{
		Name:  "Anita",
		Email: "anita@example.com",
		Phone: "9876543210",
	}
}

func TestPartnerApply(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Application Recorded And Acknowledged", func(t *testing.T) {
		email := new(mockEmailService)
		email.On("Send", ctx, mock.MatchedBy(func(msg *sendgrid.Message) bool {
			return msg.To == "anita@example.com"
		})).Return(nil).Once()

		store := repository.NewPartnerStore()
		svc := service.NewPartnerService(store, email)

		app, err := svc.Apply(ctx, models.PartnerKindSeller, partnerRequest())

		require.NoError(t, err)
		assert.Equal(t, models.PartnerKindSeller, app.Kind)
		assert.Len(t, svc.Applications(), 1)
		email.AssertExpectations(t)
	})

	t.Run("Success - Email Failure Does Not Drop The Application", func(t *testing.T) {
		email := new(mockEmailService)
		email.On("Send", ctx, mock.Anything).Return(errors.New("sendgrid unavailable"))

		svc := service.NewPartnerService(repository.NewPartnerStore(), email)

		_, err := svc.Apply(ctx, models.PartnerKindModel, partnerRequest())

		require.NoError(t, err)
		assert.Len(t, svc.Applications(), 1)
	})

	t.Run("Success - No Email Service Configured", func(t *testing.T) {
		svc := service.NewPartnerService(repository.NewPartnerStore(), nil)

		_, err := svc.Apply(ctx, models.PartnerKindModel, partnerRequest())

		require.NoError(t, err)
	})

	t.Run("Failure - Unknown Program", func(t *testing.T) {
		svc := service.NewPartnerService(repository.NewPartnerStore(), nil)

		_, err := svc.Apply(ctx, models.PartnerKind("influencer"), partnerRequest())

		require.Error(t, err)
		assert.Empty(t, svc.Applications())
	})
}
