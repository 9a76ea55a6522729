package health

import (
	"context"
	"fmt"

	"github.com/glamzz/glamzz-store/internal/catalog"
	"github.com/glamzz/glamzz-store/pkg/gemini"
	"github.com/hellofresh/health-go/v5"
)

type Endpoints struct {
	Catalog      *catalog.Catalog
	GeminiClient gemini.Client
}

func NewHealthHandler(endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "glamzz-store",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "catalog",
				SkipOnErr: false,
				Check: func(ctx context.Context) error {
					if endpoints.Catalog == nil || endpoints.Catalog.Size() == 0 {
						return fmt.Errorf("catalog is empty")
					}
					return nil
				},
			},
			health.Config{
				Name: "image-generator",
				// the storefront degrades to default images without it
				SkipOnErr: true,
				Check: func(ctx context.Context) error {
					if endpoints.GeminiClient == nil {
						return fmt.Errorf("image generation is not configured")
					}
					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
