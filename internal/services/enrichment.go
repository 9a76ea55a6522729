package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/glamzz/glamzz-store/internal/catalog"
	"github.com/glamzz/glamzz-store/internal/errors"
	"github.com/glamzz/glamzz-store/internal/metrics"
	"github.com/glamzz/glamzz-store/internal/models"
	repository "github.com/glamzz/glamzz-store/internal/repositories"
	"github.com/glamzz/glamzz-store/pkg/gemini"
)

var stylePrompts = map[models.ImageStyle]string{
	models.ImageStyleStudio:      "Professional studio lighting, clean solid background, high-end fashion catalog style.",
	models.ImageStyleStreet:      "Outdoor urban street setting, natural sunlight, candid fashion pose, city background.",
	models.ImageStyleTraditional: "Elegant traditional Indian setting, warm festive lighting, ethnic decor background.",
	models.ImageStyleLifestyle:   "Cozy indoor lifestyle setting, soft natural lighting, relaxed and approachable pose.",
}

// EnrichmentService attaches generated or uploaded imagery to catalog
// products. Generated payloads and uploads share one representation, a data
// URI, so the storefront renders both the same way.
type EnrichmentService struct {
	images  *repository.ImageStore
	catalog *catalog.Catalog
	client  gemini.Client
	workers int
}

func NewEnrichmentService(images *repository.ImageStore, catalog *catalog.Catalog, client gemini.Client, workers int) *EnrichmentService {

	if workers < 1 {
		workers = 1
	}

	return &EnrichmentService{images: images, catalog: catalog, client: client, workers: workers}
}

func catalogPrompt(p *models.Product) string {
	return fmt.Sprintf("A high-quality fashion photography of a beautiful Indian girl model wearing %s. The product name %q is elegantly written on the clothing. The product is %s. Professional studio lighting, realistic, 8k resolution, fashion catalog style.", p.Name, p.Name, p.Description)
}

func styledPrompt(p *models.Product, style models.ImageStyle) string {
	return fmt.Sprintf("A high-quality fashion photography of a beautiful Indian girl model wearing %s. The product is %s %s Realistic, 8k resolution, highly detailed fabric texture.", p.Name, p.Description, stylePrompts[style])
}

func dataURI(img *gemini.Image) string {

	mimeType := img.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(img.Data))
}

// EnrichAll requests one generated image per product. Every id is marked
// in-flight up front; the batch then runs with a bounded worker count
// (degree 1 keeps it strictly sequential — the next request is not issued
// until the prior one settled). A product's failure is logged and contained,
// the batch continues, and the id always leaves the in-flight set. This
// method never returns an error.
func (s *EnrichmentService) EnrichAll(ctx context.Context, products []models.Product) {

	if s.client == nil {
		slog.Info("Image generation not configured, catalog keeps default images")

		return
	}

	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	s.images.MarkInFlight(ids...)

	queue := make(chan models.Product)

	var wg sync.WaitGroup

	for range s.workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for product := range queue {
				s.enrichOne(ctx, product)
			}
		}()
	}

	for _, product := range products {
		queue <- product
	}

	close(queue)
	wg.Wait()

	slog.Info("Catalog enrichment batch finished",
		slog.Int("products", len(products)),
		slog.Int("enriched", s.images.EnrichedCount()))
}

func (s *EnrichmentService) enrichOne(ctx context.Context, product models.Product) {

	// The id must leave the in-flight set however the request settles.
	defer s.images.SettleInFlight(product.ID)

	img, err := s.client.GenerateImage(ctx, catalogPrompt(&product))
	if err != nil {
		metrics.ImageGeneration("failure")
		slog.Error("Error generating image, product keeps its default",
			slog.String("productId", product.ID),
			slog.String("error", err.Error()))

		return
	}

	s.images.Commit(product.ID, dataURI(img))
	metrics.ImageGeneration("success")
}

// RegenerateOne issues one styled request for a single product and returns
// the payload for preview. Nothing is written to the enrichment map until the
// caller commits the payload. Concurrent calls for the same product are not
// synchronized against the batch or each other; the later-settling commit
// wins.
func (s *EnrichmentService) RegenerateOne(ctx context.Context, productID string, style models.ImageStyle) (*models.RegenerateImageResponse, error) {

	product, ok := s.catalog.ByID(productID)
	if !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	if _, ok := stylePrompts[style]; !ok {
		return nil, errors.ValidationError("Unknown image style")
	}

	if s.client == nil {
		return nil, errors.ThirdPartyError("Image generation is not configured")
	}

	s.images.MarkInFlight(product.ID)
	defer s.images.SettleInFlight(product.ID)

	img, err := s.client.GenerateImage(ctx, styledPrompt(product, style))
	if err != nil {
		metrics.ImageGeneration("failure")
		slog.Error("Error generating styled image",
			slog.String("productId", product.ID),
			slog.String("style", string(style)),
			slog.String("error", err.Error()))

		return nil, errors.ThirdPartyError("Image generation failed").WithError(err)
	}

	metrics.ImageGeneration("success")

	return &models.RegenerateImageResponse{
		ProductID: product.ID,
		Payload:   dataURI(img),
	}, nil
}

// CommitImage overwrites the product's enrichment payload unconditionally.
func (s *EnrichmentService) CommitImage(productID, payload string) error {

	if _, ok := s.catalog.ByID(productID); !ok {
		return errors.NotFoundError("Product not found")
	}

	s.images.Commit(productID, payload)

	return nil
}

// UploadLocalImage wraps user-provided bytes into the shared payload
// representation and commits it, bypassing generation entirely.
func (s *EnrichmentService) UploadLocalImage(productID string, fileBytes []byte) (string, error) {

	if _, ok := s.catalog.ByID(productID); !ok {
		return "", errors.NotFoundError("Product not found")
	}

	if len(fileBytes) == 0 {
		return "", errors.ValidationError("Uploaded file is empty")
	}

	payload := dataURI(&gemini.Image{
		Data:     fileBytes,
		MIMEType: http.DetectContentType(fileBytes),
	})

	s.images.Commit(productID, payload)

	return payload, nil
}

// DisplayImage resolves what the storefront should render for a product: the
// enriched payload when one exists, the catalog default otherwise.
func (s *EnrichmentService) DisplayImage(product *models.Product) (string, bool) {

	if payload, ok := s.images.Image(product.ID); ok {
		return payload, s.images.IsInFlight(product.ID)
	}

	return product.Image, s.images.IsInFlight(product.ID)
}

func (s *EnrichmentService) Status() *models.EnrichmentStatus {
	return &models.EnrichmentStatus{
		InFlight: s.images.InFlight(),
		Enriched: s.images.EnrichedCount(),
	}
}
