package models

// ImageStyle selects the prompt flavour for a single-product regeneration.
type ImageStyle string

const (
	ImageStyleStudio      ImageStyle = "studio"
	ImageStyleStreet      ImageStyle = "street"
	ImageStyleTraditional ImageStyle = "traditional"
	ImageStyleLifestyle   ImageStyle = "lifestyle"
)

type RegenerateImageRequest struct {
	Style ImageStyle `json:"style" validate:"required,oneof=studio street traditional lifestyle"`
}

// RegenerateImageResponse carries the preview payload. Nothing is written to
// the enrichment map until the caller commits it.
type RegenerateImageResponse struct {
	ProductID string `json:"product_id"`
	Payload   string `json:"payload"`
}

type CommitImageRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// EnrichmentStatus is a point-in-time snapshot of the pipeline: which
// products still await a generation result and how many carry an enriched
// image.
type EnrichmentStatus struct {
	InFlight []string `json:"in_flight"`
	Enriched int      `json:"enriched"`
}
