// Package registry resolves per-request backend configuration: the final
// backend model, the request type reported to the upstream, whether Google
// Search grounding should be injected, and the image-generation configuration
// for image model variants.
package registry

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/routerlab/geminibridge/internal/config"
)

// RequestConfig describes how one request should be presented to the backend.
type RequestConfig struct {
	// FinalModel is the backend model identifier placed on the envelope.
	FinalModel string

	// RequestType is the Antigravity request type (normally "agent").
	RequestType string

	// InjectGoogleSearch reports whether the fixed Google Search tool entry
	// must be appended to the request.
	InjectGoogleSearch bool

	// ImageConfig carries the generationConfig.imageConfig object for
	// image-generation models; nil for everything else.
	ImageConfig json.RawMessage
}

// DefaultRequestType is the Antigravity request type used when no override is
// configured.
const DefaultRequestType = "agent"

// imageModelConfigs maps known image-generation models to their default
// imageConfig payloads.
var imageModelConfigs = map[string]json.RawMessage{
	"gemini-3-pro-image":             json.RawMessage(`{"aspectRatio":"1:1","imageSize":"2K"}`),
	"gemini-3-pro-image-preview":     json.RawMessage(`{"aspectRatio":"1:1","imageSize":"2K"}`),
	"gemini-2.5-flash-image":         json.RawMessage(`{"aspectRatio":"1:1"}`),
	"gemini-2.5-flash-image-preview": json.RawMessage(`{"aspectRatio":"1:1"}`),
}

// defaultImageConfig is applied to image models discovered by name heuristics
// that have no static entry.
var defaultImageConfig = json.RawMessage(`{"aspectRatio":"1:1"}`)

// searchSuffix marks model aliases that request Google Search grounding.
const searchSuffix = "-search"

var (
	overrideMu          sync.RWMutex
	imageModelOverrides = map[string]struct{}{}
	searchModelOverride = map[string]struct{}{}
	requestTypeOverride string
)

// ApplyConfig registers configuration-driven model overrides. It may be called
// again after a reload; each call replaces the previous override sets.
func ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	overrideMu.Lock()
	defer overrideMu.Unlock()

	imageModelOverrides = make(map[string]struct{}, len(cfg.ImageModels))
	for _, m := range cfg.ImageModels {
		if m = strings.TrimSpace(m); m != "" {
			imageModelOverrides[m] = struct{}{}
		}
	}
	searchModelOverride = make(map[string]struct{}, len(cfg.SearchModels))
	for _, m := range cfg.SearchModels {
		if m = strings.TrimSpace(m); m != "" {
			searchModelOverride[m] = struct{}{}
		}
	}
	requestTypeOverride = strings.TrimSpace(cfg.RequestType)
}

// ResolveRequestConfig resolves the backend configuration for a request.
// originalModel is the alias the client sent; mappedModel is the backend model
// it was routed to. The function is total: unknown models resolve to the
// defaults.
func ResolveRequestConfig(originalModel, mappedModel string) RequestConfig {
	overrideMu.RLock()
	defer overrideMu.RUnlock()

	cfg := RequestConfig{
		FinalModel:  mappedModel,
		RequestType: DefaultRequestType,
	}
	if requestTypeOverride != "" {
		cfg.RequestType = requestTypeOverride
	}

	if strings.HasSuffix(originalModel, searchSuffix) {
		cfg.InjectGoogleSearch = true
	}
	if strings.HasSuffix(mappedModel, searchSuffix) {
		cfg.InjectGoogleSearch = true
		cfg.FinalModel = strings.TrimSuffix(mappedModel, searchSuffix)
	}
	if _, ok := searchModelOverride[originalModel]; ok {
		cfg.InjectGoogleSearch = true
	}
	if _, ok := searchModelOverride[mappedModel]; ok {
		cfg.InjectGoogleSearch = true
	}

	if imageCfg, ok := imageModelConfigs[cfg.FinalModel]; ok {
		cfg.ImageConfig = imageCfg
		return cfg
	}
	if _, ok := imageModelOverrides[cfg.FinalModel]; ok || isImageModelName(cfg.FinalModel) {
		cfg.ImageConfig = defaultImageConfig
	}
	return cfg
}

// isImageModelName reports whether a model name denotes an image-generation
// variant by naming convention.
func isImageModelName(model string) bool {
	return strings.Contains(model, "-image") || strings.Contains(model, "imagen")
}
