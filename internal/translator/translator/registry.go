// Package translator provides the request translation registry used to convert
// chat requests between wire schemas. Translations are registered per
// (from, to) format pair and invoked with a context carrying request-scoped
// metadata such as the conversation identifier.
package translator

import (
	"context"
	"sync"
)

// Format identifies a request schema.
type Format string

// Common format identifiers.
const (
	FormatOpenAI      Format = "openai"
	FormatGemini      Format = "gemini"
	FormatAntigravity Format = "antigravity"
)

// FromString converts an arbitrary identifier to a translator format.
func FromString(v string) Format {
	return Format(v)
}

// String returns the raw schema identifier.
func (f Format) String() string {
	return string(f)
}

// RequestTransform converts a request payload from a source schema to a target
// schema. It receives the backend model name, the raw JSON payload, and a flag
// indicating a streaming request, and returns the converted payload.
// Transforms are total: they never fail, degrading to defaults on malformed
// input.
type RequestTransform func(ctx context.Context, model string, rawJSON []byte, stream bool) []byte

// Registry manages request transforms across schemas.
type Registry struct {
	mu       sync.RWMutex
	requests map[Format]map[Format]RequestTransform
}

// NewRegistry constructs an empty translator registry.
func NewRegistry() *Registry {
	return &Registry{requests: make(map[Format]map[Format]RequestTransform)}
}

// Register stores the request transform between two formats.
func (r *Registry) Register(from, to Format, request RequestTransform) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[from]; !ok {
		r.requests[from] = make(map[Format]RequestTransform)
	}
	if request != nil {
		r.requests[from][to] = request
	}
}

// TranslateRequest converts a payload between schemas, returning the original
// payload if no translator is registered.
func (r *Registry) TranslateRequest(ctx context.Context, from, to Format, model string, rawJSON []byte, stream bool) []byte {
	r.mu.RLock()
	fn := r.requests[from][to]
	r.mu.RUnlock()

	if fn != nil {
		return fn(ctx, model, rawJSON, stream)
	}
	return rawJSON
}

var defaultRegistry = NewRegistry()

// Default exposes the package-level registry for shared use.
func Default() *Registry {
	return defaultRegistry
}

// Register attaches a transform to the default registry.
func Register(from, to Format, request RequestTransform) {
	defaultRegistry.Register(from, to, request)
}

// Request translates a request on the default registry.
func Request(ctx context.Context, from, to Format, model string, rawJSON []byte, stream bool) []byte {
	return defaultRegistry.TranslateRequest(ctx, from, to, model, rawJSON, stream)
}
