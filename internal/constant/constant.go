// Package constant defines the wire-format identifiers used by the translator
// registry. These identify the request schemas a translation can be registered
// between, ensuring consistent naming across the application.
package constant

const (
	// OpenAI represents the OpenAI chat-completions request format identifier.
	OpenAI = "openai"

	// Gemini represents the Google Gemini generation request format identifier.
	Gemini = "gemini"

	// Antigravity represents the Antigravity envelope format identifier.
	Antigravity = "antigravity"
)
