package openai

import (
	"encoding/json"

	"github.com/tidwall/sjson"
)

// Wire types for the Antigravity generation envelope. Field names and casing
// (functionCall, functionResponse, inlineData, fileData, thoughtSignature,
// function_declarations) are the backend contract and must not change.

type envelope struct {
	Project     string        `json:"project"`
	RequestID   string        `json:"requestId"`
	Request     geminiRequest `json:"request"`
	Model       string        `json:"model"`
	UserAgent   string        `json:"userAgent"`
	RequestType string        `json:"requestType"`
}

type geminiRequest struct {
	Contents          []content          `json:"contents"`
	SystemInstruction *systemInstruction `json:"systemInstruction,omitempty"`
	GenerationConfig  generationConfig   `json:"generationConfig"`
	SafetySettings    []safetySetting    `json:"safetySettings"`
	Tools             []toolEntry        `json:"tools,omitempty"`
}

type systemInstruction struct {
	Parts []textPart `json:"parts"`
}

type textPart struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *functionCall     `json:"functionCall,omitempty"`
	ThoughtSignature string            `json:"thoughtSignature,omitempty"`
	FunctionResponse *functionResponse `json:"functionResponse,omitempty"`
	InlineData       *inlineData       `json:"inlineData,omitempty"`
	FileData         *fileData         `json:"fileData,omitempty"`
}

type functionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

type functionResponse struct {
	Name     string          `json:"name"`
	ID       string          `json:"id"`
	Response responsePayload `json:"response"`
}

type responsePayload struct {
	Content string `json:"content"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type fileData struct {
	FileURI  string `json:"fileUri"`
	MimeType string `json:"mimeType"`
}

type generationConfig struct {
	MaxOutputTokens int64           `json:"maxOutputTokens"`
	Temperature     float64         `json:"temperature"`
	TopP            float64         `json:"topP"`
	ThinkingConfig  *thinkingConfig `json:"thinkingConfig,omitempty"`
}

type thinkingConfig struct {
	ThinkingBudget  *int64 `json:"thinkingBudget,omitempty"`
	ThinkingLevel   string `json:"thinkingLevel,omitempty"`
	IncludeThoughts bool   `json:"includeThoughts"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type toolEntry struct {
	FunctionDeclarations []functionDeclaration `json:"function_declarations"`
}

// defaultSafetySettings returns the fixed safety configuration attached to
// every request: all four categories disabled.
func defaultSafetySettings() []safetySetting {
	return []safetySetting{
		{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "OFF"},
		{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "OFF"},
		{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "OFF"},
		{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "OFF"},
	}
}

// InjectGoogleSearchTool appends the fixed Google Search tool entry to a
// marshaled envelope.
func InjectGoogleSearchTool(rawEnvelope []byte) []byte {
	out, err := sjson.SetRawBytes(rawEnvelope, "request.tools.-1", []byte(`{"googleSearch":{}}`))
	if err != nil {
		return rawEnvelope
	}
	return out
}

// applyImageGenerationOverrides rewrites a marshaled envelope for
// image-generation models: tools and system instructions are unsupported
// there, and the generation config carries an imageConfig instead of any
// thinking or response-shaping settings.
func applyImageGenerationOverrides(rawEnvelope []byte, imageConfig json.RawMessage) []byte {
	out := rawEnvelope
	out, _ = sjson.DeleteBytes(out, "request.tools")
	out, _ = sjson.DeleteBytes(out, "request.systemInstruction")
	out, _ = sjson.DeleteBytes(out, "request.generationConfig.thinkingConfig")
	out, _ = sjson.DeleteBytes(out, "request.generationConfig.responseMimeType")
	out, _ = sjson.DeleteBytes(out, "request.generationConfig.responseModalities")
	if withImage, err := sjson.SetRawBytes(out, "request.generationConfig.imageConfig", imageConfig); err == nil {
		out = withImage
	}
	return out
}
