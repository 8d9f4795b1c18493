package openai

import (
	"encoding/json"
	"testing"

	"github.com/tidwall/gjson"
)

func TestInjectGoogleSearchTool_AppendsToExistingTools(t *testing.T) {
	envelope := []byte(`{"request":{"tools":[{"function_declarations":[{"name":"shell"}]}]}}`)

	out := InjectGoogleSearchTool(envelope)
	tools := gjson.GetBytes(out, "request.tools").Array()
	if len(tools) != 2 {
		t.Fatalf("expected 2 tool entries, got %d", len(tools))
	}
	if !tools[1].Get("googleSearch").Exists() {
		t.Errorf("expected googleSearch entry appended, got %s", tools[1].Raw)
	}
}

func TestInjectGoogleSearchTool_CreatesToolsArray(t *testing.T) {
	out := InjectGoogleSearchTool([]byte(`{"request":{}}`))
	if !gjson.GetBytes(out, "request.tools.0.googleSearch").Exists() {
		t.Errorf("expected tools array created, got %s", out)
	}
}

func TestApplyImageGenerationOverrides(t *testing.T) {
	envelope := []byte(`{"request":{
		"systemInstruction":{"parts":[{"text":"sys"}]},
		"generationConfig":{"maxOutputTokens":8192,"thinkingConfig":{"thinkingLevel":"low","includeThoughts":true}},
		"tools":[{"function_declarations":[{"name":"shell"}]}]
	}}`)

	out := applyImageGenerationOverrides(envelope, json.RawMessage(`{"aspectRatio":"16:9"}`))

	if gjson.GetBytes(out, "request.tools").Exists() {
		t.Error("tools must be removed")
	}
	if gjson.GetBytes(out, "request.systemInstruction").Exists() {
		t.Error("systemInstruction must be removed")
	}
	if gjson.GetBytes(out, "request.generationConfig.thinkingConfig").Exists() {
		t.Error("thinkingConfig must be removed")
	}
	if got := gjson.GetBytes(out, "request.generationConfig.imageConfig.aspectRatio").String(); got != "16:9" {
		t.Errorf("expected imageConfig inserted, got %s", gjson.GetBytes(out, "request.generationConfig").Raw)
	}
	if gjson.GetBytes(out, "request.generationConfig.maxOutputTokens").Int() != 8192 {
		t.Error("unrelated generationConfig fields must survive")
	}
}

func TestDefaultSafetySettings(t *testing.T) {
	settings := defaultSafetySettings()
	if len(settings) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(settings))
	}
	want := map[string]bool{
		"HARM_CATEGORY_HARASSMENT":        true,
		"HARM_CATEGORY_HATE_SPEECH":       true,
		"HARM_CATEGORY_SEXUALLY_EXPLICIT": true,
		"HARM_CATEGORY_DANGEROUS_CONTENT": true,
	}
	for _, s := range settings {
		if !want[s.Category] {
			t.Errorf("unexpected category %q", s.Category)
		}
		if s.Threshold != "OFF" {
			t.Errorf("expected threshold OFF for %s, got %q", s.Category, s.Threshold)
		}
	}
}
