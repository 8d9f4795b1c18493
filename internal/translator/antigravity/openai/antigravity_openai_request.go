// Package openai provides request translation from OpenAI Chat Completions to
// the Antigravity Gemini envelope. It converts the flat OpenAI message list
// into role-tagged Gemini contents, translates tool declarations into the
// uppercase-typed schema vocabulary, and wraps the result with the routing
// metadata the backend expects.
package openai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/routerlab/geminibridge/internal/cache"
	"github.com/routerlab/geminibridge/internal/registry"
	"github.com/routerlab/geminibridge/internal/translator/translator"
)

const (
	envelopeUserAgent = "antigravity-openai"
	requestIDPrefix   = "openai-"

	// gemini3Marker identifies the model family that requires explicit
	// reasoning traces between tool calls.
	gemini3Marker = "gemini-3"

	// systemNote is appended to the client's system prompt.
	systemNote = "\n\n[SYSTEM NOTE: You are a coding agent. You MUST use the provided 'shell' tool to perform ANY filesystem operations (reading, writing, creating files). Do not output JSON code blocks for tool execution; invoke the functions directly. To create a file, use the 'shell' tool with 'New-Item' or 'Set-Content' (Powershell). NEVER simulate/hallucinate actions in text without calling the tool first.]"

	// userActionReminder is suffixed to every user text part.
	userActionReminder = "\n\n(SYSTEM REMINDER: You MUST use the 'shell' tool to perform this action. Do not simply state it is done.)"

	// toolThinkingPlaceholder stands in for a reasoning trace when the model
	// family requires one and the assistant message carried no text.
	toolThinkingPlaceholder = "Thinking Process: Determining necessary tool actions."
)

// aliasFunctionName rewrites the legacy function name used by some clients to
// the name the backend tools are declared under.
func aliasFunctionName(name string) string {
	if name == "local_shell_call" {
		return "shell"
	}
	return name
}

// ConvertOpenAIRequestToAntigravity converts an OpenAI Chat Completions
// request (raw JSON) into a complete Antigravity envelope. modelName is the
// backend model the request was routed to; the original alias is read from the
// payload. The conversion is total: malformed input degrades to defaults and
// logged diagnostics, never to an error.
func ConvertOpenAIRequestToAntigravity(ctx context.Context, modelName string, inputRawJSON []byte, _ bool) []byte {
	req := parseRequest(inputRawJSON)
	cfg := registry.ResolveRequestConfig(req.model, modelName)

	conversationID := translator.ConversationID(ctx)
	if conversationID == "" {
		conversationID = stableConversationID(req.messages)
	}

	conv := convertMessages(req.messages, modelName, conversationID, cache.Default())

	inner := geminiRequest{
		Contents:          conv.contents,
		SystemInstruction: conv.system,
		GenerationConfig:  buildGenerationConfig(req),
		SafetySettings:    defaultSafetySettings(),
	}
	if decls := translateToolDeclarations(req.tools); len(decls) > 0 {
		inner.Tools = []toolEntry{{FunctionDeclarations: decls}}
	}

	env := envelope{
		Project:     translator.ProjectID(ctx),
		RequestID:   requestIDPrefix + uuid.NewString(),
		Request:     inner,
		Model:       cfg.FinalModel,
		UserAgent:   envelopeUserAgent,
		RequestType: cfg.RequestType,
	}

	out, err := json.Marshal(env)
	if err != nil {
		log.Errorf("failed to marshal antigravity envelope: %v", err)
		return inputRawJSON
	}

	if cfg.InjectGoogleSearch {
		out = InjectGoogleSearchTool(out)
	}
	if len(cfg.ImageConfig) > 0 {
		out = applyImageGenerationOverrides(out, cfg.ImageConfig)
	}
	return out
}

// indexToolCalls pre-scans all messages and maps every tool-call ID to its
// aliased function name, so a later function-response message that omits the
// name can still be resolved.
func indexToolCalls(messages []message) map[string]string {
	idx := make(map[string]string)
	for _, m := range messages {
		for _, call := range m.toolCalls {
			if call.hasFunction && call.id != "" && call.name != "" {
				idx[call.id] = aliasFunctionName(call.name)
			}
		}
	}
	return idx
}

// conversion accumulates the output of the message pass.
type conversion struct {
	contents []content
	system   *systemInstruction
}

// convertMessages maps each input message to at most one content entry,
// folding system messages into the system instruction.
func convertMessages(messages []message, modelName, conversationID string, signatures *cache.SignatureStore) conversion {
	idx := indexToolCalls(messages)

	// contents always marshals as an array, never null.
	conv := conversion{contents: make([]content, 0, len(messages))}
	for _, msg := range messages {
		if msg.role == "system" {
			conv.system = &systemInstruction{Parts: []textPart{{Text: msg.content.asText() + systemNote}}}
			continue
		}

		role := mapRole(msg.role)

		var parts []part
		switch {
		case msg.hasToolCalls:
			parts = convertToolCallMessage(msg, modelName, conversationID, signatures)
		case msg.role == "tool" || msg.role == "function":
			parts = []part{convertFunctionResponse(msg, idx)}
		default:
			parts = convertPlainMessage(msg, role)
		}

		if len(parts) > 0 {
			conv.contents = append(conv.contents, content{Role: role, Parts: parts})
		}
	}
	return conv
}

// mapRole maps OpenAI roles onto the Gemini role pair. Function responses ride
// as user turns; anything unrecognized defaults to user.
func mapRole(role string) string {
	switch role {
	case "assistant":
		return "model"
	case "tool", "function":
		return "user"
	default:
		return "user"
	}
}

// convertToolCallMessage builds the parts for an assistant message carrying
// tool calls. The message's own text leads the first call; for the gemini-3
// family every other slot gets a thinking placeholder instead. Only the first
// call carries the stored thought signature.
func convertToolCallMessage(msg message, modelName, conversationID string, signatures *cache.SignatureStore) []part {
	text := msg.content.asText()

	var parts []part
	for index, call := range msg.toolCalls {
		if index == 0 && text != "" {
			parts = append(parts, part{Text: text})
		} else if strings.Contains(modelName, gemini3Marker) {
			parts = append(parts, part{Text: toolThinkingPlaceholder})
		}

		if !call.hasFunction {
			continue
		}

		name := call.name
		if name == "" {
			name = "unknown"
		}
		name = aliasFunctionName(name)

		p := part{FunctionCall: &functionCall{Name: name, Args: parseCallArguments(name, call.arguments)}}
		if index == 0 {
			if sig, ok := signatures.Get(conversationID); ok {
				p.ThoughtSignature = sig
			} else {
				log.WithField("conversation", conversationID).Warn("no thought signature stored; backend may reject the function call")
			}
		}
		parts = append(parts, p)
	}
	return parts
}

// parseCallArguments parses a tool call's JSON-string arguments, substituting
// an empty object when they do not parse.
func parseCallArguments(name, arguments string) json.RawMessage {
	if arguments == "" {
		return json.RawMessage(`{}`)
	}
	if !gjson.Valid(arguments) {
		log.WithField("tool", name).Errorf("failed to parse tool call arguments: %s", arguments)
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(arguments)
}

// convertFunctionResponse builds the functionResponse part for a tool or
// function role message. The indexed name for the tool_call_id wins over the
// message's own name field.
func convertFunctionResponse(msg message, idx map[string]string) part {
	rawName := msg.name
	if rawName == "" {
		rawName = "unknown"
	}
	name := aliasFunctionName(rawName)
	if msg.toolCallID != "" {
		if resolved, ok := idx[msg.toolCallID]; ok {
			name = resolved
		}
	}

	id := msg.toolCallID
	if id == "" {
		id = "unknown"
	}

	return part{FunctionResponse: &functionResponse{
		Name:     name,
		ID:       id,
		Response: responsePayload{Content: msg.content.asText()},
	}}
}

// convertPlainMessage builds the parts for a message without tool calls.
// User-mapped text gets the operational reminder suffix; image items decode to
// inlineData (data URLs) or fileData (remote URLs).
func convertPlainMessage(msg message, role string) []part {
	switch msg.content.kind {
	case contentText:
		if msg.content.text == "" {
			return nil
		}
		return []part{{Text: applyUserReminder(msg.content.text, role)}}
	case contentItems:
		var parts []part
		for _, item := range msg.content.items {
			switch item.itemType {
			case "text":
				if item.text != "" {
					parts = append(parts, part{Text: applyUserReminder(item.text, role)})
				}
			case "image_url":
				if p, ok := convertImageURL(item.imageURL); ok {
					parts = append(parts, p)
				}
			default:
				log.Warnf("unknown content item type: %s", item.itemType)
			}
		}
		return parts
	default:
		return nil
	}
}

func applyUserReminder(text, role string) string {
	if role == "user" {
		return text + userActionReminder
	}
	return text
}

// convertImageURL decodes an OpenAI image_url item. Data URLs split into MIME
// type and base64 payload; remote URLs pass through as file references with an
// assumed JPEG MIME type.
func convertImageURL(url string) (part, bool) {
	switch {
	case strings.HasPrefix(url, "data:"):
		comma := strings.Index(url, ",")
		if comma < 0 {
			log.Warnf("malformed image data URL, skipping")
			return part{}, false
		}
		header := url[len("data:"):comma]
		if semi := strings.Index(header, ";"); semi >= 0 {
			header = header[:semi]
		}
		return part{InlineData: &inlineData{MimeType: header, Data: url[comma+1:]}}, true
	case strings.HasPrefix(url, "http"):
		return part{FileData: &fileData{FileURI: url, MimeType: "image/jpeg"}}, true
	default:
		return part{}, false
	}
}

// buildGenerationConfig applies the request overrides over the fixed defaults
// and maps reasoning_effort onto the Gemini thinking configuration.
func buildGenerationConfig(req request) generationConfig {
	gc := generationConfig{MaxOutputTokens: 8192, Temperature: 1.0, TopP: 1.0}
	if req.hasMaxTokens {
		gc.MaxOutputTokens = req.maxTokens
	}
	if req.hasTemperature {
		gc.Temperature = req.temperature
	}
	if req.hasTopP {
		gc.TopP = req.topP
	}

	if effort := strings.ToLower(strings.TrimSpace(req.reasoningEffort)); effort != "" {
		if effort == "auto" {
			budget := int64(-1)
			gc.ThinkingConfig = &thinkingConfig{ThinkingBudget: &budget, IncludeThoughts: true}
		} else {
			gc.ThinkingConfig = &thinkingConfig{ThinkingLevel: effort, IncludeThoughts: effort != "none"}
		}
	}
	return gc
}

// stableConversationID derives a stable identifier from the first user message
// text, for callers that do not thread an explicit conversation ID.
func stableConversationID(messages []message) string {
	for _, msg := range messages {
		if msg.role != "user" {
			continue
		}
		if text := msg.content.asText(); text != "" {
			sum := sha256.Sum256([]byte(text))
			return hex.EncodeToString(sum[:8])
		}
	}
	return ""
}
