package openai

import (
	"github.com/tidwall/gjson"
)

// The incoming OpenAI request is probed once into a typed model so the
// converter can pattern-match on shapes instead of re-inspecting raw JSON at
// every use. Parsing is tolerant by design: malformed or missing fields
// degrade to zero values, never to an error.

// contentKind discriminates the shapes OpenAI message content can take.
type contentKind int

const (
	contentAbsent contentKind = iota
	contentText
	contentItems
	contentRaw
)

// messageContent is the tagged union over string / item-array / other content.
type messageContent struct {
	kind  contentKind
	text  string
	items []contentItem
	raw   string
}

// asText returns the content as a string; non-string content falls back to
// its raw JSON form.
func (c messageContent) asText() string {
	switch c.kind {
	case contentText:
		return c.text
	case contentRaw:
		return c.raw
	case contentItems:
		return c.raw
	default:
		return ""
	}
}

// contentItem is one entry of a multimodal content array.
type contentItem struct {
	itemType string
	text     string
	imageURL string
}

// toolCall is one entry of an assistant message's tool_calls list.
type toolCall struct {
	id          string
	name        string
	arguments   string
	hasFunction bool
}

// message is one OpenAI chat message.
type message struct {
	role         string
	content      messageContent
	toolCalls    []toolCall
	hasToolCalls bool
	toolCallID   string
	name         string
}

// functionDecl is a tool declaration normalized at ingestion: both the wrapped
// form ({"type":"function","function":{...}}) and the flat form (the tool
// object itself carrying name/parameters) resolve to this shape. Stripping of
// type/strict/additionalProperties in the flat case falls out of only the
// declared fields being extracted.
type functionDecl struct {
	name        string
	description string
	parameters  gjson.Result
	hasParams   bool
}

// request is the typed view of an OpenAI chat-completion request.
type request struct {
	model           string
	messages        []message
	tools           []functionDecl
	maxTokens       int64
	hasMaxTokens    bool
	temperature     float64
	hasTemperature  bool
	topP            float64
	hasTopP         bool
	reasoningEffort string
}

// parseRequest ingests the raw OpenAI request. It never fails.
func parseRequest(rawJSON []byte) request {
	root := gjson.ParseBytes(rawJSON)

	req := request{model: root.Get("model").String()}

	if v := root.Get("max_tokens"); v.Exists() && v.Type == gjson.Number {
		req.maxTokens, req.hasMaxTokens = v.Int(), true
	}
	if v := root.Get("temperature"); v.Exists() && v.Type == gjson.Number {
		req.temperature, req.hasTemperature = v.Num, true
	}
	if v := root.Get("top_p"); v.Exists() && v.Type == gjson.Number {
		req.topP, req.hasTopP = v.Num, true
	}
	req.reasoningEffort = root.Get("reasoning_effort").String()

	if messages := root.Get("messages"); messages.IsArray() {
		for _, m := range messages.Array() {
			req.messages = append(req.messages, parseMessage(m))
		}
	}

	if tools := root.Get("tools"); tools.IsArray() {
		for _, t := range tools.Array() {
			if decl, ok := parseToolDeclaration(t); ok {
				req.tools = append(req.tools, decl)
			}
		}
	}

	return req
}

func parseMessage(m gjson.Result) message {
	msg := message{
		role:       m.Get("role").String(),
		content:    parseContent(m.Get("content")),
		toolCallID: m.Get("tool_call_id").String(),
		name:       m.Get("name").String(),
	}

	// A literal null means no tool calls, same as the key being absent.
	if tcs := m.Get("tool_calls"); tcs.Exists() && tcs.Type != gjson.Null {
		msg.hasToolCalls = true
		if tcs.IsArray() {
			for _, tc := range tcs.Array() {
				call := toolCall{id: tc.Get("id").String()}
				if fn := tc.Get("function"); fn.Exists() {
					call.hasFunction = true
					call.name = fn.Get("name").String()
					call.arguments = fn.Get("arguments").String()
				}
				msg.toolCalls = append(msg.toolCalls, call)
			}
		}
	}
	return msg
}

func parseContent(content gjson.Result) messageContent {
	switch {
	case !content.Exists() || content.Type == gjson.Null:
		return messageContent{kind: contentAbsent}
	case content.Type == gjson.String:
		return messageContent{kind: contentText, text: content.String()}
	case content.IsArray():
		mc := messageContent{kind: contentItems, raw: content.Raw}
		for _, item := range content.Array() {
			mc.items = append(mc.items, contentItem{
				itemType: item.Get("type").String(),
				text:     item.Get("text").String(),
				imageURL: item.Get("image_url.url").String(),
			})
		}
		return mc
	default:
		return messageContent{kind: contentRaw, raw: content.Raw}
	}
}

// parseToolDeclaration resolves the wrapped/flat tool declaration union.
// Declarations without type "function" or without a usable function object are
// dropped.
func parseToolDeclaration(tool gjson.Result) (functionDecl, bool) {
	if tool.Get("type").String() != "function" {
		return functionDecl{}, false
	}

	fn := tool.Get("function")
	if !fn.Exists() || !fn.IsObject() {
		// Flat (Codex) convention: the tool object itself is the declaration.
		fn = tool
	}

	decl := functionDecl{
		name:        fn.Get("name").String(),
		description: fn.Get("description").String(),
	}
	if params := fn.Get("parameters"); params.Exists() {
		decl.parameters = params
		decl.hasParams = true
	}
	if decl.name == "" && !decl.hasParams {
		return functionDecl{}, false
	}
	return decl, true
}
