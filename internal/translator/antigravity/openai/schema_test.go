package openai

import (
	"encoding/json"
	"testing"

	"github.com/tidwall/gjson"
)

func translateDeclarations(t *testing.T, toolsJSON string) gjson.Result {
	t.Helper()
	var decls []functionDecl
	for _, tool := range gjson.Parse(toolsJSON).Array() {
		if decl, ok := parseToolDeclaration(tool); ok {
			decls = append(decls, decl)
		}
	}
	out, err := json.Marshal(translateToolDeclarations(decls))
	if err != nil {
		t.Fatalf("marshal declarations: %v", err)
	}
	return gjson.ParseBytes(out)
}

func TestTranslateSchema_WhitelistAndUppercase(t *testing.T) {
	decls := translateDeclarations(t, `[{
		"type": "function",
		"function": {
			"name": "count",
			"parameters": {
				"type": "object",
				"properties": {
					"n": {"type": "integer", "default": 5, "additionalProperties": false}
				}
			}
		}
	}]`)

	n := decls.Get("0.parameters.properties.n")
	if n.Raw != `{"type":"INTEGER"}` {
		t.Errorf("expected exactly {\"type\":\"INTEGER\"}, got %s", n.Raw)
	}
	if got := decls.Get("0.parameters.type").String(); got != "OBJECT" {
		t.Errorf("expected root type OBJECT, got %q", got)
	}
}

func TestTranslateSchema_RecursionAndKeptKeys(t *testing.T) {
	decls := translateDeclarations(t, `[{
		"type": "function",
		"function": {
			"name": "list",
			"description": "List things",
			"parameters": {
				"type": "object",
				"title": "dropped",
				"properties": {
					"tags": {
						"type": "array",
						"items": {"type": "string", "enum": ["a", "b"], "format": "enum", "nullable": true}
					}
				},
				"required": ["tags"]
			}
		}
	}]`)

	params := decls.Get("0.parameters")
	if params.Get("title").Exists() {
		t.Error("title must be dropped")
	}
	if got := params.Get("required.0").String(); got != "tags" {
		t.Errorf("required must be kept, got %s", params.Get("required").Raw)
	}
	items := params.Get("properties.tags.items")
	if got := items.Get("type").String(); got != "STRING" {
		t.Errorf("expected nested type STRING, got %q", got)
	}
	if got := items.Get("enum").Raw; got != `["a","b"]` {
		t.Errorf("expected enum kept, got %s", got)
	}
	if items.Get("format").String() != "enum" || !items.Get("nullable").Bool() {
		t.Errorf("expected format and nullable kept, got %s", items.Raw)
	}
}

func TestTranslateSchema_TypeArrayCollapses(t *testing.T) {
	decls := translateDeclarations(t, `[{
		"type": "function",
		"function": {
			"name": "maybe",
			"parameters": {
				"type": "object",
				"properties": {"name": {"type": ["string", "null"]}}
			}
		}
	}]`)

	if got := decls.Get("0.parameters.properties.name.type").String(); got != "STRING" {
		t.Errorf("expected STRING from type array, got %q", got)
	}
}

func TestTranslateSchema_RootTypeDefaultsToObject(t *testing.T) {
	decls := translateDeclarations(t, `[{
		"type": "function",
		"function": {"name": "noop", "parameters": {"properties": {}}}
	}]`)

	if got := decls.Get("0.parameters.type").String(); got != "OBJECT" {
		t.Errorf("expected OBJECT default, got %q", got)
	}
}

func TestParseToolDeclaration_FlatFormat(t *testing.T) {
	decls := translateDeclarations(t, `[{
		"type": "function",
		"name": "local_shell_call",
		"strict": true,
		"additionalProperties": false,
		"parameters": {"type": "object", "properties": {"cmd": {"type": "string"}}}
	}]`)

	if got := decls.Get("0.name").String(); got != "shell" {
		t.Errorf("expected aliased flat declaration name shell, got %q", got)
	}
	if decls.Get("0.strict").Exists() || decls.Get("0.additionalProperties").Exists() {
		t.Error("flat declaration metadata must be stripped")
	}
	if got := decls.Get("0.parameters.properties.cmd.type").String(); got != "STRING" {
		t.Errorf("expected STRING, got %q", got)
	}
}

func TestParseToolDeclaration_NonFunctionSkipped(t *testing.T) {
	decls := translateDeclarations(t, `[
		{"type": "retrieval"},
		{"type": "function", "function": {"name": "keep", "parameters": {"type": "object"}}}
	]`)

	if n := len(decls.Array()); n != 1 {
		t.Fatalf("expected 1 declaration, got %d", n)
	}
	if got := decls.Get("0.name").String(); got != "keep" {
		t.Errorf("expected keep, got %q", got)
	}
}

func TestTranslateSchema_DeclarationWithoutParameters(t *testing.T) {
	decls := translateDeclarations(t, `[{
		"type": "function",
		"function": {"name": "ping", "description": "Ping"}
	}]`)

	if decls.Get("0.parameters").Exists() {
		t.Errorf("expected parameters omitted, got %s", decls.Get("0").Raw)
	}
	if got := decls.Get("0.description").String(); got != "Ping" {
		t.Errorf("expected description kept, got %q", got)
	}
}
