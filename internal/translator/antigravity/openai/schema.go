package openai

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Gemini accepts a restricted, uppercase-typed schema vocabulary. schemaNode
// carries exactly the accepted keys, so translating a declaration is a matter
// of building the node tree: anything outside the whitelist (default, title,
// additionalProperties, ...) never makes it in.
type schemaNode struct {
	Type        string                 `json:"type,omitempty"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]*schemaNode `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
	Items       *schemaNode            `json:"items,omitempty"`
	Enum        []any                  `json:"enum,omitempty"`
	Format      string                 `json:"format,omitempty"`
	Nullable    *bool                  `json:"nullable,omitempty"`
}

// functionDeclaration is the Gemini wire form of one declared tool.
type functionDeclaration struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Parameters  *schemaNode `json:"parameters,omitempty"`
}

// translateToolDeclarations maps the ingested declarations to Gemini function
// declarations, applying the function-name alias and the root OBJECT default.
func translateToolDeclarations(decls []functionDecl) []functionDeclaration {
	out := make([]functionDeclaration, 0, len(decls))
	for _, decl := range decls {
		fd := functionDeclaration{
			Name:        aliasFunctionName(decl.name),
			Description: decl.description,
		}
		if decl.hasParams {
			fd.Parameters = translateSchema(decl.parameters)
			if fd.Parameters != nil && fd.Parameters.Type == "" {
				// Gemini requires an explicit root type on parameters.
				fd.Parameters.Type = "OBJECT"
			}
		}
		out = append(out, fd)
	}
	return out
}

// translateSchema recursively converts a JSON-schema-like node into the Gemini
// vocabulary. Unknown or malformed nodes collapse to an empty schema rather
// than failing.
func translateSchema(node gjson.Result) *schemaNode {
	if !node.IsObject() {
		return &schemaNode{}
	}

	s := &schemaNode{
		Type:        schemaType(node.Get("type")),
		Description: node.Get("description").String(),
		Format:      node.Get("format").String(),
	}

	if props := node.Get("properties"); props.IsObject() {
		s.Properties = make(map[string]*schemaNode, len(props.Map()))
		props.ForEach(func(key, value gjson.Result) bool {
			s.Properties[key.String()] = translateSchema(value)
			return true
		})
	}
	if req := node.Get("required"); req.IsArray() {
		for _, r := range req.Array() {
			s.Required = append(s.Required, r.String())
		}
	}
	if items := node.Get("items"); items.Exists() {
		s.Items = translateSchema(items)
	}
	if enum := node.Get("enum"); enum.IsArray() {
		for _, e := range enum.Array() {
			s.Enum = append(s.Enum, e.Value())
		}
	}
	if nullable := node.Get("nullable"); nullable.IsBool() {
		b := nullable.Bool()
		s.Nullable = &b
	}
	return s
}

// schemaType extracts and uppercases a schema type. Type arrays such as
// ["string","null"] collapse to the first non-null entry.
func schemaType(t gjson.Result) string {
	switch {
	case t.Type == gjson.String:
		return strings.ToUpper(t.String())
	case t.IsArray():
		for _, item := range t.Array() {
			if s := item.String(); s != "" && s != "null" {
				return strings.ToUpper(s)
			}
		}
	}
	return ""
}
