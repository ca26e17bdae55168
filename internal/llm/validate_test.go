package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema(name string) *Schema {
	return &Schema{
		Name: name,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"count": map[string]any{"type": "integer"},
			},
			"required": []any{"title"},
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	err := validateResponse(testSchema("valid-doc"), json.RawMessage(`{"title":"ok","count":3}`))
	if err != nil {
		t.Fatalf("validateResponse() error = %v", err)
	}
}

func TestValidateResponseRejectsMissingRequired(t *testing.T) {
	err := validateResponse(testSchema("missing-req"), json.RawMessage(`{"count":3}`))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("validateResponse() error = %v, want *FormatError", err)
	}
}

func TestValidateResponseRejectsInvalidJSON(t *testing.T) {
	err := validateResponse(testSchema("bad-json"), json.RawMessage(`{not json`))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("validateResponse() error = %v, want *FormatError", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything at all`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestCompileSchemaCaches(t *testing.T) {
	s := testSchema("cached-doc")

	first, err := CompileSchema(s)
	if err != nil {
		t.Fatalf("CompileSchema() error = %v", err)
	}
	second, err := CompileSchema(s)
	if err != nil {
		t.Fatalf("CompileSchema() second call error = %v", err)
	}
	if first != second {
		t.Error("CompileSchema should return the cached compiled schema")
	}
}
