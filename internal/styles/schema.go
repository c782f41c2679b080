package styles

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// styleSchema constrains user-supplied style profiles: every field optional,
// numeric, and non-negative, with no unknown keys.
const styleSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "page_width": {"type": "number", "exclusiveMinimum": 0},
    "page_height": {"type": "number", "exclusiveMinimum": 0},
    "margin_left": {"type": "number", "minimum": 0},
    "margin_right": {"type": "number", "minimum": 0},
    "margin_top": {"type": "number", "minimum": 0},
    "margin_bottom": {"type": "number", "minimum": 0},
    "name_size": {"type": "number", "exclusiveMinimum": 0},
    "heading_size": {"type": "number", "exclusiveMinimum": 0},
    "body_size": {"type": "number", "exclusiveMinimum": 0},
    "meta_size": {"type": "number", "exclusiveMinimum": 0}
  }
}`

// SchemaError represents a style profile failing schema validation.
type SchemaError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("style validation failed:\n")
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateStyleJSON validates style profile JSON content against the schema.
func ValidateStyleJSON(jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(styleSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate style JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return schemaErr
}
