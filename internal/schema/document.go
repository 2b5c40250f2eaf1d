// Package schema models the configuration-form schema dialect the
// platform UI consumes: a JSON Schema subset extended with
// propertyOrder (field ordering), format/options rendering hints and
// the `#` secret-key convention.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Property types understood by the form renderer.
const (
	TypeObject  = "object"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Options carries renderer hints, e.g. {"input": "textarea"}.
type Options struct {
	Input string `json:"input,omitempty"`
}

type Property struct {
	Type          string   `json:"type"`
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	Default       any      `json:"default,omitempty"`
	Format        string   `json:"format,omitempty"`
	MinLength     int      `json:"minLength,omitempty"`
	Options       *Options `json:"options,omitempty"`
	PropertyOrder int      `json:"propertyOrder,omitempty"`
}

type Document struct {
	Type       string              `json:"type"`
	Title      string              `json:"title,omitempty"`
	Required   []string            `json:"required"`
	Properties map[string]Property `json:"properties"`
}

// FieldError describes a single validation failure for a config field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Parse decodes a schema document and checks its well-formedness.
// Integer-typed defaults arriving as JSON numbers are normalized to int.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema document: %w", err)
	}

	for name, prop := range doc.Properties {
		if prop.Type == TypeInteger {
			if f, ok := prop.Default.(float64); ok && f == math.Trunc(f) {
				prop.Default = int(f)
				doc.Properties[name] = prop
			}
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks that the document itself is a well-formed form schema.
func (d *Document) Validate() error {
	if d.Type != TypeObject {
		return fmt.Errorf("schema root type must be %q, got %q", TypeObject, d.Type)
	}
	if len(d.Properties) == 0 {
		return fmt.Errorf("schema has no properties")
	}

	orders := make(map[int]string, len(d.Properties))
	for name, prop := range d.Properties {
		switch prop.Type {
		case TypeString, TypeInteger, TypeNumber, TypeBoolean:
		default:
			return fmt.Errorf("property %q has unsupported type %q", name, prop.Type)
		}
		if prop.Default != nil {
			if err := checkType(name, prop.Type, prop.Default); err != nil {
				return fmt.Errorf("property %q default: %s", name, err.(FieldError).Message)
			}
		}
		if prop.PropertyOrder < 0 {
			return fmt.Errorf("property %q has negative propertyOrder", name)
		}
		if prop.PropertyOrder > 0 {
			if other, dup := orders[prop.PropertyOrder]; dup {
				return fmt.Errorf("properties %q and %q share propertyOrder %d", other, name, prop.PropertyOrder)
			}
			orders[prop.PropertyOrder] = name
		}
	}

	for _, name := range d.Required {
		if _, ok := d.Properties[name]; !ok {
			return fmt.Errorf("required field %q is not declared in properties", name)
		}
	}
	return nil
}

// ValidateConfig checks a raw configuration object against the
// document: required keys present, declared keys type-correct. Keys
// the document does not declare are accepted untouched. Errors are
// sorted by field name so output is deterministic.
func (d *Document) ValidateConfig(cfg map[string]any) []FieldError {
	var errs []FieldError

	for _, name := range d.Required {
		if _, ok := cfg[name]; !ok {
			errs = append(errs, FieldError{Field: name, Message: "required field is missing"})
		}
	}

	for name, value := range cfg {
		prop, ok := d.Properties[name]
		if !ok {
			continue
		}
		if err := checkType(name, prop.Type, value); err != nil {
			errs = append(errs, err.(FieldError))
		}
	}

	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}

// ApplyDefaults fills absent keys that declare a default. Provided
// values are never overwritten.
func (d *Document) ApplyDefaults(cfg map[string]any) map[string]any {
	if cfg == nil {
		cfg = make(map[string]any)
	}
	for name, prop := range d.Properties {
		if prop.Default == nil {
			continue
		}
		if _, ok := cfg[name]; !ok {
			cfg[name] = prop.Default
		}
	}
	return cfg
}

// SecretKeys returns the document's secret field names, ordered by
// propertyOrder then name.
func (d *Document) SecretKeys() []string {
	var keys []string
	for name := range d.Properties {
		if IsSecretKey(name) {
			keys = append(keys, name)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := d.Properties[keys[i]], d.Properties[keys[j]]
		if a.PropertyOrder != b.PropertyOrder {
			return a.PropertyOrder < b.PropertyOrder
		}
		return keys[i] < keys[j]
	})
	return keys
}

// OrderedKeys returns all property names sorted by propertyOrder,
// unordered properties last by name. This is the order the form
// renderer displays fields in.
func (d *Document) OrderedKeys() []string {
	keys := make([]string, 0, len(d.Properties))
	for name := range d.Properties {
		keys = append(keys, name)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := d.Properties[keys[i]].PropertyOrder, d.Properties[keys[j]].PropertyOrder
		if a == 0 {
			a = math.MaxInt
		}
		if b == 0 {
			b = math.MaxInt
		}
		if a != b {
			return a < b
		}
		return keys[i] < keys[j]
	})
	return keys
}

// IsSecretKey reports whether the platform treats the field as a
// secret (keys prefixed with '#' are encrypted at rest by the host).
func IsSecretKey(name string) bool {
	return strings.HasPrefix(name, "#")
}

func checkType(name, want string, value any) error {
	switch want {
	case TypeString:
		if _, ok := value.(string); !ok {
			return FieldError{Field: name, Message: fmt.Sprintf("expected string, got %s", jsonTypeName(value))}
		}
	case TypeInteger:
		switch v := value.(type) {
		case int, int32, int64:
		case float64:
			if v != math.Trunc(v) {
				return FieldError{Field: name, Message: "expected integer, got fractional number"}
			}
		case json.Number:
			if _, err := v.Int64(); err != nil {
				return FieldError{Field: name, Message: "expected integer, got fractional number"}
			}
		default:
			return FieldError{Field: name, Message: fmt.Sprintf("expected integer, got %s", jsonTypeName(value))}
		}
	case TypeNumber:
		switch value.(type) {
		case int, int32, int64, float32, float64, json.Number:
		default:
			return FieldError{Field: name, Message: fmt.Sprintf("expected number, got %s", jsonTypeName(value))}
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return FieldError{Field: name, Message: fmt.Sprintf("expected boolean, got %s", jsonTypeName(value))}
		}
	}
	return nil
}

func jsonTypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int32, int64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
