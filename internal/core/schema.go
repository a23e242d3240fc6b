package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// wireframeSchemaJSON is the shape contract for backend-returned
// wireframe payloads. Checked after parse and before decoding into a
// WireframeModel; the backend's adherence to the prompt is not
// trusted.
const wireframeSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["screens"],
  "properties": {
    "screens": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "components"],
        "properties": {
          "name": {"type": "string"},
          "components": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["type"],
              "properties": {
                "type": {"type": "string"}
              }
            }
          }
        }
      }
    },
    "edges": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["from", "to"],
        "properties": {
          "from": {"type": "integer"},
          "to": {"type": "integer"}
        }
      }
    },
    "alternative_paths": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "flow"],
        "properties": {
          "name": {"type": "string"},
          "flow": {"type": "string"}
        }
      }
    }
  }
}`

var (
	wireframeSchemaOnce sync.Once
	wireframeSchema     *jsonschema.Schema
	wireframeSchemaErr  error
)

func compiledWireframeSchema() (*jsonschema.Schema, error) {
	wireframeSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(wireframeSchemaJSON))
		if err != nil {
			wireframeSchemaErr = fmt.Errorf("unmarshal wireframe schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("prd-analyzer://schemas/wireframe.json", doc); err != nil {
			wireframeSchemaErr = fmt.Errorf("add wireframe schema resource: %w", err)
			return
		}

		wireframeSchema, wireframeSchemaErr = c.Compile("prd-analyzer://schemas/wireframe.json")
	})
	return wireframeSchema, wireframeSchemaErr
}

// DecodeWireframe turns a parsed JSON payload into a validated
// WireframeModel: schema check, decode, then structural validation of
// edge indices.
func DecodeWireframe(payload json.RawMessage) (*WireframeModel, error) {
	schema, err := compiledWireframeSchema()
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(payload)))
	if err != nil {
		return nil, fmt.Errorf("unmarshal wireframe payload: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return nil, &ValidationError{Field: "wireframes", Message: err.Error()}
	}

	var model WireframeModel
	if err := json.Unmarshal(payload, &model); err != nil {
		return nil, fmt.Errorf("decode wireframe model: %w", err)
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	return &model, nil
}
