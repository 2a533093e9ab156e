package manifest

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema/manifest.schema.json schema/manifest.cue
var schemaFS embed.FS

const jsonSchemaFile = "schema/manifest.schema.json"

var (
	manifestSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// compileSchema compiles the embedded JSON Schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := schemaFS.ReadFile(jsonSchemaFile)
		if err != nil {
			compileErr = fmt.Errorf("read manifest schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal manifest schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("manifest.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add manifest schema resource: %w", err)
			return
		}

		manifestSchema, err = compiler.Compile("manifest.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile manifest schema: %w", err)
		}
	})
	return compileErr
}

// ValidateJSON validates a JSON document against the manifest schema.
func ValidateJSON(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := manifestSchema.Validate(doc); err != nil {
		return fmt.Errorf("manifest validation failed: %w", err)
	}
	return nil
}

// ParseYAML parses a YAML manifest. source names the document in errors.
//
// The document is validated against the JSON Schema first, then decoded
// with unknown fields rejected.
func ParseYAML(data []byte, source string) (*Manifest, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Code: ErrCodeParse, Source: source, Message: fmt.Sprintf("failed to parse YAML: %v", err), Err: err}
	}

	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, &Error{Code: ErrCodeParse, Source: source, Message: fmt.Sprintf("manifest is not JSON-compatible: %v", err), Err: err}
	}
	if err := ValidateJSON(asJSON); err != nil {
		return nil, &Error{Code: ErrCodeSchema, Source: source, Message: err.Error(), Err: err}
	}

	m := &Manifest{Source: source}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(m); err != nil {
		return nil, &Error{Code: ErrCodeParse, Source: source, Message: fmt.Sprintf("failed to decode manifest: %v", err), Err: err}
	}

	if err := m.normalize(); err != nil {
		return nil, err
	}
	return m, nil
}
