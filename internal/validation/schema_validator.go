package validation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON data against JSON schemas
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaPath string) error
}

type validator struct {
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator with a compiled-schema cache
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateBytes validates JSON data bytes against a schema file
func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.loadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}

	return nil
}

func (v *validator) loadSchema(schemaPath string) (*jsonschema.Schema, error) {
	if schema, ok := v.schemas[schemaPath]; ok {
		return schema, nil
	}

	resolvedPath, err := resolveSchemaPath(schemaPath)
	if err != nil {
		return nil, err
	}

	schemaData, err := os.ReadFile(resolvedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var schemaJSON interface{}
	if err := json.Unmarshal(schemaData, &schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(schemaPath, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaPath] = schema
	return schema, nil
}

func formatValidationError(err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validation error: %w", err)
	}

	var lines []string
	collectErrors(validationErr, &lines)
	return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keyword := ""
	if err.ErrorKind != nil {
		if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
			keyword = strings.Join(path, ".")
		}
	}

	if keyword != "" {
		*lines = append(*lines, fmt.Sprintf("  - at %s: %s validation failed", location, keyword))
	} else {
		*lines = append(*lines, fmt.Sprintf("  - at %s: validation failed", location))
	}

	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

// resolveSchemaPath resolves relative schema paths by searching upward from
// the working directory to the module root, so tests in nested packages find
// the repo's configs/ directory.
func resolveSchemaPath(schemaPath string) (string, error) {
	if filepath.IsAbs(schemaPath) {
		return schemaPath, nil
	}

	if _, err := os.Stat(schemaPath); err == nil {
		return schemaPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		testPath := filepath.Join(dir, schemaPath)
		if _, err := os.Stat(testPath); err == nil {
			return testPath, nil
		}

		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return "", fmt.Errorf("schema file not found: %s", schemaPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("schema file not found: %s (searched from %s)", schemaPath, cwd)
}
