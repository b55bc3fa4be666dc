// Package validation checks JSON documents against the JSON schemas embedded in this package.
package validation

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var embeddedSchemas embed.FS

// SchemaValidator validates JSON data against named JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaName string) error
	ValidateBytes(data []byte, schemaName string) error
}

type validator struct {
	fsys fs.FS

	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator that loads schemas by name from fsys
func NewSchemaValidator(fsys fs.FS) SchemaValidator {
	return &validator{
		fsys:     fsys,
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

var (
	defaultOnce      sync.Once
	defaultValidator SchemaValidator
)

// Default returns the shared validator over the embedded schemas
func Default() SchemaValidator {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embeddedSchemas, schemasDir)
		if err != nil {
			panic(err) // embedded directory always exists
		}
		defaultValidator = NewSchemaValidator(sub)
	})
	return defaultValidator
}

// ValidatePlan checks a planner response against the plan schema
func ValidatePlan(data []byte) error {
	return Default().ValidateBytes(data, SchemaPlan)
}

// ValidateFile validates a JSON file against a schema
func (v *validator) ValidateFile(dataPath, schemaName string) error {
	info, err := os.Stat(dataPath)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgReadDataFile, dataPath, err)
	}
	if info.Size() > maxFileSizeMiB<<20 {
		return fmt.Errorf("%s: %s is %d bytes", ErrMsgDataFileTooLarge, dataPath, info.Size())
	}

	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgReadDataFile, dataPath, err)
	}

	return v.ValidateBytes(data, schemaName)
}

// ValidateBytes validates JSON data bytes against a schema
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgLoadSchema, schemaName, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgParseJSON, err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// loadSchema compiles a schema once and caches it
func (v *validator) loadSchema(schemaName string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaName]; ok {
		return schema, nil
	}

	raw, err := fs.ReadFile(v.fsys, path.Clean(schemaName))
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseJSON, err)
	}

	if err := v.compiler.AddResource(schemaName, doc); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgAddSchemaResource, err)
	}

	schema, err := v.compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCompileSchema, err)
	}

	v.schemas[schemaName] = schema
	return schema, nil
}

// formatValidationError flattens nested validation errors into one line per failure
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var msgs []string
		collectErrors(validationErr, &msgs)
		return fmt.Errorf("%s: %s", ErrMsgSchemaValidation, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%s: %w", ErrMsgSchemaValidation, err)
}

func collectErrors(err *jsonschema.ValidationError, msgs *[]string) {
	// Only leaves name the failing keyword
	if len(err.Causes) == 0 {
		*msgs = append(*msgs, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, msgs)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := rootLocation
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if keywords := err.ErrorKind.KeywordPath(); len(keywords) > 0 {
			return fmt.Sprintf("at %s: %s", location, strings.Join(keywords, "."))
		}
	}
	return fmt.Sprintf("at %s: invalid", location)
}
