// Package schema validates compute request bodies.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed request.json
var request []byte
var requestLoader = gojsonschema.NewBytesLoader(request)

type Schema struct {
	schema *gojsonschema.Schema
}

// NewRequestSchema compiles the embedded request schema.
func NewRequestSchema() (*Schema, error) {
	schema, err := gojsonschema.NewSchema(requestLoader)
	if err != nil {
		return nil, err
	}

	return &Schema{schema: schema}, nil
}

// ValidationError lists the schema violations of a document.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", strings.Join(e.Errors, "; "))
}

// Validate validates the raw JSON document data. A *ValidationError
// is returned if the document does not match the schema.
func (s *Schema) Validate(data []byte) error {
	res, err := s.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}

	if res.Valid() {
		return nil
	}

	errs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		errs = append(errs, e.String())
	}

	return &ValidationError{Errors: errs}
}
