package jsonfile

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// SchemaError lists the places where a document does not match its schema.
type SchemaError struct {
	Schema string
	Errors []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("document does not match %s schema: %s", e.Schema, strings.Join(e.Errors, "; "))
}

type schema struct {
	name     string
	compiled func() (*gojsonschema.Schema, error)
}

func newSchema(name string) schema {
	return schema{
		name: name,
		compiled: sync.OnceValues(func() (*gojsonschema.Schema, error) {
			raw, err := schemaFS.ReadFile("schemas/" + name + ".schema.json")
			if err != nil {
				return nil, fmt.Errorf("failed to read %s schema: %w", name, err)
			}
			s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
			if err != nil {
				return nil, fmt.Errorf("failed to compile %s schema: %w", name, err)
			}
			return s, nil
		}),
	}
}

var (
	addressBookSchema   = newSchema("addressbook")
	scheduleBoardSchema = newSchema("scheduleboard")
	userPrefsSchema     = newSchema("userprefs")
)

// validate checks data against the schema. Malformed JSON is reported as an error too.
func (s schema) validate(data []byte) error {
	compiled, err := s.compiled()
	if err != nil {
		return err
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{Schema: s.name, Errors: make([]string, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, field+": "+desc.Description())
	}
	return schemaErr
}
