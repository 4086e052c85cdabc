package validator

import (
	"encoding/json"
	"io/fs"

	"github.com/friendsofgo/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/schoolyear/schematools/schemadoc"
)

type ErrorCategory int

const (
	CategoryOther ErrorCategory = iota
	CategorySchema
	CategorySystem
	CategoryParse
)

// Prefix is printed in front of an error of this category
func (c ErrorCategory) Prefix() string {
	switch c {
	case CategorySchema:
		return "JSON SCHEMA error:"
	case CategorySystem:
		return "system error:"
	case CategoryParse:
		return "JSON parser error:"
	default:
		return "some other error occurred:"
	}
}

// Categorize maps an error to the category it is reported under
func Categorize(err error) ErrorCategory {
	var (
		validationErr       *jsonschema.ValidationError
		schemaValidationErr *jsonschema.SchemaValidationError
		pathErr             *fs.PathError
		loadErr             *jsonschema.LoadURLError
		syntaxErr           *json.SyntaxError
		parseErr            *schemadoc.ParseError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &schemaValidationErr), errors.Is(err, schemadoc.ErrNotSchemaDocument):
		return CategorySchema
	case errors.As(err, &parseErr), errors.As(err, &syntaxErr):
		return CategoryParse
	case errors.As(err, &pathErr), errors.As(err, &loadErr):
		return CategorySystem
	default:
		return CategoryOther
	}
}
