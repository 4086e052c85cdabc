// Package validator checks schema documents with github.com/santhosh-tekuri/jsonschema/v6.
package validator

import (
	"context"
	"path/filepath"

	"github.com/friendsofgo/errors"
	"github.com/go-resty/resty/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/schoolyear/schematools/lib"
)

// Draft2020MetaSchemaURL is served from the copy bundled with the validation library
const Draft2020MetaSchemaURL = "https://json-schema.org/draft/2020-12/schema"

// Validator compiles schemas using Draft 2020-12 as the default dialect.
// Schemas referenced over http(s) are downloaded with the resty client.
type Validator struct {
	ctx    context.Context
	client *resty.Client
}

func New(ctx context.Context, client *resty.Client) *Validator {
	if client == nil {
		client = lib.NewDownloadClient()
	}
	return &Validator{ctx: ctx, client: client}
}

func (v *Validator) newCompiler() *jsonschema.Compiler {
	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft2020)
	compiler.UseLoader(jsonschema.SchemeURLLoader{
		"file":  jsonschema.FileLoader{},
		"http":  &httpLoader{ctx: v.ctx, client: v.client},
		"https": &httpLoader{ctx: v.ctx, client: v.client},
	})
	return compiler
}

// CheckMetaSchema validates a document as an instance of the Draft 2020-12 meta-schema
func (v *Validator) CheckMetaSchema(instance any) error {
	metaSchema, err := v.newCompiler().Compile(Draft2020MetaSchemaURL)
	if err != nil {
		return errors.Wrap(err, "failed to compile the Draft 2020-12 meta-schema")
	}

	return metaSchema.Validate(instance)
}

// ValidateAgainstFile validates instance against a schema that was read from path
func (v *Validator) ValidateAgainstFile(instance any, path string, schemaDoc any) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %s to an absolute path", path)
	}

	compiler := v.newCompiler()
	if err := compiler.AddResource(absPath, schemaDoc); err != nil {
		return errors.Wrapf(err, "failed to add schema %s", path)
	}

	schema, err := compiler.Compile(absPath)
	if err != nil {
		return err
	}

	return schema.Validate(instance)
}

// ValidateAgainstURL validates instance against a remote schema
func (v *Validator) ValidateAgainstURL(instance any, url string) error {
	schema, err := v.newCompiler().Compile(url)
	if err != nil {
		return err
	}

	return schema.Validate(instance)
}
