package commands

import (
	"fmt"

	"github.com/friendsofgo/errors"
	"github.com/inhies/go-bytesize"
	"github.com/schoolyear/schematools/lib"
	"github.com/schoolyear/schematools/schemadoc"
	"github.com/schoolyear/schematools/static"
	"github.com/schoolyear/schematools/validator"
	"github.com/urfave/cli/v2"
)

// ErrNoSchemaReference is returned in reference mode for documents without a $schema
var ErrNoSchemaReference = errors.New("the document does not specify a schema")

var SchemaCheckCommand = &cli.Command{
	Name:      "check",
	Usage:     "validate a JSON schema document",
	ArgsUsage: "[infile]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "schema",
			Usage:   "Validate the document against the schema named by its $schema instead of Draft 2020-12",
			Aliases: []string{"D"},
			EnvVars: []string{static.EnvPrefix + "APPLY_SCHEMA"},
		},
		maxSizeFlag,
	},
	Action: func(c *cli.Context) error {
		opts := newCheckOptions(c)
		if err := opts.Validate(); err != nil {
			return fail(c, "invalid arguments:", err)
		}
		if c.Args().Len() > 1 {
			return fail(c, "invalid arguments:", errors.Errorf("expected at most 1 file, got %d", c.Args().Len()))
		}

		maxSize, err := maxInputSize(opts.MaxSize)
		if err != nil {
			return fail(c, "invalid arguments:", err)
		}

		input, err := lib.ReadInput(opts.InFile, c.App.Reader, maxSize)
		if err != nil {
			return fail(c, validator.CategorySystem.Prefix(), err)
		}

		doc, err := schemadoc.Parse(input.Data)
		if err != nil {
			return fail(c, validator.Categorize(err).Prefix(), err)
		}

		if err := checkDocument(c, opts, input, doc, maxSize); err != nil {
			if errors.Is(err, ErrNoSchemaReference) {
				return fail(c, "error:", err)
			}
			return fail(c, validator.Categorize(err).Prefix(), err)
		}

		fmt.Fprintln(c.App.Writer, "no errors found in the schema")
		fmt.Fprintln(c.App.Writer)
		return nil
	},
}

func checkDocument(c *cli.Context, opts checkOptions, input *lib.Input, doc *schemadoc.Document, maxSize bytesize.ByteSize) error {
	out := c.App.Writer
	v := validator.New(c.Context, nil)

	fmt.Fprintf(out, "validating file %s (\"$id\": \"%s\")\n", input.Name, doc.IDOrUndefined())

	if !opts.ApplySchema {
		fmt.Fprintln(out, "validating with jsonschema Draft 2020-12")
		return v.CheckMetaSchema(doc.Instance)
	}

	ref, ok := doc.SchemaRef()
	if !ok || ref == "" {
		return ErrNoSchemaReference
	}

	target, remote := lib.ResolveReference(input.Dir, ref)
	if remote {
		fmt.Fprintf(out, "validating with schema %s\n", target)
		return v.ValidateAgainstURL(doc.Instance, target)
	}

	schemaInput, err := lib.ReadFile(target, maxSize)
	if err != nil {
		return err
	}

	schemaDoc, err := schemadoc.Parse(schemaInput.Data)
	if err != nil {
		return errors.Wrapf(err, "failed to parse schema %s", target)
	}

	fmt.Fprintf(out, "validating with schema %s (\"$id\": \"%s\")\n", target, schemaDoc.IDOrUndefined())
	return v.ValidateAgainstFile(doc.Instance, target, schemaDoc.Instance)
}
