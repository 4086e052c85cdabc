package commands

import (
	"fmt"

	"github.com/friendsofgo/errors"
	"github.com/inhies/go-bytesize"
	"github.com/schoolyear/schematools/lib"
	"github.com/schoolyear/schematools/schemadoc"
	"github.com/schoolyear/schematools/static"
	"github.com/urfave/cli/v2"
)

const parserErrorPrefix = "JSON parser error:"

var patchFlag = &cli.BoolFlag{
	Name:    "patch",
	Usage:   "Print the JSON merge patch (RFC 7386) that turns file1 into file2",
	Aliases: []string{"p"},
	EnvVars: []string{static.EnvPrefix + "PATCH"},
}

var ComparePropsCommand = &cli.Command{
	Name:      "props",
	Usage:     "list and compare the properties of JSON schema documents",
	ArgsUsage: "file1 [file2]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "diff",
			Usage:   "Only show the differences between file1 and file2",
			Aliases: []string{"d"},
			EnvVars: []string{static.EnvPrefix + "DIFF"},
		},
		&cli.BoolFlag{
			Name:    "without-id",
			Usage:   "Do not show the $id of the schema",
			Aliases: []string{"I"},
			EnvVars: []string{static.EnvPrefix + "WITHOUT_ID"},
		},
		patchFlag,
		maxSizeFlag,
	},
	Action: func(c *cli.Context) error {
		opts := newPropsOptions(c)
		if err := opts.Validate(); err != nil {
			return fail(c, "invalid arguments:", err)
		}
		if c.Args().Len() > 2 {
			return fail(c, "invalid arguments:", errors.Errorf("expected at most 2 files, got %d", c.Args().Len()))
		}

		maxSize, err := maxInputSize(opts.MaxSize)
		if err != nil {
			return fail(c, "invalid arguments:", err)
		}

		doc1, err := loadDocument(c, opts.File1, maxSize)
		if err != nil {
			return err
		}

		if opts.File2 == "" {
			return listProperties(c, opts, opts.File1, doc1)
		}

		doc2, err := loadDocument(c, opts.File2, maxSize)
		if err != nil {
			return err
		}

		switch {
		case opts.Patch:
			return printMergePatch(c, doc1, doc2)
		case opts.ShowDiffOnly:
			return printDiff(c, opts, doc1, doc2)
		default:
			if err := listProperties(c, opts, opts.File1, doc1); err != nil {
				return err
			}
			return listProperties(c, opts, opts.File2, doc2)
		}
	},
}

// loadDocument reads and parses a file, reporting failures itself
func loadDocument(c *cli.Context, name string, maxSize bytesize.ByteSize) (*schemadoc.Document, error) {
	input, err := lib.ReadInput(name, c.App.Reader, maxSize)
	if err != nil {
		return nil, fail(c, "system error:", err)
	}

	doc, err := schemadoc.Parse(input.Data)
	if err != nil {
		var parseErr *schemadoc.ParseError
		if errors.As(err, &parseErr) {
			return nil, fail(c, parserErrorPrefix, err)
		}
		return nil, fail(c, fmt.Sprintf("%s:", name), err)
	}

	return doc, nil
}

func listProperties(c *cli.Context, opts propsOptions, name string, doc *schemadoc.Document) error {
	out := c.App.Writer

	if !opts.DoNotShowIDs {
		id, ok := doc.ID()
		if !ok {
			return fail(c, fmt.Sprintf("%s has no $id, use --without-id to list it anyway", name), nil)
		}
		fmt.Fprintf(out, "file %s (\"$id\": \"%s\") :\n", name, id)
	}

	listing, err := describe(c, name, doc)
	if err != nil {
		return err
	}

	return listing.Write(out)
}

func describe(c *cli.Context, name string, doc *schemadoc.Document) (*schemadoc.Listing, error) {
	listing, err := schemadoc.Describe(doc)
	if errors.Is(err, schemadoc.ErrNotSchemaDocument) {
		return nil, fail(c, fmt.Sprintf("%s: %s", schemadoc.ErrNotSchemaDocument, name), nil)
	} else if err != nil {
		return nil, fail(c, "failed to describe document:", err)
	}
	return listing, nil
}

func printDiff(c *cli.Context, opts propsOptions, doc1, doc2 *schemadoc.Document) error {
	out := c.App.Writer

	listing1, err := describe(c, opts.File1, doc1)
	if err != nil {
		return err
	}
	listing2, err := describe(c, opts.File2, doc2)
	if err != nil {
		return err
	}

	if !opts.DoNotShowIDs {
		fmt.Fprintf(out, "--- %s (\"$id\": \"%s\")\n", opts.File1, doc1.IDOrUndefined())
		fmt.Fprintf(out, "+++ %s (\"$id\": \"%s\")\n", opts.File2, doc2.IDOrUndefined())
	}

	return schemadoc.WriteDiff(out, schemadoc.Diff(listing1, listing2))
}

func printMergePatch(c *cli.Context, doc1, doc2 *schemadoc.Document) error {
	patch, err := schemadoc.MergePatch(doc1, doc2)
	if err != nil {
		return fail(c, "failed to compare documents:", err)
	}

	_, err = fmt.Fprintf(c.App.Writer, "%s\n\n", patch)
	return err
}
