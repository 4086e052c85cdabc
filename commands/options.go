package commands

import (
	"github.com/friendsofgo/errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/inhies/go-bytesize"
	"github.com/schoolyear/schematools/lib"
	"github.com/schoolyear/schematools/static"
	"github.com/urfave/cli/v2"
)

const maxSizeFlagName = "max-size"

var maxSizeFlag = &cli.StringFlag{
	Name:    maxSizeFlagName,
	Usage:   "Maximum size of every JSON input, e.g. 512KB or 16MB. 0 disables the limit",
	Value:   static.DefaultMaxInputSize,
	EnvVars: []string{static.EnvPrefix + "MAX_SIZE"},
}

var isByteSize = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" || s == "0" {
		return nil
	}
	_, err := lib.ParseByteSize(s)
	return err
})

// propsOptions is the invocation of the property lister
type propsOptions struct {
	File1        string
	File2        string
	ShowDiffOnly bool
	DoNotShowIDs bool
	Patch        bool
	MaxSize      string
}

func newPropsOptions(c *cli.Context) propsOptions {
	return propsOptions{
		File1:        c.Args().Get(0),
		File2:        c.Args().Get(1),
		ShowDiffOnly: c.Bool("diff"),
		DoNotShowIDs: c.Bool("without-id"),
		Patch:        c.Bool("patch"),
		MaxSize:      c.String(maxSizeFlagName),
	}
}

func (o propsOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.File1, validation.Required.Error("file1 is required")),
		validation.Field(&o.File2, validation.When(o.Patch, validation.Required.Error("--patch requires file2"))),
		validation.Field(&o.MaxSize, isByteSize),
	)
}

// checkOptions is the invocation of the schema validator
type checkOptions struct {
	InFile      string
	ApplySchema bool
	MaxSize     string
}

func newCheckOptions(c *cli.Context) checkOptions {
	return checkOptions{
		InFile:      c.Args().First(),
		ApplySchema: c.Bool("schema"),
		MaxSize:     c.String(maxSizeFlagName),
	}
}

func (o checkOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.MaxSize, isByteSize),
	)
}

func maxInputSize(value string) (bytesize.ByteSize, error) {
	if value == "" || value == "0" {
		return 0, nil
	}
	size, err := lib.ParseByteSize(value)
	if err != nil {
		return 0, errors.Wrap(err, "invalid --max-size")
	}
	return size, nil
}
