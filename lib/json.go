package lib

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adhocore/jsonc"
	"github.com/friendsofgo/errors"
	"github.com/inhies/go-bytesize"
	"github.com/schoolyear/schematools/static"
)

// ErrInputTooLarge is returned when an input exceeds the configured size limit
var ErrInputTooLarge = errors.New("input exceeds the maximum size")

// Input is a JSON document read into memory, together with the name it was read from
type Input struct {
	Name string
	Data []byte
	// Dir is the directory relative references in the document resolve against
	Dir string
}

// IsStdin reports whether the name refers to standard input
func IsStdin(name string) bool {
	return name == "" || name == "-" || name == static.StdinName
}

// ReadInput reads a file, or stdin when name is empty or "-".
// The file is always closed before returning.
// Files with a .jsonc or .json5 extension have their comments and trailing commas stripped.
func ReadInput(name string, stdin io.Reader, maxSize bytesize.ByteSize) (*Input, error) {
	if IsStdin(name) {
		data, err := readLimited(stdin, maxSize)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read standard input")
		}
		return &Input{Name: static.StdinName, Data: data, Dir: "."}, nil
	}

	return ReadFile(name, maxSize)
}

// ReadFile reads a file from disk, closing it before returning
func ReadFile(name string, maxSize bytesize.ByteSize) (*Input, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file %s", name)
	}
	defer f.Close()

	data, err := readLimited(f, maxSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file %s", name)
	}

	if isJSONC(name) {
		data = jsonc.New().Strip(data)
	}

	return &Input{Name: name, Data: data, Dir: filepath.Dir(name)}, nil
}

// readLimited reads at most maxSize bytes. A zero maxSize disables the limit
func readLimited(r io.Reader, maxSize bytesize.ByteSize) ([]byte, error) {
	if maxSize == 0 {
		return io.ReadAll(r)
	}

	data, err := io.ReadAll(io.LimitReader(r, int64(maxSize)+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > int64(maxSize) {
		return nil, errors.Wrapf(ErrInputTooLarge, "limit is %s", maxSize)
	}
	return data, nil
}

func isJSONC(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jsonc", ".json5":
		return true
	default:
		return false
	}
}

// ParseByteSize parses a human readable size such as "16MB"
func ParseByteSize(value string) (bytesize.ByteSize, error) {
	size, err := bytesize.Parse(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid size %q", value)
	}
	return size, nil
}
