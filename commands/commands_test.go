package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/friendsofgo/errors"
	"github.com/urfave/cli/v2"
)

type runResult struct {
	stdout   string
	stderr   string
	exitCode int
}

// runApp runs the combined app without exiting the test process
func runApp(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := NewApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}

	result := runResult{}
	if err := app.Run(append([]string{"schematools"}, args...)); err != nil {
		result.exitCode = 1
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			result.exitCode = exitErr.ExitCode()
		}
	}
	result.stdout = stdout.String()
	result.stderr = stderr.String()
	return result
}

func testdata(name string) string {
	return filepath.Join("testdata", name)
}
