package static

// these variables are baked in during compilation
var (
	Version = "v0.0.0"
)

var (
	AppName    = "schematools"
	RepoURL    = "https://github.com/schoolyear/schematools"
	EnvPrefix  = "SCHEMATOOLS_"
	DotEnvFile = ".env"
)

// DefaultMaxInputSize bounds every JSON file read by the tools
const DefaultMaxInputSize = "16MB"

// StdinName is shown in place of a filename when reading from standard input
const StdinName = "<stdin>"
