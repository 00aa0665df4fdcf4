package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the optional dotenv files (default ".env") into the environment
// and parses the configuration from it. Missing dotenv files are ignored.
func Load(dotenv ...string) (Configuration, error) {
	var conf Configuration

	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return conf, fmt.Errorf("load dotenv: %w", err)
	}
	if err := envconfig.Process(envprefix, &conf); err != nil {
		return conf, fmt.Errorf("parse config: %w", err)
	}
	return conf, nil
}

// WantsHelp reports whether -h or --help is among args.
func WantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// Usage prints every environment variable with its description and default.
func Usage(out io.Writer) error {
	tabs := tabwriter.NewWriter(out, 1, 0, 4, ' ', 0)
	if err := envconfig.Usagef(envprefix, &Configuration{}, tabs, usageHelpFormat); err != nil {
		return err
	}
	return tabs.Flush()
}

// see https://github.com/kelseyhightower/envconfig/blob/v1.4.0/usage.go#L31
const usageHelpFormat = `This application is configured with the following environment variables:
KEY	DESCRIPTION	DEFAULT
{{range .}}{{usage_key .}}	{{usage_description .}}	{{usage_default .}}
{{end}}`
