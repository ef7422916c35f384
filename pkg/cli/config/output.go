package config

import "github.com/urfave/cli/v3"

// Output controls where the computed version is written besides stdout
type Output struct {
	Name    string // step output variable name
	File    string // runner output file, appended as name=value
	EnvName string // environment variable name to export, empty disables
	EnvFile string // runner environment file
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-name",
			Usage:       "Step output variable name",
			Value:       "version",
			Destination: &c.Name,
			Sources:     cli.EnvVars("BUILDVER_OUTPUT_NAME"),
		},
		&cli.StringFlag{
			Name:        "output-file",
			Usage:       "Runner step output file",
			Destination: &c.File,
			Sources:     cli.EnvVars("GITHUB_OUTPUT"),
		},
		&cli.StringFlag{
			Name:        "export-env",
			Usage:       "Export the version as this environment variable",
			Destination: &c.EnvName,
			Sources:     cli.EnvVars("BUILDVER_EXPORT_ENV"),
		},
		&cli.StringFlag{
			Name:        "env-file",
			Usage:       "Runner environment file",
			Destination: &c.EnvFile,
			Sources:     cli.EnvVars("GITHUB_ENV"),
		},
	}
}
