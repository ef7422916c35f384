package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buildver/pkg/cli/config"
	"github.com/m-mizutani/buildver/pkg/controller/actions"
	"github.com/m-mizutani/buildver/pkg/domain/interfaces"
	githubinfra "github.com/m-mizutani/buildver/pkg/infra/github"
	"github.com/m-mizutani/buildver/pkg/usecase"
)

func cmdCalc() *cli.Command {
	var (
		eventCfg  config.Event
		githubCfg config.GitHub
		outputCfg config.Output
	)

	flags := append(eventCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, outputCfg.Flags()...)

	return &cli.Command{
		Name:    "calc",
		Aliases: []string{"c"},
		Usage:   "Calculate the version for the current build",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			build, err := actions.Build(actions.Input{
				EventName:     eventCfg.Name,
				Ref:           eventCfg.Ref,
				SHA:           eventCfg.SHA,
				Repository:    eventCfg.Repository,
				DefaultBranch: eventCfg.DefaultBranch,
				PayloadPath:   eventCfg.PayloadPath,
				MajorVersion:  eventCfg.MajorVersion,
			})
			if err != nil {
				return err
			}

			client, err := newRepositoryClient(githubCfg)
			if err != nil {
				return err
			}

			version, err := usecase.New(client).Calculate(ctx, build)
			if err != nil {
				return err
			}

			fmt.Println(version)

			if outputCfg.File != "" {
				if err := appendRunnerFile(outputCfg.File, outputCfg.Name, version); err != nil {
					return err
				}
				logger.Debug("Wrote step output",
					slog.String("file", outputCfg.File),
					slog.String("name", outputCfg.Name),
				)
			}
			if outputCfg.EnvName != "" && outputCfg.EnvFile != "" {
				if err := appendRunnerFile(outputCfg.EnvFile, outputCfg.EnvName, version); err != nil {
					return err
				}
				logger.Debug("Exported environment variable",
					slog.String("file", outputCfg.EnvFile),
					slog.String("name", outputCfg.EnvName),
				)
			}

			return nil
		},
	}
}

// newRepositoryClient builds the hosting API client from credentials. App
// authentication wins when configured, otherwise token (possibly anonymous).
func newRepositoryClient(cfg config.GitHub) (interfaces.RepositoryClient, error) {
	if cfg.AppID != 0 {
		client, err := githubinfra.NewAppClient(cfg.AppID, cfg.InstallationID, []byte(cfg.PrivateKey))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App client")
		}
		return client, nil
	}
	return githubinfra.NewClient(cfg.Token), nil
}

// appendRunnerFile appends a name=value line to a runner-provided file, the
// protocol used for both step outputs and exported environment variables
func appendRunnerFile(path, name, value string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return goerr.Wrap(err, "failed to open runner file", goerr.V("path", path))
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s=%s\n", name, value); err != nil {
		return goerr.Wrap(err, "failed to write runner file", goerr.V("path", path))
	}
	return nil
}
