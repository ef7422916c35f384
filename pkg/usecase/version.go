// Package usecase implements build version calculation. Events are classified
// into a scenario, a base semantic version is resolved from the event context
// and repository state, and the final string is assembled from the resolved
// components.
package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"

	"github.com/m-mizutani/buildver/pkg/domain/interfaces"
	"github.com/m-mizutani/buildver/pkg/domain/model"
)

type versionUseCase struct {
	client interfaces.RepositoryClient
}

// New creates a new instance of VersionUseCase
func New(client interfaces.RepositoryClient) interfaces.VersionUseCase {
	return &versionUseCase{
		client: client,
	}
}

// Calculate computes the version string for one build. The computation is
// idempotent: identical contexts with identical remote responses always yield
// the same string.
func (uc *versionUseCase) Calculate(ctx context.Context, build *model.BuildContext) (string, error) {
	logger := ctxlog.From(ctx)

	scenario, err := Classify(build)
	if err != nil {
		return "", err
	}

	logger.Info("Classified build event",
		"event", build.EventName,
		"ref", build.Ref,
		"scenario", scenario.String(),
	)

	components, err := uc.resolve(ctx, build, scenario)
	if err != nil {
		return "", err
	}

	version := Format(components)

	logger.Info("Calculated build version",
		"version", version,
		"scenario", scenario.String(),
		"owner", build.Owner,
		"repo", build.Repo,
	)
	return version, nil
}
