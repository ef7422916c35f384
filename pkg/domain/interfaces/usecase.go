package interfaces

import (
	"context"

	"github.com/m-mizutani/buildver/pkg/domain/model"
)

// VersionUseCase defines the interface for build version calculation
type VersionUseCase interface {
	// Calculate computes the version string for one build
	Calculate(ctx context.Context, build *model.BuildContext) (string, error)
}
