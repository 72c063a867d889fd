package ports

import (
	"context"
	"io"

	"go.trai.ch/relay/internal/core/domain"
)

// Executor defines the interface for executing workflow steps.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the step's command with the given additional environment.
	//
	// The env parameter contains environment variables in "KEY=VALUE" format,
	// typically the matrix variables of the enclosing job instance. Step
	// output is streamed to stdout and stderr.
	//
	// It returns an error if the command exits non-zero.
	Execute(ctx context.Context, step *domain.Step, env []string, stdout, stderr io.Writer) error
}
