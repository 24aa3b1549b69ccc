package ports

import (
	"context"

	"github.com/bnema/pistactl/internal/domain"
)

type ProcessLister interface {
	ListProcesses(ctx context.Context) ([]domain.ProcessInfo, error)
}
