package ports

import (
	"context"

	"github.com/bnema/pistactl/internal/domain"
)

type Session interface {
	SocketName() string
	SessionName() string
	CreateSession(ctx context.Context, workDir string) error
	AllocateTerminal(ctx context.Context, workDir string, name string) (domain.Terminal, error)
	AllocateRendererTerminal(ctx context.Context, name string) (domain.Terminal, error)
	SendText(ctx context.Context, term domain.Terminal, text string) error
	SendEnter(ctx context.Context, term domain.Terminal) error
	SendInterrupt(ctx context.Context, term domain.Terminal) error
	KillSession(ctx context.Context) error
	ListPanes(ctx context.Context) ([]domain.PaneInfo, error)
	Attach(ctx context.Context) error
}
