package usecase

import (
	"time"

	"github.com/binguliki/IntelliLearn/internal/chat"
	"github.com/binguliki/IntelliLearn/internal/session"
	"github.com/binguliki/IntelliLearn/internal/tools"
	pkgLog "github.com/binguliki/IntelliLearn/pkg/log"
)

const (
	defaultCompletionTimeout = 60 * time.Second
	defaultToolTimeout       = 90 * time.Second
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      chat.CompletionClient
	registry *tools.Registry
	sessions *session.Store

	completionTimeout time.Duration
	toolTimeout       time.Duration
}

var _ chat.UseCase = &implUseCase{}

func New(l pkgLog.Logger, llm chat.CompletionClient, registry *tools.Registry, sessions *session.Store) chat.UseCase {
	return &implUseCase{
		l:                 l,
		llm:               llm,
		registry:          registry,
		sessions:          sessions,
		completionTimeout: defaultCompletionTimeout,
		toolTimeout:       defaultToolTimeout,
	}
}
