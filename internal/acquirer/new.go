package acquirer

import (
	"github.com/tantran2612/vidscribe/internal/config"
	"github.com/tantran2612/vidscribe/internal/logger"
	"github.com/tantran2612/vidscribe/pkg/executor"
)

type implAcquirer struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Acquirer instance backed by the yt-dlp binary.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Acquirer {
	return &implAcquirer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
