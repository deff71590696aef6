package pipeline

import (
	"github.com/tantran2612/vidscribe/internal/acquirer"
	"github.com/tantran2612/vidscribe/internal/composer"
	"github.com/tantran2612/vidscribe/internal/logger"
	"github.com/tantran2612/vidscribe/internal/transcriber"
)

type implPipeline struct {
	acquirer    acquirer.Acquirer
	transcriber transcriber.Transcriber
	composer    composer.Composer
	logger      logger.Logger
}

// New creates a Pipeline from its three collaborators.
func New(acq acquirer.Acquirer, tr transcriber.Transcriber, comp composer.Composer, log logger.Logger) Pipeline {
	return &implPipeline{
		acquirer:    acq,
		transcriber: tr,
		composer:    comp,
		logger:      log,
	}
}
