package intake

import (
	"github.com/tantran2612/vidscribe/internal/composer"
	"github.com/tantran2612/vidscribe/internal/export"
	"github.com/tantran2612/vidscribe/internal/logger"
	"github.com/tantran2612/vidscribe/internal/transcriber"
)

type implProcessor struct {
	transcriber transcriber.Transcriber
	composer    composer.Composer
	exporter    export.Exporter
	outputDir   string
	logger      logger.Logger
}

// New creates a Processor writing results and processed sources into outputDir.
func New(tr transcriber.Transcriber, comp composer.Composer, exp export.Exporter, outputDir string, log logger.Logger) Processor {
	return &implProcessor{
		transcriber: tr,
		composer:    comp,
		exporter:    exp,
		outputDir:   outputDir,
		logger:      log,
	}
}
