package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"file-converter/internal/domain"
)

// DocumentConverter runs the conversion pipeline: detect the source
// format, resolve the pair, stage the upload, extract, render, and
// assemble the download. The staged file is released on every exit
// path.
type DocumentConverter struct {
	dispatcher *Dispatcher
	stager     domain.Stager
	logger     domain.Logger
}

// NewDocumentConverter creates a new document conversion service
func NewDocumentConverter(dispatcher *Dispatcher, stager domain.Stager, logger domain.Logger) *DocumentConverter {
	return &DocumentConverter{
		dispatcher: dispatcher,
		stager:     stager,
		logger:     logger,
	}
}

// Convert transforms the uploaded content into the target format.
// Validation failures (unrecognized source, unsupported or identical
// target, unregistered pair) are detected before any bytes are staged.
func (s *DocumentConverter) Convert(ctx context.Context, originalName string, content io.Reader, targetName string) (*domain.ConversionResult, error) {
	source, err := DetectFormat(originalName)
	if err != nil {
		s.logger.Warn("source format not recognized", "filename", originalName)
		return nil, err
	}

	target, err := ParseTargetFormat(targetName)
	if err != nil {
		s.logger.Warn("target format not supported", "target", targetName)
		return nil, err
	}

	extractor, renderer, err := s.dispatcher.Resolve(source, target)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, domain.NewStagingError(err)
	}

	staged, err := s.stager.Stage(originalName, content)
	if err != nil {
		return nil, err
	}
	defer s.stager.Release(staged)

	s.logger.Info("converting document",
		"file_id", staged.ID,
		"source", string(source),
		"target", string(target),
	)

	doc, err := extractor.Extract(staged)
	if err != nil {
		s.logger.Error("extraction failed", err, "file_id", staged.ID, "source", string(source))
		return nil, err
	}

	rendered, err := renderer.Render(doc)
	if err != nil {
		s.logger.Error("rendering failed", err, "file_id", staged.ID, "target", string(target))
		return nil, err
	}

	return &domain.ConversionResult{
		Bytes:     rendered,
		MediaType: target.MediaType(),
		Filename:  convertedFilename(originalName, target),
	}, nil
}

// convertedFilename derives the download name: the original base name
// with a "_converted" suffix and the target format's canonical
// extension.
func convertedFilename(originalName string, target domain.Format) string {
	base := filepath.Base(strings.TrimSpace(originalName))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "document"
	}
	return base + "_converted" + target.Info().OutputExt
}
