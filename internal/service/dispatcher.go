package service

import (
	"file-converter/internal/domain"
)

// boundPair is the extractor/renderer tuple a conversion resolves to.
type boundPair struct {
	extractor domain.Extractor
	renderer  domain.Renderer
}

// Dispatcher resolves (source, target) format pairs to their bound
// extractor and renderer. The pair table is populated once at
// construction and read-only afterwards; absence of an entry is a
// first-class "not implemented" failure, distinct from identical or
// unrecognized formats. Pairs are never inferred transitively.
type Dispatcher struct {
	pairs  map[domain.ConversionPair]boundPair
	logger domain.Logger
}

// NewDispatcher builds a dispatcher with an empty pair table.
func NewDispatcher(logger domain.Logger) *Dispatcher {
	return &Dispatcher{
		pairs:  make(map[domain.ConversionPair]boundPair),
		logger: logger,
	}
}

// Register binds an extractor/renderer tuple to one (source, target) pair.
func (d *Dispatcher) Register(source, target domain.Format, extractor domain.Extractor, renderer domain.Renderer) {
	d.pairs[domain.ConversionPair{Source: source, Target: target}] = boundPair{
		extractor: extractor,
		renderer:  renderer,
	}
}

// Resolve validates the pair and returns its bound extractor and
// renderer. Order of checks: unknown target, identical formats, then
// table lookup.
func (d *Dispatcher) Resolve(source, target domain.Format) (domain.Extractor, domain.Renderer, error) {
	if _, ok := domain.LookupFormat(string(target)); !ok {
		return nil, nil, domain.NewTargetUnsupportedError(string(target))
	}
	if source == target {
		return nil, nil, domain.NewIdenticalFormatsError(source)
	}
	bound, ok := d.pairs[domain.ConversionPair{Source: source, Target: target}]
	if !ok {
		return nil, nil, domain.NewPathNotImplementedError(source, target)
	}
	return bound.extractor, bound.renderer, nil
}

// SupportedPairs returns the registered pairs. Intended for startup
// logging and tests.
func (d *Dispatcher) SupportedPairs() []domain.ConversionPair {
	out := make([]domain.ConversionPair, 0, len(d.pairs))
	for pair := range d.pairs {
		out = append(out, pair)
	}
	return out
}

// NewDefaultDispatcher builds the production pair table: every source
// format converts to every other format, 20 pairs in total. Each entry
// is explicit so "not implemented" stays a testable case rather than a
// reflection failure.
func NewDefaultDispatcher(logger domain.Logger) *Dispatcher {
	extractors := map[domain.Format]domain.Extractor{
		domain.FormatPDF:   NewPDFExtractor(logger),
		domain.FormatExcel: NewExcelExtractor(logger),
		domain.FormatCSV:   NewCSVExtractor(logger),
		domain.FormatWord:  NewWordExtractor(logger),
		domain.FormatTXT:   NewTextExtractor(logger),
	}
	renderers := map[domain.Format]domain.Renderer{
		domain.FormatPDF:   NewPDFRenderer(logger),
		domain.FormatExcel: NewExcelRenderer(logger),
		domain.FormatCSV:   NewCSVRenderer(logger),
		domain.FormatWord:  NewWordRenderer(logger),
		domain.FormatTXT:   NewTextRenderer(logger),
	}

	d := NewDispatcher(logger)
	for _, src := range domain.AllFormats() {
		for _, dst := range domain.AllFormats() {
			if src.Name == dst.Name {
				continue
			}
			d.Register(src.Name, dst.Name, extractors[src.Name], renderers[dst.Name])
		}
	}
	return d
}
