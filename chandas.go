// Package chandas identifies the meter of classical Sanskrit verse. A
// verse is scanned into light and heavy syllables, split into four pādas
// and tested against catalogues of syllable-counted and mora-counted
// meters; when the pāda breaks of the input are unreliable the breaks are
// searched for the best-scoring segmentation.
package chandas

import (
	"log/slog"

	"github.com/cours-de-latin/chandas/internal/scansion"
)

// Identifier holds the catalogue and collaborators and provides the
// public API. It is safe for concurrent use.
type Identifier struct {
	catalog    *Catalog
	classifier *Classifier
	scanner    Scanner
	logger     *slog.Logger

	// workers bounds concurrent search trials; see SearchOptions.Workers.
	workers   int
	pinMiddle bool
	mode      Mode
}

// Option configures an Identifier.
type Option func(*Identifier)

// WithCatalog replaces the built-in catalogue.
func WithCatalog(c *Catalog) Option {
	return func(id *Identifier) { id.catalog = c }
}

// WithScanner replaces the default scansion.
func WithScanner(s Scanner) Option {
	return func(id *Identifier) { id.scanner = s }
}

// WithLogger sets the logger for search statistics.
func WithLogger(l *slog.Logger) Option {
	return func(id *Identifier) { id.logger = l }
}

// WithWorkers sets the number of concurrent search trials.
func WithWorkers(n int) Option {
	return func(id *Identifier) { id.workers = n }
}

// WithPinMiddle keeps the middle pāda break fixed in light resplitting.
func WithPinMiddle(pin bool) Option {
	return func(id *Identifier) { id.pinMiddle = pin }
}

// WithDefaultMode sets the mode used when Identify is called with an
// empty mode.
func WithDefaultMode(m Mode) Option {
	return func(id *Identifier) { id.mode = m }
}

// New returns a ready-to-use Identifier. Without options it uses the
// built-in catalogue, the default scansion and ModeNone.
func New(opts ...Option) *Identifier {
	id := &Identifier{
		scanner: scansion.New(),
		logger:  slog.New(slog.DiscardHandler),
		workers: 1,
		mode:    ModeNone,
	}
	for _, opt := range opts {
		opt(id)
	}
	if id.catalog == nil {
		id.catalog = DefaultCatalog()
	}
	id.classifier = NewClassifier(id.catalog)
	return id
}

// Catalog returns the catalogue in use.
func (id *Identifier) Catalog() *Catalog {
	return id.catalog
}

// Classifier returns the test battery in use.
func (id *Identifier) Classifier() *Classifier {
	return id.classifier
}

// DefaultMode returns the mode used for an empty mode argument.
func (id *Identifier) DefaultMode() Mode {
	return id.mode
}
