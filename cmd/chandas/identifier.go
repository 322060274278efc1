package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cours-de-latin/chandas"
	"github.com/cours-de-latin/chandas/internal/config"
	"github.com/cours-de-latin/chandas/internal/logging"
	"github.com/cours-de-latin/chandas/internal/translit"
)

// newIdentifier builds an identifier from the persistent flags. Logs go
// to stderr as text.
func (o *options) newIdentifier(stderr io.Writer) (*chandas.Identifier, chandas.Mode, error) {
	mode, err := chandas.ParseMode(o.resplit)
	if err != nil {
		return nil, "", err
	}
	if _, err := translit.ParseScheme(o.scheme); err != nil {
		return nil, "", err
	}
	if o.workers < 0 {
		return nil, "", fmt.Errorf("--workers must be >= 0, got %d", o.workers)
	}

	logger := logging.NewWriter(stderr, config.LogConfig{Level: o.logLevel, Format: "text"})
	opts := []chandas.Option{
		chandas.WithLogger(logger),
		chandas.WithWorkers(o.workers),
		chandas.WithPinMiddle(o.pin),
		chandas.WithDefaultMode(mode),
	}
	if o.catalog != "" {
		c, err := chandas.LoadCatalog(o.catalog)
		if err != nil {
			return nil, "", err
		}
		opts = append(opts, chandas.WithCatalog(c))
	}
	return chandas.New(opts...), mode, nil
}

// readInput reads the named file, or in when the name is empty or "-".
func readInput(in io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}
