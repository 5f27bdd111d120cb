package jit

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type dumpConfig struct {
	color    bool
	colorSet bool
}

// DumpOption configures DumpDisassembly.
type DumpOption func(*dumpConfig)

// WithColor forces label coloring on or off. Without this option, color is
// enabled only when the destination is a terminal.
func WithColor(enabled bool) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.color = enabled
		cfg.colorSet = true
	}
}

func newDumpConfig(w io.Writer, opts []DumpOption) *dumpConfig {
	cfg := &dumpConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.colorSet {
		if f, isFile := w.(*os.File); isFile {
			cfg.color = isatty.IsTerminal(f.Fd())
		}
	}
	return cfg
}
