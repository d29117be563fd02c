package placid

import (
	"os"

	"github.com/placidjson/placid/logging"
)

// Load decodes JSON from src, which may be either a path to an existing file
// or literal JSON text. When src names a regular file its contents are read
// whole; otherwise src itself is parsed. Errors follow Unmarshal semantics.
func Load(src string, v interface{}) error {
	data := []byte(src)
	if fi, err := os.Stat(src); err == nil && fi.Mode().IsRegular() {
		if b, err := os.ReadFile(src); err == nil {
			data = b
		}
	}
	return Unmarshal(data, v)
}

// SaveOption adjusts how Save renders and reports.
type SaveOption func(*saveConfig)

type saveConfig struct {
	marshal []MarshalOption
	indent  bool
	logger  logging.Logger
}

// WithIndent writes the tab-indented form instead of compact text.
func WithIndent() SaveOption {
	return func(c *saveConfig) {
		c.indent = true
	}
}

// WithNulls emits absent aggregate members.
func WithNulls() SaveOption {
	return func(c *saveConfig) {
		c.marshal = append(c.marshal, IncludeNulls())
	}
}

// WithLogger reports write failures to the given logger.
func WithLogger(l logging.Logger) SaveOption {
	return func(c *saveConfig) {
		c.logger = l
	}
}

// Save writes v as JSON text to path, replacing any existing file. It
// reports success as a boolean; there is no partial-write recovery.
func Save(path string, v interface{}, opts ...SaveOption) bool {
	cfg := saveConfig{logger: logging.Noop{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := Marshal(v, cfg.marshal...)
	if cfg.indent {
		out = Indent(out)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		cfg.logger.Logf(logging.Warn, "failed to write %s, %v", path, err)
		return false
	}
	return true
}
