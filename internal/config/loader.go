package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/options"
)

// Loader reads preset files into option layers.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new Loader. A nil logger discards output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// Load reads the preset at path and returns it as the lowest-precedence
// options layer. A preset implies a non-interactive run unless it sets
// nonInteractive itself.
func (l *Loader) Load(path string) (options.Partial, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return options.Partial{}, fmt.Errorf("%s: %w", path, ErrPresetNotFound)
		}
		return options.Partial{}, fmt.Errorf("read preset %s: %w", path, err)
	}

	preset, err := Parse(data)
	if err != nil {
		return options.Partial{}, fmt.Errorf("preset %s: %w", path, err)
	}

	partial := preset.ToPartial()
	if partial.NonInteractive == nil {
		partial.NonInteractive = options.Ptr(true)
	}

	l.logger.Debug("preset loaded", "path", path, "features", partial.HasFeatureSelection())
	return partial, nil
}

// Parse decodes a preset document (JSON or YAML) and validates it.
// An empty document yields an empty preset.
func Parse(data []byte) (*Preset, error) {
	var p Preset
	if len(bytes.TrimSpace(data)) == 0 {
		return &p, nil
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
