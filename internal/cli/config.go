package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/skeletrack/editor"
	"github.com/katalvlaran/skeletrack/topology"
	"github.com/katalvlaran/skeletrack/track"
)

// errConfigFormat is returned for a config file that is neither YAML nor TOML.
var errConfigFormat = errors.New("config: unsupported file extension")

// Config holds engine settings shared by all commands. Zero values select
// the library defaults.
type Config struct {
	// SpecialCasePasses caps the special-case scans of the classifier.
	SpecialCasePasses int `yaml:"special_case_passes" toml:"special_case_passes"`
	// Radius is the path search radius; nil keeps the maximum.
	Radius *int `yaml:"radius" toml:"radius"`
	// PruneIterations caps dead-end pruning per frame.
	PruneIterations int `yaml:"prune_iterations" toml:"prune_iterations"`
	// MaxDisplacement bounds junction movement between frames.
	MaxDisplacement float64 `yaml:"max_displacement" toml:"max_displacement"`
	// Mode is "node" or "segment".
	Mode string `yaml:"mode" toml:"mode"`
	// Format is the output encoding, "yaml" or "json".
	Format string `yaml:"format" toml:"format"`
	// Workers bounds the frames processed in parallel.
	Workers int `yaml:"workers" toml:"workers"`
}

func defaultConfig() Config {
	return Config{Mode: "node", Format: formatYAML, Workers: runtime.NumCPU()}
}

// loadConfig reads path over the defaults. The format follows the
// extension: .yaml/.yml or .toml. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %s", errConfigFormat, path)
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := track.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Format != formatYAML && c.Format != formatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, formatYAML, formatJSON)
	}
	return nil
}

func (c Config) classifyOptions(l *log.Logger, frame int) []topology.Option {
	opts := []topology.Option{topology.WithLogger(l), topology.WithFrame(frame)}
	if c.SpecialCasePasses > 0 {
		opts = append(opts, topology.WithMaxSpecialCasePasses(c.SpecialCasePasses))
	}
	return opts
}

func (c Config) editorOptions(l *log.Logger, frame int) []editor.Option {
	opts := []editor.Option{
		editor.WithLogger(l),
		editor.WithMaxIterations(c.PruneIterations),
		editor.WithClassifyOptions(c.classifyOptions(l, frame)...),
	}
	if c.Radius != nil {
		opts = append(opts, editor.WithRadius(*c.Radius))
	}
	return opts
}

func (c Config) trackOptions(l *log.Logger) ([]track.Option, error) {
	mode, err := track.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	opts := []track.Option{
		track.WithLogger(l),
		track.WithMode(mode),
		track.WithMaxDisplacement(c.MaxDisplacement),
	}
	if c.SpecialCasePasses > 0 {
		opts = append(opts, track.WithClassifyOptions(topology.WithMaxSpecialCasePasses(c.SpecialCasePasses)))
	}
	if c.Radius != nil {
		opts = append(opts, track.WithEditorOptions(editor.WithRadius(*c.Radius)))
	}
	return opts, nil
}
