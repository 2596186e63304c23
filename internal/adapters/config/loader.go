// Package config provides the configuration loader for lume.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file searched for upward from the working
// directory.
const FileName = "lume.yaml"

// supportedVersion is the only accepted config schema version. An absent
// version is treated as the current one.
const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load searches for lume.yaml from cwd upward and resolves the options.
// When no file exists anywhere on the path, the defaults apply.
func (l *Loader) Load(cwd string) (domain.Options, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		return domain.DefaultOptions(), nil
	}

	raw, err := os.ReadFile(configPath) // #nosec G304 -- discovered relative to cwd
	if err != nil {
		return domain.Options{}, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", configPath)
	}

	var file Lumefile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return domain.Options{}, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", configPath)
	}

	opts, err := resolve(file)
	if err != nil {
		return domain.Options{}, zerr.With(err, "path", configPath)
	}

	l.Logger.Info(fmt.Sprintf("Loaded configuration from %s", configPath))
	return opts, nil
}

// findConfiguration walks from cwd to the filesystem root looking for the
// nearest config file.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// resolve merges the file over the defaults and validates the result.
func resolve(file Lumefile) (domain.Options, error) {
	if file.Version != "" && file.Version != supportedVersion {
		return domain.Options{}, zerr.With(domain.ErrConfigInvalid, "version", file.Version)
	}

	opts := domain.DefaultOptions()
	opts.LibraryPath = file.Library

	if c := file.Clustering; c != nil {
		if c.TimeGapMinutes != nil {
			opts.TimeGapMinutes = *c.TimeGapMinutes
		}
		if c.MinClusterSize != nil {
			opts.MinClusterSize = *c.MinClusterSize
		}
		if c.Timezone != nil {
			loc, err := time.LoadLocation(*c.Timezone)
			if err != nil {
				return domain.Options{}, zerr.With(domain.ErrConfigInvalid, "timezone", *c.Timezone)
			}
			opts.Location = loc
		}
	}

	if f := file.Fetch; f != nil {
		if f.MaxWorkingSet != nil {
			opts.MaxWorkingSet = *f.MaxWorkingSet
		}
		if f.PageSize != nil {
			opts.PageSize = *f.PageSize
		}
		if f.MomentPaddingSeconds != nil {
			opts.MomentPadding = time.Duration(*f.MomentPaddingSeconds) * time.Second
		}
	}

	if err := validate(opts); err != nil {
		return domain.Options{}, err
	}
	return opts, nil
}

func validate(opts domain.Options) error {
	checks := []struct {
		name  string
		value int
	}{
		{"clustering.timeGapMinutes", opts.TimeGapMinutes},
		{"clustering.minClusterSize", opts.MinClusterSize},
		{"fetch.maxWorkingSet", opts.MaxWorkingSet},
		{"fetch.pageSize", opts.PageSize},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return zerr.With(zerr.With(domain.ErrConfigInvalid, "field", c.name), "value", c.value)
		}
	}
	if opts.MomentPadding < 0 {
		return zerr.With(domain.ErrConfigInvalid, "field", "fetch.momentPaddingSeconds")
	}
	return nil
}
