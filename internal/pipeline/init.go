// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-coder/pkg/types"
)

// Default input file names.
const (
	DefaultPaperFile  = "paper.json"
	DefaultConfigFile = "config.yaml"
)

//go:embed samples/paper.json
var samplePaper []byte

// DefaultConfigYAML returns the default configuration encoded as YAML.
func DefaultConfigYAML() ([]byte, error) {
	data, err := yaml.Marshal(types.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("marshaling default config: %w", err)
	}
	return data, nil
}

// InitWorkspace writes a default config.yaml and a sample paper.json into
// dir. Existing files are left untouched. It returns the paths it created.
func InitWorkspace(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	cfgData, err := DefaultConfigYAML()
	if err != nil {
		return nil, err
	}

	var created []string
	for _, f := range []struct {
		name string
		data []byte
	}{
		{DefaultConfigFile, cfgData},
		{DefaultPaperFile, samplePaper},
	} {
		path := filepath.Join(dir, f.name)
		ok, err := writeIfAbsent(path, f.data)
		if err != nil {
			return created, err
		}
		if ok {
			created = append(created, path)
		}
	}
	return created, nil
}

// writeIfAbsent creates path with data unless it already exists.
func writeIfAbsent(path string, data []byte) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing %s: %w", path, err)
	}
	return true, nil
}
