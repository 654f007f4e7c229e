// Package config manages texpack configuration.
//
// Configuration includes the shared-dependency root name, the manifest
// filename, the output directory, and the extension probe order. Defaults
// match the layout of a standard template repository and can be overridden
// by a texpack.yaml file at the project root or, for the output directory,
// the TEXPACK_OUTPUT environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional project configuration file looked up at the
// project root.
const FileName = "texpack.yaml"

// Config carries the process-wide settings consumed by the resolver,
// classifier, and engine. They are passed explicitly rather than read from
// globals so the core stays independently testable.
type Config struct {
	// SharedRoot is the name of the project-level directory holding
	// dependencies shared across templates.
	SharedRoot string `yaml:"shared_root"`

	// ManifestName is the filename of the per-directory manifest record.
	ManifestName string `yaml:"manifest_name"`

	// OutputDir is the directory (relative to the project root) that
	// receives the generated release units. It is destroyed and recreated
	// on every run.
	OutputDir string `yaml:"output_dir"`

	// Extensions is the ordered probe list tried when a declared
	// dependency path does not exist as written.
	Extensions []string `yaml:"extensions"`

	// EntryExtensions is the ordered extension list used to locate a
	// template's entry file.
	EntryExtensions []string `yaml:"entry_extensions"`

	// Ancillary lists filenames copied verbatim from the template
	// directory into the release root when present.
	Ancillary []string `yaml:"ancillary"`

	// TestFile is the ancillary file that also gets its references
	// rewritten, like the entry file.
	TestFile string `yaml:"test_file"`

	// SkipDirs lists directory names excluded from manifest discovery.
	SkipDirs []string `yaml:"skip_dirs"`
}

// Default returns the configuration for a standard template repository.
func Default() *Config {
	return &Config{
		SharedRoot:      "common",
		ManifestName:    "manifest.json",
		OutputDir:       "releases",
		Extensions:      []string{".tex", ".cls", ".sty", ".png", ".jpg", ".pdf", ".bib"},
		EntryExtensions: []string{".tex", ".cls", ".sty"},
		Ancillary:       []string{"README.md", "test.tex"},
		TestFile:        "test.tex",
		SkipDirs:        []string{".git"},
	}
}

// Load returns the configuration for the project at root. Defaults apply
// for any field the project's texpack.yaml does not set; a missing file is
// not an error. TEXPACK_OUTPUT overrides the output directory last.
func Load(root string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if out := os.Getenv("TEXPACK_OUTPUT"); out != "" {
		cfg.OutputDir = out
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SharedRoot == "" {
		return fmt.Errorf("shared_root must not be empty")
	}
	if c.ManifestName == "" {
		return fmt.Errorf("manifest_name must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	return nil
}
