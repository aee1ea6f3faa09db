// Package config loads the docindex configuration for one invocation.
//
// Configuration is merged from three sources, highest priority first: the
// "docindex" object of package.json, the rc file, and built-in defaults.
// Configuration problems are never fatal; a source that cannot be parsed
// is skipped.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"docindex/internal/jsonc"
	"docindex/internal/logger"
	"docindex/schemas"
)

// RCFile is the standalone configuration file name, resolved against the
// repository root. Comments and trailing commas are tolerated.
const RCFile = ".docindexrc.json"

// manifestFile is the project manifest whose "docindex" key may hold the
// same configuration object as the rc file.
const manifestFile = "package.json"

// Config controls which files are indexed and where new rows land.
// IndexFile and DocsDir are relative to the repository root; Exclude
// entries are relative to DocsDir.
type Config struct {
	IndexFile     string
	DocsDir       string
	Exclude       []string
	Sentinel      string
	AllowedRootMd []string
	WarnRootMd    bool
}

// overlay is one configuration source. Pointer fields distinguish "not
// present" from zero values so sources merge field by field.
type overlay struct {
	IndexFile     *string   `json:"indexFile"`
	DocsDir       *string   `json:"docsDir"`
	Exclude       *[]string `json:"exclude"`
	Sentinel      *string   `json:"sentinel"`
	AllowedRootMd *[]string `json:"allowedRootMd"`
	WarnRootMd    *bool     `json:"warnRootMd"`
}

// Default returns the built-in configuration. README.md is excluded by
// default because the index table itself lives in docs/README.md.
func Default() Config {
	return Config{
		IndexFile: "docs/README.md",
		DocsDir:   "docs",
		Exclude:   []string{"archive/", "README.md"},
		Sentinel:  "| [archive/]",
		AllowedRootMd: []string{
			"README.md",
			"CONTRIBUTING.md",
			"CHANGELOG.md",
			"LICENSE.md",
			"CODE_OF_CONDUCT.md",
			"SECURITY.md",
			"AGENTS.md",
			"CLAUDE.md",
		},
		WarnRootMd: true,
	}
}

// Load returns the effective configuration for a repository. Never fails:
// malformed or missing sources fall back to the remaining ones.
func Load(root string) Config {
	cfg := Default()
	if o, ok := loadRC(root); ok {
		cfg.apply(o)
	}
	if o, ok := loadManifest(root); ok {
		cfg.apply(o)
	}
	return cfg
}

func (c *Config) apply(o overlay) {
	if o.IndexFile != nil {
		c.IndexFile = *o.IndexFile
	}
	if o.DocsDir != nil {
		c.DocsDir = *o.DocsDir
	}
	if o.Exclude != nil {
		c.Exclude = *o.Exclude
	}
	if o.Sentinel != nil {
		c.Sentinel = *o.Sentinel
	}
	if o.AllowedRootMd != nil {
		c.AllowedRootMd = *o.AllowedRootMd
	}
	if o.WarnRootMd != nil {
		c.WarnRootMd = *o.WarnRootMd
	}
}

func loadRC(root string) (overlay, bool) {
	path := filepath.Join(root, RCFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return overlay{}, false
	}
	clean := jsonc.Clean(data)
	if err := schemas.ValidateRC(clean); err != nil {
		logger.Warn("%s: %v", RCFile, err)
	}
	var o overlay
	if err := jsonc.Decode(data, &o); err != nil {
		logger.Debug("ignoring malformed %s: %v", RCFile, err)
		return overlay{}, false
	}
	return o, true
}

func loadManifest(root string) (overlay, bool) {
	data, err := os.ReadFile(filepath.Join(root, manifestFile))
	if err != nil {
		return overlay{}, false
	}
	var manifest struct {
		Docindex *overlay `json:"docindex"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		logger.Debug("ignoring malformed %s: %v", manifestFile, err)
		return overlay{}, false
	}
	if manifest.Docindex == nil {
		return overlay{}, false
	}
	return *manifest.Docindex, true
}
