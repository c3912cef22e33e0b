package discover

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/itsflippen-dev/framework-intelligence/internal/model"
)

// skipDirs are dependency and VCS directories that never contain
// project-owned configuration worth validating.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	".git":         true,
	"dist":         true,
}

// tailwindConfigNames are the Tailwind config filenames collected at any depth.
var tailwindConfigNames = map[string]bool{
	"tailwind.config.js":  true,
	"tailwind.config.ts":  true,
	"tailwind.config.mjs": true,
}

// ConfigFiles holds the discovered paths per kind, each slice deduplicated
// and sorted. Paths are relative to the scanned root.
type ConfigFiles struct {
	// Root is the absolute path of the scanned project root.
	Root string

	// ByKind maps each config kind to its discovered relative paths.
	ByKind map[model.ConfigKind][]string

	// Warnings lists subtrees that could not be read during the walk.
	// Walk errors are not fatal: the rest of the tree is still scanned.
	Warnings []string
}

// Kinds returns the config kinds in fixed report order.
func Kinds() []model.ConfigKind {
	return []model.ConfigKind{model.KindDevcontainer, model.KindTailwind, model.KindESLint}
}

// FindConfigFiles walks the project tree once and collects every
// configuration file to validate.
//
// Collected per kind:
//   - devcontainer: files named devcontainer.json or .devcontainer.json at
//     any depth, plus any *.json under a tools/devcontainer/ directory
//   - tailwind: tailwind.config.{js,ts,mjs} at any depth
//   - eslint: root-level files named .eslintrc* or eslint.config.*
//
// Returns a CLIError with ExitGeneralError only when the root itself
// cannot be resolved or read; errors inside the tree are recorded as
// warnings and skipped.
func FindConfigFiles(root string) (*ConfigFiles, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "could not resolve project root", err)
	}

	found := &ConfigFiles{
		Root:   absRoot,
		ByKind: make(map[model.ConfigKind][]string, 3),
	}
	seen := make(map[string]bool)

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			// Unreadable subtree: note it and move on.
			found.Warnings = append(found.Warnings, "could not read "+path+": "+err.Error())
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)
		if seen[rel] {
			return nil
		}

		if kind, ok := classify(rel, d.Name()); ok {
			seen[rel] = true
			found.ByKind[kind] = append(found.ByKind[kind], rel)
		}
		return nil
	})
	if walkErr != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "could not read project root "+absRoot, walkErr)
	}

	for kind := range found.ByKind {
		sort.Strings(found.ByKind[kind])
	}

	return found, nil
}

// classify decides whether a file belongs to a config kind. rel is the
// slash-separated path relative to the scanned root.
func classify(rel, name string) (model.ConfigKind, bool) {
	switch {
	case name == "devcontainer.json" || name == ".devcontainer.json":
		return model.KindDevcontainer, true

	case strings.HasSuffix(name, ".json") && inToolsDevcontainerDir(rel):
		return model.KindDevcontainer, true

	case tailwindConfigNames[name]:
		return model.KindTailwind, true
	}

	// ESLint configs count only at the project root: nested eslintrc
	// files are per-directory overrides, not project configuration.
	if !strings.Contains(rel, "/") {
		if strings.HasPrefix(name, ".eslintrc") || strings.HasPrefix(name, "eslint.config.") {
			return model.KindESLint, true
		}
	}

	return "", false
}

// inToolsDevcontainerDir reports whether rel sits directly inside a
// tools/devcontainer/ directory (at any depth).
func inToolsDevcontainerDir(rel string) bool {
	dir := filepath.ToSlash(filepath.Dir(rel))
	return dir == "tools/devcontainer" || strings.HasSuffix(dir, "/tools/devcontainer")
}
