// Package discover walks a project tree and collects the configuration
// files to validate, grouped by config kind.
//
// Discovery rules differ per kind: devcontainer and Tailwind files are
// collected at any depth, ESLint configs only at the project root (nested
// eslintrc files are a legitimate ESLint feature for per-directory
// overrides and are not the tool's business). Dependency directories
// (node_modules, vendor, ...) are always skipped.
//
// Results are deduplicated and sorted per kind so scan output is
// deterministic and reproducible.
package discover
