// Package validator implements the per-kind structural validators.
//
// Each config kind (devcontainer, tailwind, eslint) has one independent
// validation function that inspects a single file's content (and, for
// ESLint, its filename) and returns structured findings. Structural
// validation is self-contained: it checks presence, type, and shape of
// required fields without consulting the external rule set.
//
// devcontainer.json files are parsed as JSONC (the devcontainer spec
// officially allows comments) via github.com/tidwall/jsonc. Tailwind
// validation is purely textual. ESLint validation is filename-based with
// syntax checks for the JSON and YAML legacy formats.
package validator
