// Package intelligence loads the framework intelligence rules file and
// turns it into flat deprecated-pattern rules that can be matched against
// raw configuration file contents.
//
// The rules file (.framework-intelligence.json) is a trusted, opaque JSON
// document with arbitrary nesting under its "intelligence" key. Any node at
// any depth may carry a "deprecatedPatterns" map; each entry there becomes
// one model.Rule tagged with the dotted path of its ancestor categories.
//
// The file may contain JSONC comments (stripped via github.com/tidwall/jsonc
// before parsing). Loading is deliberately forgiving: a missing, unreadable,
// or malformed rules file degrades to an empty rule set with a warning,
// because the absence of rules must never block structural validation.
package intelligence
