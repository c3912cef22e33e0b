package intelligence

import (
	"errors"
	"fmt"
	"os"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/tidwall/jsonc"
)

// DefaultFileName is the rules file looked up in the project root when no
// explicit path is given.
const DefaultFileName = ".framework-intelligence.json"

// Intelligence is the loaded rule document. A zero-rule Intelligence with a
// non-empty LoadWarning is returned for every load failure — callers never
// need to handle an error path.
type Intelligence struct {
	// Version is the document's top-level "version" string, or "unknown"
	// when absent.
	Version string

	// Tree is the raw "intelligence" subtree (arbitrary nested mapping).
	// Nil when the file was missing or malformed.
	Tree map[string]interface{}

	// LoadWarning describes why loading degraded to an empty rule set.
	// Empty on a successful load.
	LoadWarning string
}

// Empty reports whether no rule tree was loaded.
func (i *Intelligence) Empty() bool {
	return len(i.Tree) == 0
}

// Load reads and parses the framework intelligence file at path.
//
// The document is read as JSONC (comments and trailing commas stripped)
// and then loaded through koanf, which gives us the top-level "version"
// lookup and the nested "intelligence" subtree as a map.
//
// All failure modes are recoverable by design: the returned Intelligence
// carries a LoadWarning instead of an error, and structural validation
// proceeds with zero deprecated-pattern rules.
func Load(path string) *Intelligence {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Intelligence{
				Version:     "unknown",
				LoadWarning: fmt.Sprintf("framework intelligence file not found at %s", path),
			}
		}
		return &Intelligence{
			Version:     "unknown",
			LoadWarning: fmt.Sprintf("could not read framework intelligence file: %v", err),
		}
	}

	// Strip JSONC comments before handing the bytes to the JSON parser.
	// The rules file is maintained by hand and frequently carries comments.
	clean := jsonc.ToJSON(data)

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(clean), kjson.Parser()); err != nil {
		return &Intelligence{
			Version:     "unknown",
			LoadWarning: fmt.Sprintf("invalid JSON in framework intelligence file: %v", err),
		}
	}

	version := k.String("version")
	if version == "" {
		version = "unknown"
	}

	// The intelligence subtree is optional; a rules file without it simply
	// contributes no deprecated-pattern rules.
	tree, _ := k.Get("intelligence").(map[string]interface{})

	return &Intelligence{
		Version: version,
		Tree:    tree,
	}
}
