package model

// Section groups the file results for one config kind, in discovery order.
type Section struct {
	// Kind is the config family this section covers.
	Kind ConfigKind `json:"kind"`

	// Results holds one entry per discovered file, sorted by path.
	Results []FileResult `json:"results"`
}

// Report is the complete outcome of one scan. It is assembled by the
// driver and handed to the renderer; nothing in it is mutated afterwards.
type Report struct {
	// Root is the absolute path of the scanned project root.
	Root string `json:"root"`

	// RulesVersion is the version string of the loaded intelligence file,
	// or "unknown" when it was absent or carried no version.
	RulesVersion string `json:"rulesVersion"`

	// RuleCount is the number of flattened deprecated-pattern rules.
	RuleCount int `json:"ruleCount"`

	// LoadWarning explains a degraded rules load (missing/malformed file).
	// Empty when the rules file loaded cleanly.
	LoadWarning string `json:"loadWarning,omitempty"`

	// ScanWarnings lists unreadable subtrees skipped during discovery.
	ScanWarnings []string `json:"scanWarnings,omitempty"`

	// Sections holds per-kind results in fixed report order. Kinds with
	// no discovered files are omitted.
	Sections []Section `json:"sections"`

	// Summary aggregates the counters used for the exit-code decision.
	Summary Summary `json:"summary"`
}
