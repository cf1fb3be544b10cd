package config

import "strings"

// DescriptionFileExtensions are all recognized comprehension description
// file extensions.
var DescriptionFileExtensions = []string{".forc.yaml", ".forc.yml", ".yaml", ".yml"}

// IsDescriptionFile reports whether path carries a recognized description
// file extension.
func IsDescriptionFile(path string) bool {
	for _, ext := range DescriptionFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// DefaultMaxClauses bounds the clause count of a single comprehension.
// Rewriting recurses once per clause, so this also bounds recursion depth.
const DefaultMaxClauses = 10000

// Combinator method names used in rendered output
const (
	MapMethodName        = "map"
	FlatMapMethodName    = "flatMap"
	WithFilterMethodName = "withFilter"
)

// Synthetic name hints passed to the fresh-name supply
const (
	ExecNameHint  = "e"
	TupleNameHint = "t"
)

// SyntheticNamePrefix marks names invented by the rewriter. Surface
// identifiers can never start with it.
const SyntheticNamePrefix = "$"
