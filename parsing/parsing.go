// Package parsing implements a composable, condition-gated regex-matching
// cascade that decomposes unstructured text into named fields.
//
// A parse tree is built once from static pattern tables and is immutable
// afterwards; Parse calls are read-only and safe for concurrent use. All
// runtime failures collapse to an absent result: a parse either produces a
// complete-for-its-pattern capture map or nothing.
//
// As an example, a tree for Brazilian street addresses turns
//
//	Avenida Mem de Sá, 1234 apto 12 1 andar referência: foo
//
// into
//
//	STREET_NAME:  Avenida Mem de Sá
//	HOUSE_NUMBER: 1234
//	APT:          apto 12
//	FLOOR:        1
//	LANDMARK:     foo
package parsing

import (
	"fmt"

	"address_parser/regexengine"
)

// Captures maps capture-group names to the substrings they matched.
type Captures map[string]string

// Get returns the capture for name, or defaultVal when it is absent or empty.
func (c Captures) Get(name, defaultVal string) string {
	if v, ok := c[name]; ok && v != "" {
		return v
	}
	return defaultVal
}

// Kind discriminates the node variants of a parse tree.
type Kind uint8

const (
	// KindDecomposition matches the whole input (modulo anchoring flags)
	// against a single pattern and returns its captures.
	KindDecomposition Kind = iota

	// KindCascade tries its children in order and returns the first present
	// result, optionally gated by a condition.
	KindCascade

	// KindExtractPart captures a fragment around an anchor term anywhere in
	// the input, optionally gated by a condition.
	KindExtractPart

	// KindExtractParts runs every piece in order and merges their captures,
	// later pieces overwriting earlier ones for overlapping names.
	KindExtractParts
)

func (k Kind) String() string {
	switch k {
	case KindDecomposition:
		return "decomposition"
	case KindCascade:
		return "cascade"
	case KindExtractPart:
		return "extract-part"
	case KindExtractParts:
		return "extract-parts"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Node is one parse-tree node. The tree is a plain data structure: a single
// tagged struct instead of a class hierarchy, so static trees are trivially
// serializable and Parse is one dispatcher.
//
// Nodes must not be mutated after Compile.
type Node struct {
	Kind Kind

	// Condition is an optional gating pattern, evaluated unanchored. The
	// empty string means "always enabled".
	Condition string

	// Pattern is the match pattern of a decomposition or extract-part.
	Pattern string

	// Anchoring flags, honored by decompositions only.
	AnchorStart bool
	AnchorEnd   bool

	// Children are the alternatives of a cascade or the pieces of an
	// extract-parts, visited in declared order. The tree borrows them for
	// its whole lifetime; nodes may be shared between trees.
	Children []*Node
}

// NewDecomposition returns a decomposition anchored at both ends.
func NewDecomposition(pattern string) *Node {
	return NewDecompositionAnchoring(pattern, true, true)
}

// NewDecompositionAnchoring returns a decomposition with explicit anchoring.
func NewDecompositionAnchoring(pattern string, anchorStart, anchorEnd bool) *Node {
	return &Node{
		Kind:        KindDecomposition,
		Pattern:     pattern,
		AnchorStart: anchorStart,
		AnchorEnd:   anchorEnd,
	}
}

// NewCascade returns a cascade over alternatives, gated by condition.
func NewCascade(condition string, alternatives ...*Node) *Node {
	return &Node{Kind: KindCascade, Condition: condition, Children: alternatives}
}

// NewExtractPart returns a single conditional fragment extraction.
func NewExtractPart(condition, pattern string) *Node {
	return &Node{Kind: KindExtractPart, Condition: condition, Pattern: pattern}
}

// NewExtractParts returns an ordered sequence of extract-part pieces, gated
// by condition. Pieces should be ordered most-generic first so a narrower
// pattern can refine a broader one.
func NewExtractParts(condition string, pieces ...*Node) *Node {
	return &Node{Kind: KindExtractParts, Condition: condition, Children: pieces}
}

// Compile validates every pattern in the tree against e. A failure here is a
// defect in the pattern corpus; parse calls never see a compile error.
func (n *Node) Compile(e regexengine.Engine) error {
	if n.Condition != "" {
		if err := e.Compile(n.Condition); err != nil {
			return fmt.Errorf("%s condition %q: %w", n.Kind, n.Condition, err)
		}
	}

	switch n.Kind {
	case KindDecomposition, KindExtractPart:
		if err := e.Compile(n.Pattern); err != nil {
			return fmt.Errorf("%s pattern %q: %w", n.Kind, n.Pattern, err)
		}
	case KindCascade:
		for _, alt := range n.Children {
			if err := alt.Compile(e); err != nil {
				return err
			}
		}
	case KindExtractParts:
		for i, piece := range n.Children {
			if piece.Kind != KindExtractPart {
				return fmt.Errorf("extract-parts piece %d is a %s, want extract-part", i, piece.Kind)
			}
			if err := piece.Compile(e); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown node kind %d", n.Kind)
	}
	return nil
}

// MustCompile compiles the tree against e and panics on failure. Intended for
// static trees built at package initialization.
func MustCompile(e regexengine.Engine, n *Node) *Node {
	if err := n.Compile(e); err != nil {
		panic("parsing: " + err.Error())
	}
	return n
}

// Parse matches input against the tree and returns the extracted captures.
// The second return is false when nothing matched.
func (n *Node) Parse(e regexengine.Engine, input string) (Captures, bool) {
	if !n.conditionHolds(e, input) {
		return nil, false
	}

	switch n.Kind {
	case KindDecomposition:
		caps, ok := e.Capture(n.Pattern, input, n.AnchorStart, n.AnchorEnd)
		if !ok {
			return nil, false
		}
		return caps, true

	case KindCascade:
		for _, alt := range n.Children {
			if caps, ok := alt.Parse(e, input); ok {
				return caps, true
			}
		}
		return nil, false

	case KindExtractPart:
		caps, ok := e.Capture(n.Pattern, input, false, false)
		if !ok {
			return nil, false
		}
		return caps, true

	case KindExtractParts:
		var merged Captures
		matched := false
		for _, piece := range n.Children {
			caps, ok := piece.Parse(e, input)
			if !ok {
				continue
			}
			if merged == nil {
				merged = make(Captures, len(caps))
			}
			// Last write wins for overlapping names.
			for k, v := range caps {
				merged[k] = v
			}
			matched = true
		}
		if !matched {
			return nil, false
		}
		return merged, true
	}

	return nil, false
}

// conditionHolds evaluates the gating pattern, unanchored.
func (n *Node) conditionHolds(e regexengine.Engine, input string) bool {
	return n.Condition == "" || e.Matches(n.Condition, input, false, false)
}
