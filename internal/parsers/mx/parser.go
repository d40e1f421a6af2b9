// Package mx parses Mexican street addresses.
package mx

import (
	"sync"

	"address_parser/internal/registry"
	"address_parser/parsing"
	"address_parser/regexengine"
)

// Parser parses Mexican street address lines.
type Parser struct{}

// Tree singleton, compiled on first use.
var (
	engine   = regexengine.NewBacktracking()
	tree     *parsing.Node
	treeOnce sync.Once
)

func getTree() *parsing.Node {
	treeOnce.Do(func() {
		tree = parsing.MustCompile(engine, buildTree())
	})
	return tree
}

func init() {
	registry.Register(&Parser{})
}

func (p *Parser) Name() string        { return "mx" }
func (p *Parser) Countries() []string { return []string{"MX"} }
func (p *Parser) Priority() int       { return 100 }

func (p *Parser) QuickCheck(value string) bool {
	return value != ""
}

func (p *Parser) Parse(value string) (parsing.Captures, bool) {
	return getTree().Parse(engine, value)
}
