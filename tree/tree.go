// Package tree holds the bracketed parse trees the corpus format wraps.
package tree

import (
	"fmt"
	"strings"
)

// Node is one node of a parse tree. A terminal carries the word in
// Word and has no children; a nonterminal carries the category in
// Label and at least one child.
type Node struct {
	Label    string
	Word     string
	Children []*Node
}

// IsLeaf reports whether n is a terminal.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsPreterminal reports whether n dominates exactly one terminal,
// i.e. n is a part-of-speech node.
func (n *Node) IsPreterminal() bool {
	return len(n.Children) == 1 && n.Children[0].IsLeaf()
}

// Clone returns a deep copy of the tree rooted at n. The copy shares
// no nodes with the original; mutating one never affects the other.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Label: n.Label, Word: n.Word}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return c
}

// String renders the tree in its bracketed form. A nil tree renders
// as the empty string.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	if n.IsLeaf() {
		b.WriteString(n.Word)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Label)
	for _, ch := range n.Children {
		b.WriteByte(' ')
		ch.render(b)
	}
	b.WriteByte(')')
}

// Words returns the terminals of the tree in surface order.
func (n *Node) Words() []string {
	var words []string
	n.walkWords(&words)
	return words
}

func (n *Node) walkWords(words *[]string) {
	if n.IsLeaf() {
		*words = append(*words, n.Word)
		return
	}
	for _, ch := range n.Children {
		ch.walkWords(words)
	}
}

// Parse reads one bracketed tree from a text fragment, typically the
// rest of a corpus line. When downcase is set, terminal tokens are
// lower-cased as they are read; labels are kept as written. Trailing
// content after the closing bracket of the tree is an error.
func Parse(fragment string, downcase bool) (*Node, error) {
	p := parser{input: fragment, downcase: downcase}
	n, err := p.node()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("tree: trailing content at offset %d in %q", p.pos, fragment)
	}
	return n, nil
}

type parser struct {
	input    string
	pos      int
	downcase bool
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

// token reads a run of characters up to whitespace or a bracket.
func (p *parser) token() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if isSpace(c) || c == '(' || c == ')' {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) node() (*Node, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("tree: empty fragment")
	}
	if p.input[p.pos] != '(' {
		word := p.token()
		if word == "" {
			return nil, fmt.Errorf("tree: unexpected %q at offset %d", p.input[p.pos], p.pos)
		}
		if p.downcase {
			word = strings.ToLower(word)
		}
		return &Node{Word: word}, nil
	}
	p.pos++ // consume '('
	p.skipSpace()
	n := &Node{Label: p.token()}
	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("tree: unbalanced brackets in %q", p.input)
		}
		if p.input[p.pos] == ')' {
			p.pos++
			break
		}
		ch, err := p.node()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, ch)
	}
	if len(n.Children) == 0 {
		return nil, fmt.Errorf("tree: empty constituent %q", n.Label)
	}
	return n, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
