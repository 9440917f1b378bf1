package tree

import (
	"strings"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	in := "(S (NP (DT the) (NN dog)) (VP (VBZ barks)))"
	n, err := Parse(in, false)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := n.String(); got != in {
		t.Errorf("round trip mismatch:\n got %s\nwant %s", got, in)
	}
}

func TestParseLeadingAndTrailingSpace(t *testing.T) {
	n, err := Parse("  (S (NP x) (VP y))  \n", false)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := n.String(); got != "(S (NP x) (VP y))" {
		t.Errorf("got %s", got)
	}
}

func TestParseDowncase(t *testing.T) {
	n, err := Parse("(S (NP (NNP Rome)))", true)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	words := n.Words()
	if len(words) != 1 || words[0] != "rome" {
		t.Errorf("expected terminal 'rome', got %v", words)
	}
	// labels stay as written
	if n.Label != "S" {
		t.Errorf("label changed: %s", n.Label)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"(S (NP x)",
		"(S (NP x))) extra",
		"(S ())",
	} {
		if _, err := Parse(in, false); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestCloneIsolation(t *testing.T) {
	n, err := Parse("(S (NP x) (VP y))", false)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	c := n.Clone()
	c.Children[0].Children[0].Word = "z"
	if got := n.Children[0].Children[0].Word; got != "x" {
		t.Errorf("mutating the clone changed the original: %s", got)
	}
	if c.String() == n.String() {
		t.Errorf("clone did not diverge after mutation")
	}
}

func TestCloneNil(t *testing.T) {
	var n *Node
	if n.Clone() != nil {
		t.Error("clone of nil tree should be nil")
	}
}

func TestPreterminal(t *testing.T) {
	n, err := Parse("(S (NP x) (VP (V runs) (NP home)))", false)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !n.Children[0].IsPreterminal() {
		t.Error("(NP x) should be a preterminal")
	}
	if n.Children[1].IsPreterminal() {
		t.Error("(VP ...) should not be a preterminal")
	}
	if n.IsPreterminal() || n.IsLeaf() {
		t.Error("root misclassified")
	}
}

func TestWordsOrder(t *testing.T) {
	n, err := Parse("(S (NP (DT the) (NN dog)) (VP barks))", false)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := strings.Join(n.Words(), " "); got != "the dog barks" {
		t.Errorf("words out of order: %q", got)
	}
}
