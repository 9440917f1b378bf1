package corpus

import (
	"io"
	"strings"
	"testing"
)

func TestScannerTokensAcrossLines(t *testing.T) {
	sc := NewScanner(strings.NewReader(" 3 \n\t-0.5\n2.5e-3 "))
	if n, err := sc.Uint(); err != nil || n != 3 {
		t.Fatalf("Uint: %d, %v", n, err)
	}
	if f, err := sc.Float(); err != nil || f != -0.5 {
		t.Fatalf("Float: %v, %v", f, err)
	}
	if f, err := sc.Float(); err != nil || f != 2.5e-3 {
		t.Fatalf("Float scientific: %v, %v", f, err)
	}
}

func TestScannerUintRejects(t *testing.T) {
	for _, in := range []string{"abc", "-1", "1.5", ""} {
		sc := NewScanner(strings.NewReader(in))
		if _, err := sc.Uint(); err == nil {
			t.Errorf("Uint accepted %q", in)
		}
	}
}

func TestScannerFloatRejects(t *testing.T) {
	sc := NewScanner(strings.NewReader("logprob"))
	if _, err := sc.Float(); err == nil {
		t.Error("Float accepted a word")
	}
}

func TestRestOfLine(t *testing.T) {
	sc := NewScanner(strings.NewReader("7 (S (NP x))\nnext"))
	if _, err := sc.Uint(); err != nil {
		t.Fatal(err)
	}
	line, err := sc.RestOfLine()
	if err != nil {
		t.Fatal(err)
	}
	if line != "(S (NP x))" {
		t.Errorf("got %q", line)
	}
	// positioned at the start of the next line
	rest, err := sc.RestOfLine()
	if err != nil || rest != "next" {
		t.Errorf("got %q, %v", rest, err)
	}
}

func TestRestOfLineNoTrailingNewline(t *testing.T) {
	sc := NewScanner(strings.NewReader("tail without newline"))
	line, err := sc.RestOfLine()
	if err != nil || line != "tail without newline" {
		t.Errorf("got %q, %v", line, err)
	}
}

func TestRestOfLineAtEOF(t *testing.T) {
	sc := NewScanner(strings.NewReader(""))
	if _, err := sc.RestOfLine(); err != io.ErrUnexpectedEOF {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestSkipLine(t *testing.T) {
	sc := NewScanner(strings.NewReader("skip all of this\n42\n"))
	if err := sc.SkipLine(); err != nil {
		t.Fatal(err)
	}
	if n, err := sc.Uint(); err != nil || n != 42 {
		t.Errorf("got %d, %v", n, err)
	}
	// skipping at EOF is not an error
	if err := sc.SkipLine(); err != nil {
		t.Errorf("SkipLine at EOF: %v", err)
	}
}

func TestDump(t *testing.T) {
	sc := NewScanner(strings.NewReader("abcdef"))
	if got := sc.Dump(4); got != "abcd" {
		t.Errorf("got %q", got)
	}
	if got := sc.Dump(10); !strings.HasPrefix(got, "ef") || !strings.Contains(got, "--EOF--") {
		t.Errorf("expected EOF marker, got %q", got)
	}
}
