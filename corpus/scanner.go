package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Scanner reads the whitespace-separated tokens of the corpus format
// from a byte stream. Numeric tokens may be separated by any
// whitespace, newlines included; tree text is always the rest of the
// current line. A Scanner must not be shared across overlapping reads.
type Scanner struct {
	r *bufio.Reader
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// token reads the next whitespace-delimited token, consuming leading
// and trailing whitespace around it. The trailing skip means a
// numeric token may sit alone on its line with the content that
// follows it starting on the next.
func (s *Scanner) token() (string, error) {
	if err := s.skipSpace(); err != nil {
		return "", err
	}
	var tok []byte
	for {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(c) {
			if err := s.r.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
		tok = append(tok, c)
	}
	if err := s.skipSpace(); err != nil && err != io.EOF {
		return "", err
	}
	return string(tok), nil
}

func (s *Scanner) skipSpace() error {
	for {
		c, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		if !isSpace(c) {
			return s.r.UnreadByte()
		}
	}
}

// Uint reads one non-negative integer token.
func (s *Scanner) Uint() (int, error) {
	tok, err := s.token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(tok, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("token %q is not a count", tok)
	}
	return int(n), nil
}

// Float reads one floating-point token.
func (s *Scanner) Float() (float64, error) {
	tok, err := s.token()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("token %q is not a number", tok)
	}
	return f, nil
}

// RestOfLine returns the remainder of the current line, without the
// newline, consuming the newline itself. The buffer grows as needed;
// there is no maximum line length. It fails only when the stream ends
// before a single byte is read.
func (s *Scanner) RestOfLine() (string, error) {
	var buf bytes.Buffer
	for {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			if buf.Len() == 0 {
				return "", io.ErrUnexpectedEOF
			}
			return buf.String(), nil
		}
		if err != nil {
			return "", err
		}
		if c == '\n' {
			return buf.String(), nil
		}
		buf.WriteByte(c)
	}
}

// SkipLine discards the remainder of the current line, up to and
// including the newline or the end of the stream.
func (s *Scanner) SkipLine() error {
	for {
		c, err := s.r.ReadByte()
		if err == io.EOF || (err == nil && c == '\n') {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Dump returns up to n bytes of the following stream content without
// any interpretation, for diagnostics after a failed header read.
func (s *Scanner) Dump(n int) string {
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		c, err := s.r.ReadByte()
		if err != nil {
			buf.WriteString("\n--EOF--")
			break
		}
		buf.WriteByte(c)
	}
	return buf.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
