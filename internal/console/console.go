package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quiztime/internal/ui/theme"
)

// ErrNotInteger is returned by ReadInt when the next token does not parse
// as an integer. The offending token has already been consumed.
var ErrNotInteger = errors.New("not an integer")

// LineSource supplies whole lines of input. It returns io.EOF once the
// input is exhausted.
type LineSource interface {
	ReadLine() (string, error)
}

// Console is the line-oriented boundary between the quiz and whoever is
// typing. Reads are strictly sequential: a token read leaves the rest of
// its line pending for the next read.
type Console struct {
	src  LineSource
	out  io.Writer
	rest string

	color       bool
	maxAttempts int
}

// Option configures a Console.
type Option func(*Console)

// WithColor enables lipgloss styling of titles, warnings, and results.
func WithColor(enabled bool) Option {
	return func(c *Console) { c.color = enabled }
}

// WithMaxAttempts bounds every prompt loop. Zero means retry forever.
func WithMaxAttempts(n int) Option {
	return func(c *Console) { c.maxAttempts = n }
}

// New creates a Console that scans lines from r and writes to w.
func New(r io.Reader, w io.Writer, opts ...Option) *Console {
	return NewWithSource(NewScanner(r), w, opts...)
}

// NewWithSource creates a Console over an arbitrary LineSource.
func NewWithSource(src LineSource, w io.Writer, opts ...Option) *Console {
	c := &Console{src: src, out: w}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ReadInt reads the next whitespace-delimited token and parses it as an
// integer. Blank lines are skipped. On a parse failure the token is
// discarded and ErrNotInteger is returned.
func (c *Console) ReadInt() (int, error) {
	for strings.TrimSpace(c.rest) == "" {
		line, err := c.src.ReadLine()
		if err != nil {
			c.rest = ""
			return 0, err
		}
		c.rest = line
	}

	trimmed := strings.TrimLeftFunc(c.rest, unicode.IsSpace)
	end := strings.IndexFunc(trimmed, unicode.IsSpace)
	var token string
	if end < 0 {
		token, c.rest = trimmed, ""
	} else {
		token, c.rest = trimmed[:end], trimmed[end:]
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, token)
	}
	return n, nil
}

// ReadLine returns the unconsumed remainder of the current line when it
// holds anything but whitespace, otherwise the next whole line.
func (c *Console) ReadLine() (string, error) {
	if rest := strings.TrimSpace(c.rest); rest != "" {
		c.rest = ""
		return rest, nil
	}
	c.rest = ""
	return c.src.ReadLine()
}

// Print writes its operands like fmt.Fprint.
func (c *Console) Print(a ...any) {
	fmt.Fprint(c.out, a...)
}

// Println writes its operands followed by a newline.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted output.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Title writes a section banner.
func (c *Console) Title(s string) {
	c.styled(theme.Title, s)
}

// Ask writes a question or menu that expects a reply.
func (c *Console) Ask(s string) {
	c.styled(theme.Prompt, s)
}

// Hint writes secondary guidance.
func (c *Console) Hint(s string) {
	c.styled(theme.Hint, s)
}

// Warn writes a recoverable-problem message, such as rejected input.
func (c *Console) Warn(s string) {
	c.styled(theme.Warning, s)
}

// Success writes a positive result line.
func (c *Console) Success(s string) {
	c.styled(theme.Correct, s)
}

// Failure writes a negative result line.
func (c *Console) Failure(s string) {
	c.styled(theme.Incorrect, s)
}

func (c *Console) styled(style lipgloss.Style, s string) {
	if c.color {
		s = style.Render(s)
	}
	fmt.Fprintln(c.out, s)
}

// Scanner is a LineSource backed by bufio.Scanner.
type Scanner struct {
	sc *bufio.Scanner
}

// NewScanner wraps r as a LineSource.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// ReadLine returns the next line without its terminator.
func (s *Scanner) ReadLine() (string, error) {
	if s.sc.Scan() {
		return strings.TrimSuffix(s.sc.Text(), "\r"), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", io.EOF
}
