package components

import (
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
)

// Terminal is a line source that runs one LineInput program per line. It
// satisfies console.LineSource.
type Terminal struct {
	in   io.Reader
	out  io.Writer
	opts []tea.ProgramOption
}

// NewTerminal creates a Terminal reading keys from in and drawing to out.
// Extra options are passed to every program it runs.
func NewTerminal(in io.Reader, out io.Writer, opts ...tea.ProgramOption) *Terminal {
	return &Terminal{in: in, out: out, opts: opts}
}

// ReadLine edits one line and returns it. An aborted edit reads as io.EOF.
func (t *Terminal) ReadLine() (string, error) {
	opts := append([]tea.ProgramOption{tea.WithInput(t.in), tea.WithOutput(t.out)}, t.opts...)
	p := tea.NewProgram(NewLineInput("", 0), opts...)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("read line: %w", err)
	}

	li, ok := final.(LineInput)
	if !ok || !li.Done() {
		return "", io.EOF
	}
	return li.Value(), nil
}
