package question

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/quiztime/internal/console"
)

var (
	// ErrDuplicateChoice is returned by Choices.Add for text that matches an
	// existing option after trimming.
	ErrDuplicateChoice = errors.New("this option already exists")

	// ErrBlankChoice is returned by Choices.Add for empty text.
	ErrBlankChoice = errors.New("option text cannot be empty")
)

// Choice is one numbered option.
type Choice struct {
	Index int
	Text  string
}

// Choices is an ordered set of options numbered from 1 in insertion order.
// The zero value is empty and ready to use.
type Choices struct {
	items []Choice
}

// NewChoices builds Choices from texts, failing on the first rejected text.
func NewChoices(texts ...string) (Choices, error) {
	var c Choices
	for _, t := range texts {
		if _, err := c.Add(t); err != nil {
			return Choices{}, fmt.Errorf("add choice %q: %w", t, err)
		}
	}
	return c, nil
}

// Add appends text as the next option and returns its index. Text is
// trimmed first; blank text and exact duplicates are rejected without
// consuming an index.
func (c *Choices) Add(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrBlankChoice
	}
	for _, ch := range c.items {
		if ch.Text == text {
			return 0, ErrDuplicateChoice
		}
	}
	idx := len(c.items) + 1
	c.items = append(c.items, Choice{Index: idx, Text: text})
	return idx, nil
}

// Len returns the number of options.
func (c Choices) Len() int {
	return len(c.items)
}

// All returns the options in display order.
func (c Choices) All() []Choice {
	return slices.Clone(c.items)
}

// Text returns the option text for idx.
func (c Choices) Text(idx int) (string, bool) {
	if !c.Has(idx) {
		return "", false
	}
	return c.items[idx-1].Text, true
}

// Has reports whether idx names an option.
func (c Choices) Has(idx int) bool {
	return idx >= 1 && idx <= len(c.items)
}

// print lists every option as "i : text".
func (c Choices) print(con *console.Console) {
	for _, ch := range c.items {
		con.Printf("%d : %s\n", ch.Index, ch.Text)
	}
}

// IndexSet is an unordered set of choice indices.
type IndexSet map[int]struct{}

// NewIndexSet returns a set holding idx.
func NewIndexSet(idx ...int) IndexSet {
	s := make(IndexSet, len(idx))
	for _, i := range idx {
		s[i] = struct{}{}
	}
	return s
}

// Add inserts idx.
func (s IndexSet) Add(idx int) {
	s[idx] = struct{}{}
}

// Has reports membership.
func (s IndexSet) Has(idx int) bool {
	_, ok := s[idx]
	return ok
}

// Equal reports whether both sets hold exactly the same indices.
func (s IndexSet) Equal(other IndexSet) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

// Sorted returns the members in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// String renders the set as "{1, 3}".
func (s IndexSet) String() string {
	parts := make([]string, 0, len(s))
	for _, k := range s.Sorted() {
		parts = append(parts, strconv.Itoa(k))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Clone returns an independent copy.
func (s IndexSet) Clone() IndexSet {
	out := make(IndexSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
