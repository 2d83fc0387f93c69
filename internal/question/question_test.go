package question

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quiztime/internal/console"
)

func scripted(input string) (*console.Console, *bytes.Buffer) {
	var out bytes.Buffer
	return console.New(strings.NewReader(input), &out), &out
}

func mustChoices(t *testing.T, texts ...string) Choices {
	t.Helper()
	c, err := NewChoices(texts...)
	require.NoError(t, err)
	return c
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      int
		want    Kind
		wantErr bool
	}{
		{1, KindTrueFalse, false},
		{2, KindMultiChoice, false},
		{3, KindMultiSelect, false},
		{0, 0, true},
		{4, 0, true},
		{-1, 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownKind) {
				t.Errorf("ParseKind(%d) err = %v, want ErrUnknownKind", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%d) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestKinds_MatchSelectors(t *testing.T) {
	for i, k := range Kinds() {
		if int(k) != i+1 {
			t.Errorf("Kinds()[%d] = %d, want selector %d", i, k, i+1)
		}
		if strings.HasPrefix(k.String(), "Kind(") {
			t.Errorf("Kind %d has no display name", k)
		}
	}
}

func TestChoicesAdd(t *testing.T) {
	var c Choices

	idx, err := c.Add("  Paris ")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = c.Add("Paris")
	assert.ErrorIs(t, err, ErrDuplicateChoice)

	_, err = c.Add("   ")
	assert.ErrorIs(t, err, ErrBlankChoice)

	// Case-sensitive: a differently cased option is distinct.
	idx, err = c.Add("paris")
	require.NoError(t, err)
	assert.Equal(t, 2, idx, "rejected adds must not consume an index")

	text, ok := c.Text(1)
	assert.True(t, ok)
	assert.Equal(t, "Paris", text)
	assert.False(t, c.Has(3))
}

func TestIndexSetEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b IndexSet
		want bool
	}{
		{"same order", NewIndexSet(1, 3), NewIndexSet(1, 3), true},
		{"other order", NewIndexSet(1, 3), NewIndexSet(3, 1), true},
		{"subset", NewIndexSet(1, 3), NewIndexSet(1), false},
		{"superset", NewIndexSet(1, 3), NewIndexSet(1, 3, 2), false},
		{"disjoint same size", NewIndexSet(1), NewIndexSet(2), false},
		{"both empty", NewIndexSet(), NewIndexSet(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestIndexSetString(t *testing.T) {
	assert.Equal(t, "{1, 2, 3}", NewIndexSet(3, 1, 2).String())
	assert.Equal(t, "{}", NewIndexSet().String())
}

func TestTrueFalse(t *testing.T) {
	q, err := NewTrueFalse("The sky is blue", True)
	require.NoError(t, err)

	if q.IsCorrect() {
		t.Fatal("expected unanswered question to be incorrect")
	}
	assert.Equal(t, "", q.Response())

	c, out := scripted("2\n1\n")
	require.NoError(t, q.Ask(c))
	assert.False(t, q.IsCorrect())
	assert.Equal(t, "False", q.Response())
	assert.Contains(t, out.String(), "The sky is blue")
	assert.Contains(t, out.String(), "1: True")

	require.NoError(t, q.Ask(c))
	assert.True(t, q.IsCorrect(), "second ask must overwrite the first answer")
}

func TestTrueFalse_StoresOutOfRangeVerbatim(t *testing.T) {
	q, err := NewTrueFalse("Water is wet", True)
	require.NoError(t, err)

	c, _ := scripted("nope\n5\n")
	require.NoError(t, q.Ask(c))
	assert.False(t, q.IsCorrect())
	assert.Equal(t, "5", q.Response())
}

func TestNewTrueFalse_RejectsUnknownCode(t *testing.T) {
	_, err := NewTrueFalse("x", 3)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestMultiChoice(t *testing.T) {
	choices := mustChoices(t, "Mercury", "Venus", "Earth")
	q, err := NewMultiChoice("Closest planet to the sun?", choices, 1)
	require.NoError(t, err)
	assert.False(t, q.IsCorrect())

	c, out := scripted("7\n2\n")
	require.NoError(t, q.Ask(c))
	assert.False(t, q.IsCorrect())
	assert.Equal(t, "2 (Venus)", q.Response())
	assert.Equal(t, "1 (Mercury)", q.CorrectAnswer())
	assert.Contains(t, out.String(), "3 : Earth")
	assert.Contains(t, out.String(), "from 1 to 3")

	c, _ = scripted("1\n")
	require.NoError(t, q.Ask(c))
	assert.True(t, q.IsCorrect())
}

func TestNewMultiChoice_Validation(t *testing.T) {
	_, err := NewMultiChoice("x", mustChoices(t, "only"), 1)
	assert.ErrorIs(t, err, ErrTooFewChoices)

	_, err = NewMultiChoice("x", mustChoices(t, "a", "b"), 3)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestMultiSelect(t *testing.T) {
	tests := []struct {
		name    string
		correct IndexSet
		input   string
		want    bool
	}{
		{"exact match", NewIndexSet(1, 3), "y\nn\ny\n", true},
		{"missing one", NewIndexSet(1, 3), "y\nn\nn\n", false},
		{"one extra", NewIndexSet(1, 3), "y\ny\ny\n", false},
		{"empty correct, none selected", NewIndexSet(), "n\nn\nn\n", true},
		{"yes spelled out", NewIndexSet(2), "no\nYES\n\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewMultiSelect("Pick primes", mustChoices(t, "2", "4", "5"), tt.correct)
			require.NoError(t, err)
			assert.False(t, q.IsCorrect())

			c, _ := scripted(tt.input)
			require.NoError(t, q.Ask(c))
			assert.Equal(t, tt.want, q.IsCorrect())
		})
	}
}

func TestMultiSelect_NoPartialCredit(t *testing.T) {
	q, err := NewMultiSelect("Pick A", mustChoices(t, "A", "B"), NewIndexSet(1))
	require.NoError(t, err)

	c, _ := scripted("y\ny\ny\nn\n")
	require.NoError(t, q.Ask(c))
	assert.False(t, q.IsCorrect())
	assert.Equal(t, "{1, 2}", q.Response())

	require.NoError(t, q.Ask(c))
	assert.True(t, q.IsCorrect())
	assert.Equal(t, "{1}", q.Response())
}

func TestNewMultiSelect_Validation(t *testing.T) {
	_, err := NewMultiSelect("x", mustChoices(t, "a", "b"), NewIndexSet(1, 5))
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	_, err = NewMultiSelect("x", Choices{}, NewIndexSet())
	assert.ErrorIs(t, err, ErrTooFewChoices)
}

func TestMultiSelect_CorrectSetIsCopied(t *testing.T) {
	correct := NewIndexSet(1)
	q, err := NewMultiSelect("x", mustChoices(t, "a", "b"), correct)
	require.NoError(t, err)

	correct.Add(2)
	assert.Equal(t, "{1}", q.CorrectAnswer())
}
