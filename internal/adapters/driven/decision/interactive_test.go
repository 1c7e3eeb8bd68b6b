package decision

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
)

var lab1 = domain.RemoteAssignment{ID: 1, Name: "Lab 1 (Makeup)"}

func newInteractive(input string) (*Interactive, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return NewInteractive(strings.NewReader(input), out), out
}

func TestInteractive_Kind(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.KindAnswer
	}{
		{"plain", "c\n", domain.KindAnswer{Kind: domain.KindC}},
		{"upper case and spaces", "  CPP \n", domain.KindAnswer{Kind: domain.KindCPP}},
		{"trailing marker", "none*\n", domain.KindAnswer{Kind: domain.KindNone, ApplyToAll: true}},
		{"leading marker", "*cpp\n", domain.KindAnswer{Kind: domain.KindCPP, ApplyToAll: true}},
		{"marker with space", "c *\n", domain.KindAnswer{Kind: domain.KindC, ApplyToAll: true}},
		{"no trailing newline", "c", domain.KindAnswer{Kind: domain.KindC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, _ := newInteractive(tt.input)

			got, err := src.Kind(context.Background(), lab1)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInteractive_KindRepromptsUntilValid(t *testing.T) {
	src, out := newInteractive("java\n\n*\ncpp\n")

	got, err := src.Kind(context.Background(), lab1)

	require.NoError(t, err)
	assert.Equal(t, domain.KindCPP, got.Kind)
	assert.Equal(t, 4, strings.Count(out.String(), "What kind of assignment is this?"))
	assert.Contains(t, out.String(), `"java" is not one of c, cpp, none`)
}

func TestInteractive_FileCount(t *testing.T) {
	src, _ := newInteractive("3*\n")

	got, err := src.FileCount(context.Background(), lab1)

	require.NoError(t, err)
	assert.Equal(t, domain.FileCountAnswer{FileCount: 3, ApplyToAll: true}, got)
}

func TestInteractive_FileCountRepromptsOnInvalid(t *testing.T) {
	src, out := newInteractive("two\n-1\n\n0\n")

	got, err := src.FileCount(context.Background(), lab1)

	require.NoError(t, err)
	assert.Equal(t, domain.FileCountAnswer{FileCount: 0}, got)
	assert.Equal(t, 4, strings.Count(out.String(), "How many files"))
}

func TestInteractive_EndOfInputAborts(t *testing.T) {
	src, _ := newInteractive("")

	_, err := src.Kind(context.Background(), lab1)
	assert.ErrorIs(t, err, domain.ErrDecisionAborted)

	_, err = src.FileCount(context.Background(), lab1)
	assert.ErrorIs(t, err, domain.ErrDecisionAborted)
}

func TestInteractive_EndOfInputAfterInvalidAborts(t *testing.T) {
	src, _ := newInteractive("java\n")

	_, err := src.Kind(context.Background(), lab1)

	assert.ErrorIs(t, err, domain.ErrDecisionAborted)
}

func TestInteractive_CancelledContext(t *testing.T) {
	src, out := newInteractive("c\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Kind(ctx, lab1)

	assert.ErrorIs(t, err, domain.ErrDecisionAborted)
	assert.Empty(t, out.String())
}

func TestInteractive_HeaderOncePerAssignment(t *testing.T) {
	src, out := newInteractive("c\n1\ncpp\n2\n")
	ctx := context.Background()
	lab2 := domain.RemoteAssignment{ID: 2, Name: "Lab 2"}

	_, err := src.Kind(ctx, lab1)
	require.NoError(t, err)
	_, err = src.FileCount(ctx, lab1)
	require.NoError(t, err)
	_, err = src.Kind(ctx, lab2)
	require.NoError(t, err)
	_, err = src.FileCount(ctx, lab2)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out.String(), "Assignment: Lab 1 (Makeup)"))
	assert.Equal(t, 1, strings.Count(out.String(), "Assignment: Lab 2"))
}

func TestInteractive_ColorKeepsText(t *testing.T) {
	src, out := newInteractive("c\n")
	src.SetColor(true)

	_, err := src.Kind(context.Background(), lab1)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Lab 1 (Makeup)")
}

func TestIsTerminal_Nil(t *testing.T) {
	assert.False(t, IsTerminal(nil))
}
