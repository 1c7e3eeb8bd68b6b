package decision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
)

func TestAutomatic_Answers(t *testing.T) {
	a := NewAutomatic(domain.KindCPP, 2)
	ctx := context.Background()

	kind, err := a.Kind(ctx, domain.RemoteAssignment{Name: "Lab 1"})
	require.NoError(t, err)
	assert.Equal(t, domain.KindAnswer{Kind: domain.KindCPP, ApplyToAll: true}, kind)

	count, err := a.FileCount(ctx, domain.RemoteAssignment{Name: "Lab 1"})
	require.NoError(t, err)
	assert.Equal(t, domain.FileCountAnswer{FileCount: 2, ApplyToAll: true}, count)
}

func TestAutomatic_ZeroFileCountIsValid(t *testing.T) {
	a := NewAutomatic(domain.KindNone, 0)

	count, err := a.FileCount(context.Background(), domain.RemoteAssignment{})

	require.NoError(t, err)
	assert.Equal(t, 0, count.FileCount)
}

func TestAutomatic_UnsetAborts(t *testing.T) {
	a := NewAutomatic("", -1)
	ctx := context.Background()

	_, err := a.Kind(ctx, domain.RemoteAssignment{})
	assert.ErrorIs(t, err, domain.ErrDecisionAborted)

	_, err = a.FileCount(ctx, domain.RemoteAssignment{})
	assert.ErrorIs(t, err, domain.ErrDecisionAborted)
}

func TestAutomatic_InvalidKind(t *testing.T) {
	a := NewAutomatic("java", 1)

	_, err := a.Kind(context.Background(), domain.RemoteAssignment{})

	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}

func TestAutomatic_CancelledContext(t *testing.T) {
	a := NewAutomatic(domain.KindC, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Kind(ctx, domain.RemoteAssignment{})
	assert.ErrorIs(t, err, domain.ErrDecisionAborted)
	assert.ErrorIs(t, err, context.Canceled)
}
