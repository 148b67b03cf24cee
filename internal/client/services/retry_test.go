package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncall-app/oncall-cli/internal/common"
)

func TestFetchWithRetry_SucceedsFirstTry(t *testing.T) {
	calls := 0
	got, err := fetchWithRetry(context.Background(), 2, 0, func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 1, calls)
}

func TestFetchWithRetry_RecoversAfterFailure(t *testing.T) {
	calls := 0
	got, err := fetchWithRetry(context.Background(), 2, 0, func(ctx context.Context) ([]int, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("flaky")
		}
		return []int{1, 2}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 3, calls)
}

func TestFetchWithRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	boom := errors.New("still down")
	_, err := fetchWithRetry(context.Background(), 2, 0, func(ctx context.Context) (int, error) {
		calls++
		return 0, boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestFetchWithRetry_UnauthorizedIsTerminal(t *testing.T) {
	calls := 0
	_, err := fetchWithRetry(context.Background(), 5, 0, func(ctx context.Context) (int, error) {
		calls++
		return 0, common.ErrUnauthorized
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, 1, calls)
}
