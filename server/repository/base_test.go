package repository

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransientErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pool exhausted", errors.New("Error 1040: Too many connections"), true},
		{"dropped connection", errors.New("invalid connection"), true},
		{"server down", errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"), true},
		{"wrapped cause survives", errors.Wrap(errors.New("Error 1040: Too many connections"), "count assets"), true},
		{"constraint violation", errors.New("Error 1062: Duplicate entry 'AT-1'"), false},
		{"plain failure", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransientErr(tt.err))
		})
	}
}

func TestWithRetryRecovers(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("invalid connection")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetryFailsFastOnPermanentErr(t *testing.T) {
	calls := 0
	boom := errors.New("Error 1062: Duplicate entry 'AT-1'")
	err := WithRetry(context.Background(), func() error {
		calls++
		return boom
	})
	require.Error(t, err)
	assert.Equal(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetryBounded(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return errors.New("Error 1040: Too many connections")
	})
	require.Error(t, err)
	// the original transient error surfaces so the handler can map it
	assert.True(t, IsTransientErr(err))
	assert.Equal(t, 4, calls)
}
