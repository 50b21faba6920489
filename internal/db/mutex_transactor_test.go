package db

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutexTransactor_WithinTransaction(t *testing.T) {
	errBoom := errors.New("boom")

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name          string
		ctx           context.Context
		fn            func(ctx context.Context) error
		expectedError error
		expectCalled  bool
	}{
		{
			name:         "success",
			ctx:          context.Background(),
			fn:           func(context.Context) error { return nil },
			expectCalled: true,
		},
		{
			name:          "function error is wrapped",
			ctx:           context.Background(),
			fn:            func(context.Context) error { return errBoom },
			expectedError: errBoom,
			expectCalled:  true,
		},
		{
			name:          "canceled context",
			ctx:           canceled,
			fn:            func(context.Context) error { return nil },
			expectedError: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := NewMutexTransactor()
			called := false

			err := tx.WithinTransaction(tt.ctx, func(ctx context.Context) error {
				called = true
				assert.True(t, InTransaction(ctx, tx))
				return tt.fn(ctx)
			})

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectCalled, called)
		})
	}
}

func TestMutexTransactor_Nested(t *testing.T) {
	tx := NewMutexTransactor()
	depth := 0

	err := tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		depth++
		return tx.WithinTransaction(ctx, func(context.Context) error {
			depth++
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 2, depth)
}

func TestMutexTransactor_Serializes(t *testing.T) {
	tx := NewMutexTransactor()

	const workers = 50
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tx.WithinTransaction(context.Background(), func(context.Context) error {
				v := counter
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestInTransaction_OtherTransactor(t *testing.T) {
	a := NewMutexTransactor()
	b := NewMutexTransactor()

	_ = a.WithinTransaction(context.Background(), func(ctx context.Context) error {
		assert.False(t, InTransaction(ctx, b))
		return nil
	})
	assert.False(t, InTransaction(context.Background(), a))
}
