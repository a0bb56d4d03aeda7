package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"directory", fmt.Errorf("%w: HTTP 502", ErrDirectoryUnavailable), true},
		{"explorer", fmt.Errorf("%w: timeout", ErrExplorerUnavailable), true},
		{"chain", fmt.Errorf("%w: nonce too low", ErrChainSubmission), true},
		{"signing", fmt.Errorf("%w: bad key", ErrSigning), false},
		{"invalid range", fmt.Errorf("%w: from > to", ErrInvalidBlockRange), false},
		{"unknown", errors.New("something else"), false},
		{"signing wins over explorer", fmt.Errorf("%w: %w", ErrSigning, ErrExplorerUnavailable), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, "none", Kind(nil))
	assert.Equal(t, "directory_unavailable", Kind(fmt.Errorf("wrap: %w", ErrDirectoryUnavailable)))
	assert.Equal(t, "explorer_unavailable", Kind(ErrExplorerUnavailable))
	assert.Equal(t, "chain_submission", Kind(ErrChainSubmission))
	assert.Equal(t, "signing", Kind(ErrSigning))
	assert.Equal(t, "invalid_task", Kind(ErrInvalidTask))
	assert.Equal(t, "unknown", Kind(errors.New("x")))
}
