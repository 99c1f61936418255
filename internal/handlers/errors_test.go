package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/services"
)

func TestStatusFromError_ServiceSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "paying an empty draft is a bad request",
			err:  fmt.Errorf("%w: %w: tx-1", apperrors.ErrValidation, services.ErrEmptyLineItems),
			want: http.StatusBadRequest,
		},
		{
			name: "paying a zero total is a bad request",
			err:  fmt.Errorf("%w: %w: tx-1", apperrors.ErrValidation, services.ErrNonPositiveTotal),
			want: http.StatusBadRequest,
		},
		{
			name: "creating against an inactive branch is a bad request",
			err:  fmt.Errorf("%w: %w: branch-1", apperrors.ErrValidation, services.ErrBranchInactive),
			want: http.StatusBadRequest,
		},
		{
			name: "editing a paid transaction is a conflict",
			err:  fmt.Errorf("%w: %w: tx-1 is PAID", apperrors.ErrConflict, services.ErrTransactionNotEditable),
			want: http.StatusConflict,
		},
		{
			name: "unwrapped errors stay internal",
			err:  fmt.Errorf("connection reset"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
