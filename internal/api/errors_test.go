package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{common.ErrorNotFound, codes.NotFound},
		{fmt.Errorf("content c1: %w", common.ErrorNotFound), codes.NotFound},
		{common.ErrInvalidAmount, codes.InvalidArgument},
		{common.ErrInsufficientFunds, codes.FailedPrecondition},
		{common.ErrAlreadyTerminal, codes.FailedPrecondition},
		{common.ErrNotOldestPending, codes.FailedPrecondition},
		{common.ErrNotEligible, codes.PermissionDenied},
		{common.ErrDivergence, codes.Aborted},
		{common.ErrFingerprintConflict, codes.Aborted},
		{fmt.Errorf("%w: conn reset", common.ErrStoreUnavailable), codes.Unavailable},
		{common.ErrTokenExpired, codes.Unauthenticated},
		{errors.New("pq: something odd"), codes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, status.Code(ToStatus(tt.err)), "%v", tt.err)
	}

	assert.NoError(t, ToStatus(nil))
	assert.Equal(t, "internal error", status.Convert(ToStatus(errors.New("secret dsn"))).Message())

	already := status.Error(codes.Canceled, "x")
	assert.Equal(t, already, ToStatus(already))
}

func TestFromStatus_RoundTrip(t *testing.T) {
	for _, e := range errorCodes {
		got, ok := FromStatus(ToStatus(e.err))
		assert.True(t, ok, "%v", e.err)
		assert.Equal(t, e.err, got)
	}
}

func TestFromStatus_KeepsDetail(t *testing.T) {
	wire := ToStatus(fmt.Errorf("%w: title is required", common.ErrorValidation))

	got, ok := FromStatus(wire)
	assert.True(t, ok)
	assert.ErrorIs(t, got, common.ErrorValidation)
	assert.Equal(t, "validation error: title is required", got.Error())
}

func TestFromStatus_Unknown(t *testing.T) {
	plain := errors.New("dial tcp: refused")
	got, ok := FromStatus(plain)
	assert.False(t, ok)
	assert.Equal(t, plain, got)

	_, ok = FromStatus(status.Error(codes.Internal, "internal error"))
	assert.False(t, ok)
}
