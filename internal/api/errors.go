// Package api maps the sentinel errors of internal/common to gRPC status
// codes and back, so both ends of the cofund service agree on them.
package api

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/cofund/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorCodes lists the sentinels carried across the wire. A sentinel's text
// travels in the status message, so sentinels sharing a code stay apart.
var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrorAlreadyExists, codes.AlreadyExists},
	{common.ErrInvalidAmount, codes.InvalidArgument},
	{common.ErrorValidation, codes.InvalidArgument},
	{common.ErrInsufficientFunds, codes.FailedPrecondition},
	{common.ErrNotOldestPending, codes.FailedPrecondition},
	{common.ErrAlreadyTerminal, codes.FailedPrecondition},
	{common.ErrNotEligible, codes.PermissionDenied},
	{common.ErrFingerprintConflict, codes.Aborted},
	{common.ErrDivergence, codes.Aborted},
	{common.ErrStoreUnavailable, codes.Unavailable},
	{common.ErrRefreshTokenExpired, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrorUnauthorized, codes.Unauthenticated},
}

// ToStatus converts a service error to a gRPC status error. Errors that are
// not sentinels become Internal without leaking their text.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, err.Error())
		}
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

// FromStatus converts a gRPC status error back to the sentinel it carries.
// The status message is kept when it adds detail. ok is false when no
// sentinel matches.
func FromStatus(err error) (mapped error, ok bool) {
	st, isStatus := status.FromError(err)
	if !isStatus {
		return err, false
	}
	msg := st.Message()
	for _, e := range errorCodes {
		if e.code != st.Code() || !strings.Contains(msg, e.err.Error()) {
			continue
		}
		if msg == e.err.Error() {
			return e.err, true
		}
		return &detailedError{sentinel: e.err, msg: msg}, true
	}
	return err, false
}

type detailedError struct {
	sentinel error
	msg      string
}

func (e *detailedError) Error() string { return e.msg }
func (e *detailedError) Unwrap() error { return e.sentinel }
