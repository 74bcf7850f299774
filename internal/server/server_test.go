package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/billfeed/billfeed/internal/common"
)

func TestParseIDs(t *testing.T) {
	ws, actor, err := parseIDs("7b2f1a44-9c1e-4a31-8d7e-0a8f6f0a9b10", " actor-1 ")
	assert.NoError(t, err)
	assert.Equal(t, "7b2f1a44-9c1e-4a31-8d7e-0a8f6f0a9b10", ws.String())
	assert.Equal(t, "actor-1", actor)

	_, _, err = parseIDs("not-a-uuid", "actor-1")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, _, err = parseIDs("7b2f1a44-9c1e-4a31-8d7e-0a8f6f0a9b10", "")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestMapSubmitError(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{common.ErrUnsupportedFormat, codes.InvalidArgument},
		{common.ErrInvalidInput, codes.InvalidArgument},
		{common.ErrUnauthorized, codes.PermissionDenied},
		{common.ErrInsufficientBalance, codes.FailedPrecondition},
		{common.ErrDuplicateFile, codes.AlreadyExists},
		{errors.New("anything else"), codes.Internal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, status.Code(mapSubmitError(tc.err)), tc.err.Error())
	}
}

func TestRequireActor(t *testing.T) {
	assert.NoError(t, requireActor("actor-1"))
	assert.Equal(t, codes.InvalidArgument, status.Code(requireActor("")))
	assert.Equal(t, codes.InvalidArgument, status.Code(requireActor("   ")))
}
