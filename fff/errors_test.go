package fff

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Kind(t *testing.T) {
	errs := []error{
		&APIError{StatusCode: 500, Message: "Internal Server Error"},
		&NotFoundError{Resource: "match", ID: 1},
		&InvalidIdentifierError{Resource: "club", Value: "0"},
		&ConnectionError{URL: "http://x", Err: errors.New("refused")},
		&MalformedResponseError{URL: "http://x", Reason: "body is not valid JSON"},
	}

	for _, err := range errs {
		t.Run(fmt.Sprintf("%T", err), func(t *testing.T) {
			assert.ErrorIs(t, err, ErrFFF)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrFFF)
			assert.NotErrorIs(t, err, ErrClientClosed)
		})
	}

	assert.NotErrorIs(t, errors.New("other"), ErrFFF)
}

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&APIError{StatusCode: 503, Message: "Service Unavailable"}, "fff API error: status 503: Service Unavailable"},
		{&NotFoundError{Resource: "club", ID: 9}, "fff: club 9 not found"},
		{&InvalidIdentifierError{Resource: "match", Value: "-3"}, `fff: invalid match number "-3": must be a positive integer`},
		{&ConnectionError{URL: "http://x/a", Timeout: true, Err: context.DeadlineExceeded}, "fff: timeout connecting to http://x/a: context deadline exceeded"},
		{&ConnectionError{URL: "http://x/a", Err: errors.New("refused")}, "fff: unable to connect to http://x/a: refused"},
		{&MalformedResponseError{URL: "http://x/a", Reason: "empty"}, "fff: malformed response from http://x/a: empty"},
		{&MalformedResponseError{URL: "http://x/a", Reason: "bad", Err: errors.New("eof")}, "fff: malformed response from http://x/a: bad: eof"},
	}

	for _, tt := range tests {
		assert.EqualError(t, tt.err, tt.want)
	}
}

func TestErrors_Helpers(t *testing.T) {
	timeout := fmt.Errorf("get: %w", &ConnectionError{Timeout: true, Err: context.DeadlineExceeded})
	assert.True(t, IsTimeout(timeout))
	assert.ErrorIs(t, timeout, context.DeadlineExceeded)
	assert.False(t, IsTimeout(&ConnectionError{Err: errors.New("refused")}))
	assert.False(t, IsTimeout(context.DeadlineExceeded))

	assert.True(t, IsInvalidIdentifier(&InvalidIdentifierError{}))
	assert.False(t, IsInvalidIdentifier(&APIError{}))

	assert.True(t, (&APIError{StatusCode: 502}).IsServerError())
	assert.False(t, (&APIError{StatusCode: 429}).IsServerError())
}
