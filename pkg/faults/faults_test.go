package faults

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFaultError(t *testing.T) {
	f := New(KindRelay, errors.New("status 502"))
	assert.Equal(t, "relay_error: status 502", f.Error())

	// A fault without an underlying cause prints only the kind
	timeout := New(KindFundingTimeout, nil)
	assert.Equal(t, "funding_timeout", timeout.Error())
}

func TestKindOf(t *testing.T) {
	f := Errorf(KindSignerRejected, "user declined in wallet")
	assert.Equal(t, KindSignerRejected, KindOf(f))
	assert.True(t, Is(f, KindSignerRejected))
	assert.False(t, Is(f, KindSubmission))

	// Kind survives wrapping
	wrapped := fmt.Errorf("run aborted: %w", f)
	assert.Equal(t, KindSignerRejected, KindOf(wrapped))

	// Non-fault errors have no kind
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	f := New(KindChainRead, cause)
	assert.True(t, errors.Is(f, cause))
}
