// Package faults defines the typed error taxonomy for the gasless transfer flow.
package faults

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a flow failure. The caller uses it to pick
// a remediation path, so every failure returned by the coordinator carries one.
type Kind string

const (
	// KindMalformedIntent means the raw instruction did not match the
	// transfer pattern. User-correctable.
	KindMalformedIntent Kind = "malformed_intent"

	// KindChainRead means an on-chain read (allowance, balance) failed.
	// Fatal for the run; a stale read must never be assumed good.
	KindChainRead Kind = "chain_read_error"

	// KindFundingRejected means the funding service returned a non-success status.
	KindFundingRejected Kind = "funding_request_rejected"

	// KindFundingTimeout means the balance wait exhausted its attempt budget.
	KindFundingTimeout Kind = "funding_timeout"

	// KindSignerRejected means the wallet signer declined or was unavailable.
	KindSignerRejected Kind = "signer_rejected"

	// KindSubmission means a transaction broadcast failed after signing.
	// Surfaced distinctly from KindSignerRejected: the on-chain outcome is
	// ambiguous and gas may have been partially consumed.
	KindSubmission Kind = "submission_error"

	// KindRelay means the relay service returned a non-success response.
	KindRelay Kind = "relay_error"
)

// Fault pairs a Kind with the underlying error. It is the only error type the
// coordinator returns to its caller.
type Fault struct {
	Kind Kind
	Err  error
}

func (f *Fault) Error() string {
	if f.Err == nil {
		return string(f.Kind)
	}
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// New creates a Fault of the given kind wrapping err. A nil err is allowed
// for failures that carry no underlying cause (e.g. a timeout).
func New(kind Kind, err error) *Fault {
	return &Fault{Kind: kind, Err: err}
}

// Errorf creates a Fault of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *Fault {
	return &Fault{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the Kind from err, or "" if err is not a Fault.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// Is reports whether err is a Fault of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
