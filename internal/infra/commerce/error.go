package commerce

import (
	"errors"

	"storefront-checkout/internal/pkg/errs"
)

type GatewayErrorKind string

// Gateway error kinds. Rejected carries a backend-provided message that is
// safe to surface verbatim; Unavailable covers transport failures and is
// always retryable.
const (
	KindNotFound    GatewayErrorKind = "NOT_FOUND"
	KindRejected    GatewayErrorKind = "REJECTED"
	KindUnavailable GatewayErrorKind = "UNAVAILABLE"
	KindBadResponse GatewayErrorKind = "BAD_RESPONSE"
)

type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

// Message is the user-presentable text: the backend's own words for
// rejections, a generic fallback otherwise.
func (e GatewayError) Message() string {
	return e.msg
}

func wrapGatewayErr(kind GatewayErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return GatewayError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// RejectionMessage extracts the backend's message from a REJECTED error.
func RejectionMessage(err error) (string, bool) {
	var e GatewayError
	if errors.As(err, &e) && e.Kind == KindRejected {
		return e.msg, true
	}
	return "", false
}
