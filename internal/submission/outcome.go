package submission

import "github.com/nvquaan/con-bo-cham-chi/internal/attendance"

// Kind classifies the terminal result of one submission attempt.
type Kind int

const (
	KindSuccess Kind = iota
	// KindInvalidTime: the time failed validation, nothing was sent.
	KindInvalidTime
	// KindMissingCredentials: basic auth or access token is empty, nothing was sent.
	KindMissingCredentials
	// KindHTTP: the server answered with a non-2xx status.
	KindHTTP
	// KindApplication: 2xx response whose resultCode is not 1.
	KindApplication
	// KindTransport: the request failed or the body could not be parsed.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindInvalidTime:
		return "invalid-time"
	case KindMissingCredentials:
		return "missing-credentials"
	case KindHTTP:
		return "http-error"
	case KindApplication:
		return "application-error"
	case KindTransport:
		return "transport-error"
	default:
		return "unknown"
	}
}

const (
	msgMissingCredentials = "configure basic auth and access token before submitting"
	msgApplicationFailed  = "attendance submission failed"
	msgTransportFailed    = "network problem while submitting attendance"
)

// Outcome is the result of Service.Submit. Message is empty on success.
type Outcome struct {
	Kind       Kind
	Payload    attendance.Payload
	Time       string
	EventKind  attendance.EventKind
	StatusCode int
	Message    string
}

// OK reports whether the submission was accepted.
func (o Outcome) OK() bool {
	return o.Kind == KindSuccess
}

// Sent reports whether a request reached the network.
func (o Outcome) Sent() bool {
	switch o.Kind {
	case KindSuccess, KindHTTP, KindApplication, KindTransport:
		return true
	}
	return false
}

// NeedsCredentials reports whether the caller should surface the
// credential settings.
func (o Outcome) NeedsCredentials() bool {
	return o.Kind == KindMissingCredentials
}
