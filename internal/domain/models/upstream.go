package models

import (
	"encoding/json"
	"time"
)

// AuthPolicy decides what happens when a request carries no session token.
type AuthPolicy int

const (
	// AuthRequired fails closed with 401.
	AuthRequired AuthPolicy = iota
	// AuthFallback substitutes the configured fallback token.
	AuthFallback
)

func (p AuthPolicy) String() string {
	if p == AuthFallback {
		return "fallback"
	}
	return "required"
}

// TimeoutClass names a configured upstream time budget.
type TimeoutClass string

const (
	TimeoutFast     TimeoutClass = "fast"
	TimeoutProxy    TimeoutClass = "proxy"
	TimeoutStandard TimeoutClass = "standard"
	TimeoutHeavy    TimeoutClass = "heavy"
)

// Endpoint describes one upstream operation and the policies that apply to it.
type Endpoint struct {
	Name         string
	Method       string
	Timeout      TimeoutClass
	Auth         AuthPolicy
	MockFallback bool // degrade HTTP errors to a placeholder payload
	Cacheable    bool
}

// UpstreamRequest is one outbound call. Body is sent as JSON when non-nil.
type UpstreamRequest struct {
	Endpoint  string
	Method    string
	Body      json.RawMessage
	Timeout   time.Duration
	Cacheable bool
}

// ResultKind tags an UpstreamResult.
type ResultKind int

const (
	ResultOK ResultKind = iota
	ResultHTTPError
	ResultTimeout
	ResultNetworkError
	ResultFallback
)

func (k ResultKind) String() string {
	switch k {
	case ResultOK:
		return "ok"
	case ResultHTTPError:
		return "http_error"
	case ResultTimeout:
		return "timeout"
	case ResultNetworkError:
		return "network_error"
	case ResultFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// UpstreamResult is the classified outcome of an upstream call.
//
//	OK           Body holds the 2xx response
//	HTTPError    Status and Body hold the non-2xx reply (diagnostics only)
//	Timeout      Budget holds the exceeded time budget
//	NetworkError Message describes the transport failure
//	Fallback     the HTTP error was replaced by a placeholder payload
type UpstreamResult struct {
	Kind    ResultKind
	Status  int
	Body    []byte
	Message string
	Budget  time.Duration
	Elapsed time.Duration
}

// OK reports whether the call returned 2xx.
func (r UpstreamResult) OK() bool { return r.Kind == ResultOK }
