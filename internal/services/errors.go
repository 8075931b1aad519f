package services

import "fmt"

// Platform error code pair that means the access token is dead. Any other
// 401 is treated as a plain rejection the operator can retry.
const (
	platformCodeAuth       = 190
	platformSubcodeExpired = 463
)

// ValidationError is a local failure: a required field for the current
// step is missing or out of range. It blocks submission and never reaches
// the network.
type ValidationError struct {
	Step    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed at %s step: %s", e.Step, e.Message)
}

// SessionExpiredError aborts the workflow outright: the platform reported
// the credential pair is no longer valid and every later call would fail
// the same way.
type SessionExpiredError struct {
	Code    int
	Subcode int
}

func (e *SessionExpiredError) Error() string {
	return fmt.Sprintf("platform session expired (code %d, subcode %d)", e.Code, e.Subcode)
}

// RemoteRejectionError is any other non-2xx creation response. Message
// holds the most specific text available: platform message, then generic
// message, then a fallback. The step is not advanced and the operator may
// edit and resubmit.
type RemoteRejectionError struct {
	StatusCode int
	Message    string
	Code       int
	Subcode    int
}

func (e *RemoteRejectionError) Error() string {
	return fmt.Sprintf("platform rejected the request (%d): %s", e.StatusCode, e.Message)
}

// MalformedResponseError is a 2xx response without a recognizable
// identifier under any known envelope shape.
type MalformedResponseError struct {
	Endpoint string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("response from %s contains no resource identifier", e.Endpoint)
}

// TransientNetworkError wraps a transport failure. No automatic retry: a
// retry is a fresh resubmission of the same step by the operator.
type TransientNetworkError struct {
	Err error
}

func (e *TransientNetworkError) Error() string {
	return fmt.Sprintf("ads platform unreachable: %v", e.Err)
}

func (e *TransientNetworkError) Unwrap() error { return e.Err }
