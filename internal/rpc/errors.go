package rpc

import (
	"errors"
	"fmt"
)

// ErrRemoteQuery matches every *QueryError via errors.Is.
var ErrRemoteQuery = errors.New("remote query failed")

// ErrorKind classifies why a query failed.
type ErrorKind string

const (
	KindTransport ErrorKind = "transport" // connection refused, DNS, timeout
	KindHTTP      ErrorKind = "http"      // non-200 status
	KindRPC       ErrorKind = "rpc"       // JSON-RPC error object in the response
	KindDecode    ErrorKind = "decode"    // response body did not match the expected shape
	KindNotFound  ErrorKind = "not_found" // the server returned a null result
)

// QueryError is returned for every failed remote query.
type QueryError struct {
	Method  string
	Kind    ErrorKind
	Code    int    // JSON-RPC error code or HTTP status
	Message string // server-provided message, if any
	Err     error
}

func (e *QueryError) Error() string {
	switch e.Kind {
	case KindRPC:
		return fmt.Sprintf("%s: RPC error %d: %s", e.Method, e.Code, e.Message)
	case KindHTTP:
		return fmt.Sprintf("%s: HTTP %d", e.Method, e.Code)
	case KindNotFound:
		return fmt.Sprintf("%s: %s", e.Method, e.Message)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Method, e.Kind, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Method, e.Kind)
	}
}

func (e *QueryError) Unwrap() error { return e.Err }

func (e *QueryError) Is(target error) bool { return target == ErrRemoteQuery }

// IsRPCError reports whether err is a JSON-RPC error returned by the server,
// as opposed to a failure to reach it.
func IsRPCError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Kind == KindRPC
}
