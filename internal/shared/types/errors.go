package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrUnauthorized       = errors.New("not authorized")
	ErrInvalidState       = errors.New("invalid state code")
)

// MissingCredentialsError lists the environment variables that were not set.
type MissingCredentialsError struct {
	Names []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("%s: %s must be set", ErrMissingCredentials, strings.Join(e.Names, ", "))
}

func (e *MissingCredentialsError) Unwrap() error {
	return ErrMissingCredentials
}

// TransportError reports a failed request for one page of a collection.
// Page is -1 for requests that are not paginated.
type TransportError struct {
	Resource   string
	Page       int
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	where := e.Resource
	if e.Page >= 0 {
		where = fmt.Sprintf("%s page %d", e.Resource, e.Page)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", where, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", where, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// LookupError is the failure of one per-parent lookup. It never aborts the others.
type LookupError struct {
	ParentID   string
	ParentName string
	Err        error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup for %s (ID: %s) failed: %v", e.ParentName, e.ParentID, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
