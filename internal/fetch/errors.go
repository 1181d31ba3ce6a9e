package fetch

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures
type ErrorKind int

const (
	// KindNone means no failure
	KindNone ErrorKind = iota
	// KindDownload covers both network and decode failures
	KindDownload
	// KindSave means the image was decoded but could not be persisted
	KindSave
)

// String returns the user-facing name of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindDownload:
		return "download error"
	case KindSave:
		return "save error"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against *Error
var (
	ErrDownload = errors.New("download error")
	ErrSave     = errors.New("save error")
)

// Error is returned by the pipeline for every failure
type Error struct {
	Kind ErrorKind
	URL  string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == KindSave {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel matching e.Kind
func (e *Error) Is(target error) bool {
	switch target {
	case ErrDownload:
		return e.Kind == KindDownload
	case ErrSave:
		return e.Kind == KindSave
	}
	return false
}

// KindOf returns the failure kind carried by err. Errors that did not come
// from the pipeline are reported as download errors.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindDownload
}

func downloadError(url string, err error) *Error {
	return &Error{Kind: KindDownload, URL: url, Err: err}
}

func saveError(url, path string, err error) *Error {
	return &Error{Kind: KindSave, URL: url, Path: path, Err: err}
}
