package model

import (
	"errors"
)

var (
	// ErrUnknownContentLength is returned when a download response does not
	// include a Content-Length header, so progress can't be reported.
	ErrUnknownContentLength = errors.New("unknown content length")
)
