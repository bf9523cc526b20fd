package yt

import (
	"errors"

	"github.com/kkdai/youtube/v2"
)

// ErrNoMatchingStream is returned when no format satisfies the request
var ErrNoMatchingStream = errors.New("no stream matches the requested resolution and container")

// ResolutionError wraps a failure to turn a URL into video metadata
type ResolutionError struct {
	URL string
	Err error
}

func (e *ResolutionError) Error() string {
	return e.Err.Error()
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// DownloadError wraps a failure while transferring the selected stream
type DownloadError struct {
	Path string
	Err  error
}

func (e *DownloadError) Error() string {
	return e.Err.Error()
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// ResolutionCategory labels a resolution failure for logging
func ResolutionCategory(err error) string {
	switch {
	case errors.Is(err, youtube.ErrLoginRequired),
		errors.Is(err, youtube.ErrVideoPrivate),
		errors.Is(err, youtube.ErrNotPlayableInEmbed):
		return "restricted"
	case errors.Is(err, youtube.ErrInvalidCharactersInVideoID),
		errors.Is(err, youtube.ErrVideoIDMinLength):
		return "invalid_url"
	}

	var statusErr *youtube.ErrPlayabiltyStatus
	if errors.As(err, &statusErr) {
		return "restricted"
	}

	return "network"
}
