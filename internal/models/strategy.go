package models

import (
	"context"

	"github.com/saveloop/saveloop/internal/extract"
)

// PlatformInfo contains static information about a platform strategy.
type PlatformInfo struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

// DownloadRequest is everything a strategy needs for one attempt: the
// target, destination, requested quality, and the caller's option
// overrides, which take precedence over the strategy's own defaults.
type DownloadRequest struct {
	URL     string
	Dir     string
	Quality string
	Kind    ContentType
	Extra   *extract.Options
	Hooks   extract.Hooks
}

// Strategy defines the contract every platform connector must implement.
// Download returns the path of the finished file, or extract.ErrCancelled
// when the request's cancel hook fired mid-transfer.
type Strategy interface {
	Info() PlatformInfo
	Download(ctx context.Context, req DownloadRequest) (string, error)
}
