package yt

import (
	"context"
	"io"
	"time"

	"github.com/kkdai/youtube/v2"
)

// Request is a single download invocation
type Request struct {
	URL        string
	Folder     string
	Filename   string
	AudioOnly  bool
	Resolution string
}

// Source resolves videos and opens format streams. *youtube.Client satisfies it.
type Source interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetStreamContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error)
}

// MetadataCache stores serialized video metadata between runs
type MetadataCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Result describes a finished download
type Result struct {
	Video  *youtube.Video
	Format *youtube.Format
	Path   string
	Bytes  int64
}
