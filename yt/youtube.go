package yt

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/kkdai/youtube/v2"
)

// SaveStream writes the given format of video to folder/filename, creating
// the folder and any missing parents first. An existing file is truncated.
func SaveStream(ctx context.Context, src Source, video *youtube.Video, format *youtube.Format, folder, filename string) (*Result, error) {
	path := filepath.Join(folder, filename)

	if err := ensureFolder(folder); err != nil {
		return nil, &DownloadError{Path: path, Err: err}
	}

	stream, _, err := src.GetStreamContext(ctx, video, format)
	if err != nil {
		return nil, &DownloadError{Path: path, Err: err}
	}
	defer stream.Close()

	file, err := os.Create(path)
	if err != nil {
		return nil, &DownloadError{Path: path, Err: err}
	}

	// partial files are left in place
	n, err := io.Copy(file, stream)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, &DownloadError{Path: path, Err: err}
	}

	return &Result{Video: video, Format: format, Path: path, Bytes: n}, nil
}

// ensureFolder creates folder if it does not exist yet
func ensureFolder(folder string) error {
	if _, err := os.Stat(folder); os.IsNotExist(err) {
		return os.MkdirAll(folder, 0o755)
	}
	return nil
}
