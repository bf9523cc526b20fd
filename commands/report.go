package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"Ytgrab/yt"

	"github.com/Strum355/log"
)

const (
	msgDownloaded   = "Downloaded finish"
	msgNoResolution = "Resolution availability error."
)

// Report prints the outcome of a download run to w
func Report(ctx context.Context, w io.Writer, err error) {
	var (
		resErr *yt.ResolutionError
		dlErr  *yt.DownloadError
	)

	switch {
	case err == nil:
		fmt.Fprintln(w, msgDownloaded)
	case errors.As(err, &resErr):
		log.WithContext(ctx).WithError(err).Error("Resolution failed (" + yt.ResolutionCategory(err) + ")")
		fmt.Fprintf(w, "Failed to fetch video: %v\n", resErr)
	case errors.Is(err, yt.ErrNoMatchingStream):
		log.WithContext(ctx).Info("No matching stream")
		fmt.Fprintln(w, msgNoResolution)
	case errors.As(err, &dlErr):
		log.WithContext(ctx).WithError(err).Error("Download failed")
		fmt.Fprintf(w, "Download failed: %v\n", dlErr)
	default:
		log.WithContext(ctx).WithError(err).Error("Download failed")
		fmt.Fprintf(w, "Download failed: %v\n", err)
	}
}
