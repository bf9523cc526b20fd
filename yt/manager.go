package yt

import (
	"context"
	"encoding/json"
	"time"

	"Ytgrab/utils"

	"github.com/Strum355/log"
	"github.com/dustin/go-humanize"
	"github.com/kkdai/youtube/v2"
	"github.com/spf13/viper"
)

const (
	defaultContainer = "mp4"

	// Stream URLs in cached metadata are signed and expire after about six hours
	maxMetadataTTL = 5 * time.Hour
)

// HistoryRecorder persists finished downloads
type HistoryRecorder interface {
	Record(ctx context.Context, req *Request, res *Result) error
}

type YouTubeManager struct {
	source       Source
	cache        MetadataCache
	history      HistoryRecorder
	cacheYoutube time.Duration
	container    string
}

// NewYouTubeManager creates a YouTubeManager. cache and history may be nil.
func NewYouTubeManager(src Source, cache MetadataCache, history HistoryRecorder) *YouTubeManager {
	container := viper.GetString("stream.container")
	if container == "" {
		container = defaultContainer
	}
	ttl := time.Duration(viper.GetInt("cache.youtube")) * time.Second
	if ttl > maxMetadataTTL {
		log.Info("cache.youtube exceeds stream URL lifetime, capping at " + maxMetadataTTL.String())
		ttl = maxMetadataTTL
	}
	return &YouTubeManager{
		source:       src,
		cache:        cache,
		history:      history,
		cacheYoutube: ttl,
		container:    container,
	}
}

// GetVideoMetadata resolves a video URL, consulting the metadata cache first
func (ym *YouTubeManager) GetVideoMetadata(ctx context.Context, url string) (*youtube.Video, error) {
	videoID, idErr := youtube.ExtractVideoID(url)
	useCache := ym.cache != nil && idErr == nil

	// Try cache
	if useCache {
		cached, err := ym.cache.Get(ctx, utils.MetadataKey(videoID))
		if err == nil && cached != "" {
			var video youtube.Video
			if err := json.Unmarshal([]byte(cached), &video); err == nil {
				log.WithContext(ctx).Info("Using cached video metadata")
				return &video, nil
			}
		}
	}

	// Fetch from Youtube
	video, err := ym.source.GetVideoContext(ctx, url)
	if err != nil {
		return nil, &ResolutionError{URL: url, Err: err}
	}

	// Store in cache
	if useCache {
		data, _ := json.Marshal(video)
		if err := ym.cache.Set(ctx, utils.MetadataKey(videoID), data, ym.cacheYoutube); err != nil {
			log.WithContext(ctx).WithError(err).Error("Failed to cache video metadata")
		}
	}

	return video, nil
}

// Download resolves req.URL, selects one stream and saves it to disk
func (ym *YouTubeManager) Download(ctx context.Context, req *Request) (*Result, error) {
	video, err := ym.GetVideoMetadata(ctx, req.URL)
	if err != nil {
		return nil, err
	}
	log.WithContext(ctx).Info("Resolved " + video.Title + " (" + utils.FormatYtDuration(video.Duration) + ")")

	format := SelectStream(video.Formats, req, ym.container)
	if format == nil {
		return nil, ErrNoMatchingStream
	}

	res, err := SaveStream(ctx, ym.source, video, format, req.Folder, req.Filename)
	if err != nil {
		return nil, err
	}
	log.WithContext(ctx).Info("Wrote " + humanize.Bytes(uint64(res.Bytes)) + " to " + res.Path)

	if ym.history != nil {
		if err := ym.history.Record(ctx, req, res); err != nil {
			log.WithContext(ctx).WithError(err).Error("Failed to record download history")
		}
	}

	return res, nil
}
