package yt

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Strum355/log"
	"github.com/kkdai/youtube/v2"
)

func TestMain(m *testing.M) {
	log.InitSimpleLogger(&log.Config{Output: io.Discard})
	m.Run()
}

func testContext() context.Context {
	return context.WithValue(context.Background(), log.Key, log.Fields{"test": true})
}

const testVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func testFormats() youtube.FormatList {
	return youtube.FormatList{
		{ItagNo: 18, MimeType: `video/mp4; codecs="avc1.42001E, mp4a.40.2"`, QualityLabel: "360p", AudioChannels: 2},
		{ItagNo: 22, MimeType: `video/mp4; codecs="avc1.64001F, mp4a.40.2"`, QualityLabel: "720p", AudioChannels: 2},
		{ItagNo: 247, MimeType: `video/webm; codecs="vp9"`, QualityLabel: "720p"},
		{ItagNo: 136, MimeType: `video/mp4; codecs="avc1.4d401f"`, QualityLabel: "720p"},
		{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, AudioChannels: 2},
		{ItagNo: 251, MimeType: `audio/webm; codecs="opus"`, AudioChannels: 2},
	}
}

type fakeSource struct {
	video      *youtube.Video
	resolveErr error
	streamErr  error
	body       string

	resolveCalls int
	streamed     []int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		video: &youtube.Video{ID: "dQw4w9WgXcQ", Title: "Test Video", Duration: 212 * time.Second, Formats: testFormats()},
		body:  "media-bytes",
	}
}

func (f *fakeSource) GetVideoContext(ctx context.Context, url string) (*youtube.Video, error) {
	f.resolveCalls++
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.video, nil
}

func (f *fakeSource) GetStreamContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error) {
	if f.streamErr != nil {
		return nil, 0, f.streamErr
	}
	f.streamed = append(f.streamed, format.ItagNo)
	return io.NopCloser(strings.NewReader(f.body)), int64(len(f.body)), nil
}

type fakeCache struct {
	values map[string]string
	ttls   map[string]time.Duration
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", errors.New("miss")
	}
	return v, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.values[key] = string(value)
	c.ttls[key] = ttl
	return nil
}

type fakeHistory struct {
	records []*Result
	err     error
}

func (h *fakeHistory) Record(ctx context.Context, req *Request, res *Result) error {
	h.records = append(h.records, res)
	return h.err
}
