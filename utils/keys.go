package utils

// MetadataKey returns the cache key for a video's metadata
func MetadataKey(videoID string) string {
	return "ytmeta:" + videoID
}
