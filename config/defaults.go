package config

import (
	"os"

	"github.com/spf13/viper"
)

func initDefaults() {
	viper.SetDefault("log.json", false)
	viper.SetDefault("stream.container", "mp4")
	viper.SetDefault("redis.address", os.Getenv("redis_address"))
	viper.SetDefault("cache.youtube", 3600)
	viper.SetDefault("history.dsn", os.Getenv("history_dsn"))
	viper.SetDefault("history.connect_attempts", 3)
}
