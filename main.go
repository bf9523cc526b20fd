package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"Ytgrab/commands"
	"Ytgrab/config"
	"Ytgrab/db_client"
	"Ytgrab/redis_client"
	"Ytgrab/yt"

	"github.com/Strum355/log"
	"github.com/kkdai/youtube/v2"
	"github.com/spf13/viper"
)

func main() {
	// Logs go to stderr, stdout is reserved for the result message
	log.InitSimpleLogger(&log.Config{Output: os.Stderr})

	config.InitConfig()
	if viper.GetBool("log.json") {
		log.InitJSONLogger(&log.Config{Output: os.Stderr})
	}

	os.Exit(run(os.Args[1:], os.Stdout, &youtube.Client{}))
}

// run performs a single download and returns the process exit status
func run(args []string, stdout io.Writer, src yt.Source) int {
	req, err := commands.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stdout, commands.Usage)
		return 1
	}

	ctx := context.WithValue(context.Background(), log.Key, log.Fields{
		"url":        req.URL,
		"audio_only": strconv.FormatBool(req.AudioOnly),
		"resolution": req.Resolution,
	})

	var cache yt.MetadataCache
	if c := openCache(ctx); c != nil {
		defer c.Close()
		cache = c
	}
	var history yt.HistoryRecorder
	if h := openHistory(); h != nil {
		defer h.Close()
		history = h
	}

	ym := yt.NewYouTubeManager(src, cache, history)
	_, err = ym.Download(ctx, req)
	commands.Report(ctx, stdout, err)

	return 0
}

// openCache connects the metadata cache when redis.address is set
func openCache(ctx context.Context) *redis_client.Cache {
	addr := viper.GetString("redis.address")
	if addr == "" {
		return nil
	}
	cache, err := redis_client.NewCache(ctx, addr)
	if err != nil {
		log.WithError(err).Error("Metadata cache unavailable, continuing without it")
		return nil
	}
	return cache
}

// openHistory connects the download history when history.dsn is set
func openHistory() *db_client.History {
	dsn := viper.GetString("history.dsn")
	if dsn == "" {
		return nil
	}
	history, err := db_client.Open(dsn, viper.GetInt("history.connect_attempts"))
	if err != nil {
		log.WithError(err).Error("Download history unavailable, continuing without it")
		return nil
	}
	return history
}
