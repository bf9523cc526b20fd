package config

import (
	"os"
	"strings"

	"github.com/Strum355/log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvFileVar names the variable that points at an alternative .env file
const EnvFileVar = "YTGRAB_ENV"

// InitConfig loads an optional env file, ".env" unless YTGRAB_ENV is set, and
// binds environment variables so that "redis.address" is read from REDIS_ADDRESS.
// Variables already present in the environment win over the file.
func InitConfig() {
	envFile := os.Getenv(EnvFileVar)
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Info("No " + envFile + " file found, proceeding with defaults.")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	initDefaults()
	viper.AutomaticEnv()
}
