package config

import "github.com/joho/godotenv"

type Config interface {
	EnvConfig
	ClientConfig
}

type EnvConfig interface {
	GetAppName() string
	GetDataFolder() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Client
}

func New() Config {
	// Optional .env for local development; real env vars win when both are set.
	_ = godotenv.Load()
	return mainConfig{}
}
