package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// MustLoad reads configuration from a .env file if present, otherwise from
// the environment. Missing optional values fall back to local defaults.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", ":8080")
	viper.SetDefault("migrations_path", "migrations")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("app_env", EnvLocal)

	return &Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{RunAddress: viper.GetString("run_address")},
		Logger: Logger{LogLevel: viper.GetString("log_level")},
	}
}
