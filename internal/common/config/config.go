package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	API struct {
		// Base URL of the food-ordering backend.
		BaseURL string `env:"API_URL" envDefault:"http://127.0.0.1:10000"`
	}

	Telegram struct {
		// BotToken enables the advisory client-side init-data check and the
		// mock server's authoritative validation. The client works without it;
		// the backend remains the trust boundary either way.
		BotToken string `env:"BOT_TOKEN"`
		// InitData is the raw init-data string handed to the CLI bridge, the
		// way an embedded Mini-App host would inject it at launch.
		InitData string `env:"TELEGRAM_INIT_DATA"`
	}

	Storage struct {
		// SessionFile is where the file-backed storage keeps the session and
		// cart between runs.
		SessionFile string `env:"SESSION_FILE" envDefault:".foodbot/session.json"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Server struct {
		Port   int    `env:"PORT" envDefault:"10000"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// .env file is optional; production sets variables directly
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
