package config

import (
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds all process-wide settings. It is built once at startup and
// passed by pointer; nothing mutates it afterwards.
type Config struct {
	Port        int    `env:"PORT,default=8080"`
	PostgresURL string `env:"POSTGRES_URL,required"`
	Secret      string `env:"SECRET,required"`
	ServerURL   string `env:"SERVER_URL,default=http://localhost:8080"`
	StaticDir   string `env:"STATIC_DIR,default=./static"`

	Email         string `env:"EMAIL"`
	EmailPassword string `env:"EMAIL_PASSWORD"`
	MailHost      string `env:"MAIL_HOST,default=smtp.gmail.com"`
	MailPort      int    `env:"MAIL_PORT,default=465"`
}

// Load reads a .env file when one is present, then decodes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
