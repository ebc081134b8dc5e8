// /internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"info_channels.json"`

	InfoAPIURL        string `env:"INFO_API_URL" envDefault:"http://raw.thug4ff.com/info"`
	OutfitAPIURL      string `env:"OUTFIT_API_URL" envDefault:"https://genprofile-24nr.onrender.com/api/profile"`
	ProfileCardAPIURL string `env:"PROFILE_CARD_API_URL" envDefault:"https://genprofile-24nr.onrender.com/api/profile_card"`

	UpstreamTimeout  time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`
	ImageComposition bool          `env:"IMAGE_COMPOSITION" envDefault:"true"`

	InitSlashCommands bool `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatal(err)
	}
	return cfg
}
