package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// StoreLinks holds the app-store URLs for one of the two mobile apps.
type StoreLinks struct {
	AppStore  string
	PlayStore string
}

// Config holds all process-wide configuration. It is loaded once in main
// and passed to the packages that need it; nothing reads the environment
// after startup.
type Config struct {
	Addr       string
	APIBaseURL string
	SiteURL    string
	ContentDir string
	DevMode    bool

	UserApp   StoreLinks
	DriverApp StoreLinks
}

// Load reads configuration from the environment, consulting a local .env
// file when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, relying on environment variables")
	}

	port := os.Getenv("RIDEMIO_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		Addr:       ":" + port,
		APIBaseURL: strings.TrimRight(strings.TrimSpace(os.Getenv("RIDEMIO_API_BASE_URL")), "/"),
		SiteURL:    strings.TrimRight(strings.TrimSpace(os.Getenv("RIDEMIO_SITE_URL")), "/"),
		ContentDir: strings.TrimSpace(os.Getenv("RIDEMIO_CONTENT_DIR")),
		DevMode:    os.Getenv("RIDEMIO_WEB_DEV") != "" || os.Getenv("DEV") != "",
		UserApp: StoreLinks{
			AppStore:  os.Getenv("RIDEMIO_USER_APP_APPSTORE"),
			PlayStore: os.Getenv("RIDEMIO_USER_APP_PLAYSTORE"),
		},
		DriverApp: StoreLinks{
			AppStore:  os.Getenv("RIDEMIO_DRIVER_APP_APPSTORE"),
			PlayStore: os.Getenv("RIDEMIO_DRIVER_APP_PLAYSTORE"),
		},
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = "content"
	}
	return cfg
}
