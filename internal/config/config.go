package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Timezone   string     `yaml:"timezone" env:"HUB_TIMEZONE" env-default:"Local"`
	SiteURL    string     `yaml:"site_url" env:"HUB_SITE_URL" env-default:"http://localhost:8080"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	Database   Database   `yaml:"database"`
	Relay      Relay      `yaml:"relay"`
	Preview    Preview    `yaml:"preview"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Storage selects where published events come from. Driver is "file" or
// "postgres"; links are always read from LinksPath.
type Storage struct {
	Driver          string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	EventsPath      string `yaml:"events_path" env:"EVENTS_PATH" env-default:"./data/events.json"`
	LinksPath       string `yaml:"links_path" env:"LINKS_PATH" env-default:"./data/links.yaml"`
	RefreshSchedule string `yaml:"refresh_schedule" env-default:"@every 5m"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"poehub"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

// Relay holds the email relay credentials. EventTemplateID may be empty, in
// which case suggestions go out through the contact template.
type Relay struct {
	BaseURL           string        `yaml:"base_url" env:"EMAILJS_BASE_URL" env-default:"https://api.emailjs.com"`
	ServiceID         string        `yaml:"service_id" env:"EMAILJS_SERVICE_ID"`
	PublicKey         string        `yaml:"public_key" env:"EMAILJS_PUBLIC_KEY"`
	EventTemplateID   string        `yaml:"event_template_id" env:"EMAILJS_EVENT_TEMPLATE_ID"`
	ContactTemplateID string        `yaml:"contact_template_id" env:"EMAILJS_TEMPLATE_ID"`
	Timeout           time.Duration `yaml:"timeout" env-default:"10s"`
}

type Preview struct {
	Debounce    time.Duration     `yaml:"debounce" env-default:"300ms"`
	DefaultGame string            `yaml:"default_game" env-default:"poe1"`
	Logos       map[string]string `yaml:"logos"`
	DialogTTL   time.Duration     `yaml:"dialog_ttl" env-default:"30m"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}

// Location resolves Timezone, falling back to the process zone for "Local"
// or an empty value.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}

	return time.LoadLocation(c.Timezone)
}
