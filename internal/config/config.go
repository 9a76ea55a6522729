package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type Security struct {
	JWTKey string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
}

type Gemini struct {
	APIKey      string `yaml:"GEMINI_API_KEY" env:"GEMINI_API_KEY" env-default:""`
	Model       string `yaml:"GEMINI_MODEL" env:"GEMINI_MODEL" env-default:"gemini-2.5-flash-image"`
	AspectRatio string `yaml:"GEMINI_ASPECT_RATIO" env:"GEMINI_ASPECT_RATIO" env-default:"3:4"`
}

type Enrichment struct {
	// Number of concurrent image-generation requests during the startup
	// batch. 1 keeps the batch strictly sequential.
	Workers int  `yaml:"ENRICHMENT_WORKERS" env:"ENRICHMENT_WORKERS" env-default:"1"`
	Enabled bool `yaml:"ENRICHMENT_ENABLED" env:"ENRICHMENT_ENABLED" env-default:"true"`
}

type SendGrid struct {
	APIKey    string `yaml:"SENDGRID_API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"SENDGRID_FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"orders@glamzz.example"`
	FromName  string `yaml:"SENDGRID_FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"GLAMZZ Fashion Hub"`
}

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer `yaml:"http_server"`
	Security   Security   `yaml:"security"`
	Gemini     Gemini     `yaml:"gemini"`
	Enrichment Enrichment `yaml:"enrichment"`
	SendGrid   SendGrid   `yaml:"sendgrid"`
}

func MustLoad() *Config {

	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {

			log.Fatal("Config path is not set")

		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)

	if err != nil {

		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg

}
