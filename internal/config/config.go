package config

import "github.com/kelseyhightower/envconfig"

// Config holds everything the process reads from the environment. Load
// it once in main and pass it down; no other package touches os.Getenv.
type Config struct {
	Addr        string `envconfig:"ADDR" default:":8080"`
	MongoURI    string `envconfig:"MONGODB_URI" required:"true"`
	MongoDb     string `envconfig:"MONGODB_DB" default:"friendlyeats"`
	TokenSecret string `envconfig:"TOKEN_SECRET" required:"true"`
}

func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
