package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBHost     string `env:"DB_HOST,required"` // e.g. tcp(host:3306) or unix(/cloudsql/instance)
	DBName     string `env:"DB_NAME,required"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`

	// Prefer the Cloud SQL unix socket when set.
	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`

	// Image hosting bucket. Uploads are disabled when empty.
	StorageBucket string `env:"STORAGE_BUCKET"`

	// Zero-shot classification (Hugging Face inference API).
	HFAPIKey string `env:"HF_API_KEY,required"`
	HFModel  string `env:"HF_MODEL" envDefault:"facebook/bart-large-mnli"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
