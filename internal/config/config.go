package config

import "os"

type Config struct {
	Port     string
	MongoURI string
	DBName   string
	AppEnv   string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:     get("PORT", "3000"),
		MongoURI: get("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:   get("DB_NAME", "omeh-high-school"),
		AppEnv:   get("APP_ENV", "development"),
	}
}
