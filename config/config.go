package config

import "os"

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	GCSBucket string

	GenAIProject  string
	GenAILocation string
}

func LoadConfig() Config {
	return Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "rx_education"),

		JWTSecret: getenv("JWT_SECRET", "dev_secret"),

		GCSBucket: getenv("GCS_BUCKET", "rx-education-videos"),

		GenAIProject:  os.Getenv("GENAI_PROJECT"),
		GenAILocation: getenv("GENAI_LOCATION", "global"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
