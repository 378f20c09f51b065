package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	DefaultPort                = "8080"
	DefaultMongoDatabase       = "authdb"
	DefaultLoginTimeoutSeconds = 10
	DefaultBrowserCheckEnabled = true

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env                 string
	Port                string
	CognitoUserPoolID   string
	CognitoClientID     string
	CognitoClientSecret string
	AWSRegion           string
	MongoURI            string
	MongoDatabase       string
	BrowserCheckEnabled bool
	LoginTimeoutSeconds int
}

// Load reads config/.env.<env> (if present) and the environment, with
// environment variables taking precedence over file values. Missing required
// keys abort startup.
func Load() *Config {
	env := getEnv("ENV", EnvDevelopment)

	v := viper.New()
	v.SetConfigFile(filepath.Join("config", configFileName(env)))
	v.SetConfigType("env")
	_ = v.ReadInConfig() // the file is optional; env vars can carry everything

	v.AutomaticEnv()

	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("MONGO_DATABASE", DefaultMongoDatabase)
	v.SetDefault("LOGIN_TIMEOUT_SECONDS", DefaultLoginTimeoutSeconds)
	v.SetDefault("BROWSER_CHECK_ENABLED", DefaultBrowserCheckEnabled)

	cfg := &Config{
		Env:                 env,
		Port:                v.GetString("PORT"),
		CognitoUserPoolID:   mustGetString(v, "COGNITO_USER_POOL_ID"),
		CognitoClientID:     mustGetString(v, "COGNITO_CLIENT_ID"),
		CognitoClientSecret: mustGetString(v, "COGNITO_CLIENT_SECRET"),
		AWSRegion:           mustGetString(v, "AWS_REGION"),
		MongoURI:            mustGetString(v, "MONGO_URI"),
		MongoDatabase:       v.GetString("MONGO_DATABASE"),
		BrowserCheckEnabled: v.GetBool("BROWSER_CHECK_ENABLED"),
		LoginTimeoutSeconds: v.GetInt("LOGIN_TIMEOUT_SECONDS"),
	}

	if cfg.LoginTimeoutSeconds <= 0 {
		log.Printf("Invalid value for LOGIN_TIMEOUT_SECONDS, using default %d", DefaultLoginTimeoutSeconds)
		cfg.LoginTimeoutSeconds = DefaultLoginTimeoutSeconds
	}

	return cfg
}

// configFileName maps an environment name to its dotenv file.
func configFileName(env string) string {
	switch env {
	case EnvDevelopment:
		return ".env.dev"
	case EnvProduction:
		return ".env.prod"
	default:
		return ".env." + env
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetString(v *viper.Viper, key string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}
