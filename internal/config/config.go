// Package config centralises all environment configuration for the assistant.
// It should be imported only by the cmd packages (and test code). Business‑logic
// layers receive an already‑built Config instance via dependency‑injection.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Supported LLM providers.
const (
	ProviderHuggingFace = "huggingface"
	ProviderVertex      = "vertex"
	ProviderEcho        = "echo"
)

// Supported catalog sources.
const (
	CatalogStatic = "static"
	CatalogYAML   = "yaml"
	CatalogMongo  = "mongo"
)

// DefaultHFModelURL is the text-generation endpoint used when HF_MODEL_URL is unset.
const DefaultHFModelURL = "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.2"

// Config holds every runtime option the assistant needs.
// Keep it flat and simple—prefer primitive types over embedding structs.
type Config struct {
	// Network
	Port string

	// Server tuning
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Inference
	LLMProvider      string
	HFAPIKey         string
	HFModelURL       string
	InferenceTimeout time.Duration

	// Vertex AI
	ProjectID   string
	Location    string
	VertexModel string

	// Product catalog
	CatalogSource     string
	CatalogFile       string
	MongoURI          string
	DBName            string
	ProductCollection string

	// Secondary chat backend
	LegacyChatURL string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load parses the environment (and an optional .env file) into Config.
// It returns an error on missing critical variables so mis‑configurations fail fast.
func Load() (Config, error) {
	// godotenv.Load() is a no‑op if .env doesn't exist—safe in production.
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		ReadTimeout:       getDuration("READ_TIMEOUT_SEC", 5),
		WriteTimeout:      getDuration("WRITE_TIMEOUT_SEC", 90),
		LLMProvider:       strings.ToLower(getEnv("LLM_PROVIDER", ProviderHuggingFace)),
		HFAPIKey:          os.Getenv("HF_API_KEY"),
		HFModelURL:        getEnv("HF_MODEL_URL", DefaultHFModelURL),
		InferenceTimeout:  getDuration("INFERENCE_TIMEOUT_SEC", 60),
		ProjectID:         os.Getenv("GCP_PROJECT_ID"),
		Location:          getEnv("GCP_LOCATION", "us-central1"),
		VertexModel:       getEnv("VERTEX_MODEL", "gemini-2.0-flash-lite-001"),
		CatalogSource:     strings.ToLower(getEnv("CATALOG_SOURCE", CatalogStatic)),
		CatalogFile:       getEnv("CATALOG_FILE", "catalog.yaml"),
		MongoURI:          os.Getenv("MONGODB_URI"),
		DBName:            getEnv("MONGODB_DB", "product_compare"),
		ProductCollection: getEnv("MONGODB_COLLECTION", "products"),
		LegacyChatURL:     os.Getenv("LEGACY_CHAT_URL"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks provider/source specific requirements.
func (c Config) Validate() error {
	switch c.LLMProvider {
	case ProviderHuggingFace:
		if c.HFAPIKey == "" {
			return errors.New("env var HF_API_KEY is required for the huggingface provider")
		}
	case ProviderVertex:
		if c.ProjectID == "" {
			return errors.New("env var GCP_PROJECT_ID is required for the vertex provider")
		}
	case ProviderEcho:
	default:
		return errors.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider)
	}

	switch c.CatalogSource {
	case CatalogStatic:
	case CatalogYAML:
		if c.CatalogFile == "" {
			return errors.New("env var CATALOG_FILE is required for the yaml catalog")
		}
	case CatalogMongo:
		if c.MongoURI == "" {
			return errors.New("env var MONGODB_URI is required for the mongo catalog")
		}
	default:
		return errors.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	return nil
}

// LegacyChatURL reads only LEGACY_CHAT_URL, for callers that do not need the
// inference settings validated.
func LegacyChatURL() string {
	_ = godotenv.Load()
	return os.Getenv("LEGACY_CHAT_URL")
}

// getEnv returns env[key] if set, otherwise defaultVal.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDuration reads an integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			return time.Duration(sec) * time.Second
		}
		log.Warn().Str("key", key).Str("value", v).Int("default_sec", defaultSec).Msg("invalid duration; using default")
	}
	return time.Duration(defaultSec) * time.Second
}
