package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Traffic Refresher config
const TRAFFIC_REFRESHER_SERVICE_SCHEDULE_MINUTES = 60

// Counters API (people-counter backend)
const COUNTERS_ENDPOINT_BASE_V1 = "https://counters.example.com/api/v1"

// Records API (store parameters, historical configuration, activities)
const RECORDS_ENDPOINT_BASE_V1 = "https://records.example.com/api/v1"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const TRAFFIC_SAMPLE_RESOURCE = "traffic_sample.json"
const STORE_PARAMS_RESOURCE = "store_params.json"
const ACTIVITIES_RESOURCE = "activities.json"

// LoadEnv loads a .env file when present; variables already set win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using defaults")
	}
}

// Env returns an environment variable, or the fallback when unset.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// RefresherStoreCodes parses the comma-separated REFRESHER_STORE_CODES list.
func RefresherStoreCodes() []string {
	raw := os.Getenv("REFRESHER_STORE_CODES")
	if raw == "" {
		return nil
	}
	var out []string
	for _, code := range strings.Split(raw, ",") {
		if code = strings.TrimSpace(code); code != "" {
			out = append(out, code)
		}
	}
	return out
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
