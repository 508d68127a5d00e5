package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/studyprep/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	EnvAPIURL      = "STUDYPREP_API_URL"
	EnvAPIURLExpo  = "EXPO_PUBLIC_API_URL"
	EnvDBPath      = "STUDYPREP_DB_PATH"
	EnvStoreSecret = "STUDYPREP_STORE_SECRET"
	EnvLogLevel    = "STUDYPREP_LOG_LEVEL"

	defaultEnvFile = ".env"
)

// parseEnv overlays cfg with environment variables. Values from a dotenv
// file (-e/-env, or ./.env when present) fill in variables the process
// environment does not set.
func parseEnv(cfg *Config, args []string) {
	fileVars := readEnvFile(flagx.EnvFileFlag(args))

	lookup := func(keys ...string) (string, bool) {
		for _, k := range keys {
			if v, ok := os.LookupEnv(k); ok && v != "" {
				return v, true
			}
			if v, ok := fileVars[k]; ok && v != "" {
				return v, true
			}
		}
		return "", false
	}

	if v, ok := lookup(EnvAPIURL, EnvAPIURLExpo); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup(EnvDBPath); ok {
		cfg.DatabasePath = v
	}
	if v, ok := lookup(EnvStoreSecret); ok {
		cfg.StoreSecret = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
}

// readEnvFile loads path, or ./.env when path is empty. Only a missing
// default file is tolerated.
func readEnvFile(path string) map[string]string {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		panic(err)
	}
	return vars
}
