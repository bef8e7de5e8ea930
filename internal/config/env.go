// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	envFileVariable = "ENV_FILE"
	defaultEnvFile  = ".env"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// lookupEnvFile returns the .env file path named by ENV_FILE, or the default
// ".env" in the working directory.
func lookupEnvFile() string {
	if path := os.Getenv(envFileVariable); path != "" {
		return path
	}
	return defaultEnvFile
}

// loadDotEnv loads variables from path into the process environment with
// godotenv. Variables that are already set are left untouched. A missing
// default ".env" file is not an error; a missing explicitly named file is.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) && path == defaultEnvFile {
		return nil
	}

	return fmt.Errorf("error loading env file %q: %w", path, err)
}
