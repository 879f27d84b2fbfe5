package config

import (
	"path/filepath"

	"fjacquet/sheet-ledger/internal/fileutils"

	"github.com/joho/godotenv"
)

// LoadEnv loads the first .env file found in the current or parent directory.
// Variables already set in the environment win. It returns the file loaded, or
// "" when there was none.
func LoadEnv() (string, error) {
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if !fileutils.FileExists(envFile) {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return envFile, err
		}
		return envFile, nil
	}
	return "", nil
}
