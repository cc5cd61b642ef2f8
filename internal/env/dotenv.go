package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads a dotenv file and layers it under the given environment.
// Variables already present in base take precedence over file values, so a
// dotenv file can supply defaults without overriding the real environment.
func LoadDotEnv(base *Map, path string) (*Map, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read env file %q: %w", path, err)
	}

	fileVars, err := godotenv.Unmarshal(string(content))
	if err != nil {
		return nil, fmt.Errorf("cannot parse env file %q: %w", path, err)
	}

	merged := base.Clone()
	merged.Merge(FromMap(fileVars), false)
	return merged, nil
}
