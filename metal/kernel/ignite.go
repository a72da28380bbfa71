package kernel

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/skillpath/metal/env"
	"github.com/skillpath/pkg/portal"
)

// Ignite loads envPath into the process environment and builds the validated
// configuration. A missing file is not an error: containers usually inject the
// variables directly.
func Ignite(envPath string, validate *portal.Validator) (*env.Environment, error) {
	if err := godotenv.Load(envPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load environment from %s: %w", envPath, err)
		}

		slog.Warn("env file not found, using the process environment", "path", envPath)
	}

	return MakeEnv(validate), nil
}
