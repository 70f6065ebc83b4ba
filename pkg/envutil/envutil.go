package envutil

import (
	"log/slog"
	"os"
	"strconv"
)

func Bool(name string, defaultValue bool) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("failed to parse an environment variable as a boolean", "name", name, "value", v, "error", err)
		return defaultValue
	}
	return b
}
