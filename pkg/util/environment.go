package util

import (
	"os"
	"strings"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		name, value, _ := strings.Cut(variable, "=")

		environmentVariables[name] = value
	}

	return environmentVariables
}

// IsEnabled reports whether a STOPFINDER style toggle is switched on, eg. STOPFINDER_DEBUG=YES
func IsEnabled(env map[string]string, name string) bool {
	switch strings.ToUpper(env[name]) {
	case "YES", "TRUE", "1":
		return true
	}

	return false
}
