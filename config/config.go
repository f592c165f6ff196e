// Package config provide config from command-line.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Config represent deck generator configuration.
type Config struct {
	ProblemPath   string
	MaterialsPath string
	NamesPath     string
	OutputDir     string

	LoggingLevel string
}

// Read config from command-line.
// It call os.Exit, if config is incorrect.
func Read() Config {
	config := Config{}

	flag.StringVar(&config.ProblemPath, "problem", "", "problem description file (yaml)")
	flag.StringVar(&config.MaterialsPath, "materials", "", "material library store (sqlite)")
	flag.StringVar(&config.NamesPath, "names", "", "nuclide to cross-section name table (yaml)")
	flag.StringVar(&config.OutputDir, "output", ".", "output directory for the generated deck")
	flag.StringVar(&config.LoggingLevel, "logging-level", "info", "logging level, one of: "+availableLoggingLevelsString)
	flag.Parse()

	config.LoggingLevel = strings.ToLower(config.LoggingLevel)

	invalidConfig := false
	if config.ProblemPath == "" {
		fmt.Fprintf(os.Stderr, "Missing -problem file\n")
		invalidConfig = true
	}

	if config.MaterialsPath == "" {
		fmt.Fprintf(os.Stderr, "Missing -materials store\n")
		invalidConfig = true
	}

	if config.NamesPath == "" {
		fmt.Fprintf(os.Stderr, "Missing -names table\n")
		invalidConfig = true
	}

	if !validateLoggingLevel(config.LoggingLevel) {
		fmt.Fprintf(os.Stderr, "Invalid loggingLevel: \"%s\"\n", config.LoggingLevel)
		invalidConfig = true
	}

	if invalidConfig {
		fmt.Fprintf(os.Stderr, "\n")
		flag.Usage()
		os.Exit(1)
	}

	return config
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}
var availableLoggingLevelsString = strings.Join(availableLoggingLevels, ", ")

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range availableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}
