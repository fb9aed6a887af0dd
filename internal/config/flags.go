// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a API origin, e.g. https://notes.example.com
//	-d SQLite file keeping the session slot
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m"), 0 means none
//	-cache-size number of cached note-list filters
//	-log-file log file path
func ParseFlags() *StructuredConfig {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		// flag.CommandLine uses ExitOnError, parse errors never get here
		return &StructuredConfig{}
	}
	return cfg
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var apiURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var cacheSize int
	var logFile string

	fs.StringVar(&apiURL, "a", "", "API origin")
	fs.StringVar(&databaseDSN, "d", "", "Session database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&cacheSize, "cache-size", 0, "Number of cached note-list filters")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Adapter: Adapter{
			APIURL:         apiURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Cache:        Cache{Size: cacheSize},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}
