// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

// ErrInvalidClientConfigs indicates an empty server URL or token file path.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientConfig configures the command-line client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// TokenFile stores the token obtained by signin between invocations.
	// Env: CLIENT_TOKEN_FILE
	TokenFile string `env:"CLIENT_TOKEN_FILE"`
}

// ClientAdapter holds the settings of the REST API client.
type ClientAdapter struct {
	// ServerURL is the base URL of the backend.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds a single API call.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig merges defaults, environment variables and the global
// flags found at the start of args. It returns the arguments left after
// the flags, i.e. the command and its own arguments.
//
// Flags:
//
//	-server base URL of the backend
//	-timeout request timeout (e.g., "10s")
//	-token-file path of the stored token
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagsCfg := &ClientConfig{}
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.StringVar(&flagsCfg.Adapter.ServerURL, "server", "", "Backend base URL")
	fs.DurationVar(&flagsCfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&flagsCfg.TokenFile, "token-file", "", "Path of the stored token")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	config := clientDefaults()
	for _, cfg := range []*ClientConfig{envCfg, flagsCfg} {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if config.Adapter.ServerURL == "" || config.TokenFile == "" {
		return nil, nil, ErrInvalidClientConfigs
	}

	return config, fs.Args(), nil
}

func clientDefaults() *ClientConfig {
	tokenFile := ".todo-token"
	if home, err := os.UserHomeDir(); err == nil {
		tokenFile = filepath.Join(home, ".todo-token")
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      "http://localhost:3000",
			RequestTimeout: 10 * time.Second,
		},
		TokenFile: tokenFile,
	}
}
