/*
Copyright 2025 Piotr Janik.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config collects the command line settings. Every flag can also be set
// through its environment variable, and variables can come from a dotenv file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	"github.com/cogniteo/petstore-users/internal/mirror"
	"github.com/cogniteo/petstore-users/pkg/openapi"
)

// DefaultEnvFile is read when no other dotenv file is named
const DefaultEnvFile = ".env"

// Config is the parsed command line
type Config struct {
	BasePath  string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
	Headers   map[string]string
	UserAgent string

	CognitoUserPoolID   string
	CognitoUserPoolName string
	Concurrency         int

	LogLevel string
}

// Register adds the global flags to app. The returned Config is filled in by app.Parse.
func Register(app *kingpin.Application) *Config {
	c := &Config{Headers: map[string]string{}}

	app.Flag("base-path", "Server the petstore API is served from.").
		Envar("PETSTORE_BASE_PATH").Default(openapi.DefaultBasePath).StringVar(&c.BasePath)
	app.Flag("timeout", "Overall timeout of a single request.").
		Envar("PETSTORE_TIMEOUT").Default("30s").DurationVar(&c.Timeout)
	app.Flag("rate-limit", "Maximum requests per second, 0 disables throttling.").
		Envar("PETSTORE_RATE_LIMIT").Default("0").Float64Var(&c.RateLimit)
	app.Flag("rate-burst", "Requests allowed above the rate limit in a burst.").
		Envar("PETSTORE_RATE_BURST").Default("1").IntVar(&c.RateBurst)
	app.Flag("header", "Header sent with every request, as NAME=VALUE. Repeatable.").
		Short('H').Envar("PETSTORE_HEADERS").StringMapVar(&c.Headers)
	app.Flag("user-agent", "User-Agent header value.").
		Envar("PETSTORE_USER_AGENT").StringVar(&c.UserAgent)

	app.Flag("cognito-user-pool-id", "AWS Cognito User Pool ID the mirror command writes to.").
		Envar("COGNITO_USER_POOL_ID").StringVar(&c.CognitoUserPoolID)
	app.Flag("cognito-user-pool-name", "AWS Cognito User Pool name, used when no ID is given.").
		Envar("COGNITO_USER_POOL_NAME").StringVar(&c.CognitoUserPoolName)
	app.Flag("concurrency", "Users reconciled in parallel by the mirror command.").
		Envar("PETSTORE_CONCURRENCY").Default(fmt.Sprint(mirror.DefaultConcurrency)).IntVar(&c.Concurrency)

	app.Flag("log-level", "Log verbosity.").
		Envar("PETSTORE_LOG_LEVEL").Default("info").EnumVar(&c.LogLevel, "debug", "info", "error")

	return c
}

// LoadDotenv exports the variables of a dotenv file into the process environment.
// Variables already set are kept. An empty path means DefaultEnvFile, which may be absent.
func LoadDotenv(path string) error {
	optional := path == ""
	if optional {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return nil
}

// NewLogger builds the zap development logger at the configured level
func (c *Config) NewLogger() (logr.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return logr.Discard(), fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)

	zl, err := zc.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("failed to build logger: %w", err)
	}

	return zapr.NewLogger(zl), nil
}

// ClientOptions turns the settings into options for openapi.NewClient
func (c *Config) ClientOptions(logger logr.Logger) []openapi.Option {
	opts := []openapi.Option{
		openapi.WithLogger(logger),
	}

	if c.BasePath != "" {
		opts = append(opts, openapi.WithBasePath(c.BasePath))
	}
	if c.Timeout > 0 {
		opts = append(opts, openapi.WithTimeout(c.Timeout))
	}
	if c.UserAgent != "" {
		opts = append(opts, openapi.WithUserAgent(c.UserAgent))
	}

	names := make([]string, 0, len(c.Headers))
	for name := range c.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		opts = append(opts, openapi.WithDefaultHeader(name, c.Headers[name]))
	}

	if c.RateLimit > 0 {
		burst := c.RateBurst
		if burst < 1 {
			burst = 1
		}
		opts = append(opts, openapi.WithRateLimiter(rate.NewLimiter(rate.Limit(c.RateLimit), burst)))
	}

	return opts
}
