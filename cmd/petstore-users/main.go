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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"

	"github.com/cogniteo/petstore-users/internal/config"
)

// setupLog has no sink until run has built the configured logger
var (
	setupLog logr.Logger
)

func main() {
	if err := config.LoadDotenv(os.Getenv("PETSTORE_ENV_FILE")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCLI(os.Stdout).run(ctx, os.Args[1:]); err != nil {
		reportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// reportError logs err once: through setupLog when it is installed, else on w
func reportError(w io.Writer, err error) {
	if setupLog.GetSink() != nil {
		setupLog.Error(err, "command failed")
		return
	}
	fmt.Fprintln(w, err)
}
