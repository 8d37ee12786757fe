// Copyright 2025 Raglab Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/raglab/docqa"
	"github.com/raglab/docqa/web"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "docqa",
		Usage: "Question answering over a single Markdown document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path to a dotenv file with configuration",
				Value: ".env",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a single question and exit",
				ArgsUsage: "QUESTION",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "show-context",
						Usage: "Also print the document with retrieved passages marked",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the question-answering web interface",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":7860",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	ctx := context.Background()
	engine, err := buildEngine(ctx)
	if err != nil {
		return err
	}
	defer engine.Close()

	answer, highlighted, err := engine.Answer(ctx, question)
	if err != nil {
		// The cause goes to the log; the user gets the localized fallback.
		slog.Error("error answering question", "err", err)
		fmt.Println(web.BundleFor(engine.Config().Lang).Fallback)
		return nil
	}

	fmt.Println(answer)
	if c.Bool("show-context") {
		fmt.Println()
		fmt.Println(highlighted)
	}
	return nil
}

func serveCommand(c *cli.Context) error {
	engine, err := buildEngine(context.Background())
	if err != nil {
		return err
	}
	defer engine.Close()

	server, err := web.NewServer(engine)
	if err != nil {
		return err
	}
	defer server.Release()

	return server.Run(c.String("addr"))
}

func buildEngine(ctx context.Context) (*docqa.Engine, error) {
	config, err := docqa.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	engine, err := docqa.NewEngine(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to build engine: %w", err)
	}
	return engine, nil
}

func setup(c *cli.Context) error {
	// A missing dotenv file is fine; the environment may already be set.
	if err := godotenv.Load(c.String("env-file")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return setupLogger(c)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
