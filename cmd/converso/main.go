// Copyright 2026 Atrium Labs
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
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/atriumlabs/converso"
	"github.com/atriumlabs/converso/chat"
	"github.com/atriumlabs/converso/config"
	"github.com/atriumlabs/converso/core"
	"github.com/atriumlabs/converso/extract"
	"github.com/atriumlabs/converso/ingest"
	"github.com/atriumlabs/converso/moderation"
	"github.com/atriumlabs/converso/project"
	"github.com/atriumlabs/converso/recruit"
	"github.com/atriumlabs/converso/retrieval"
	"github.com/atriumlabs/converso/summarize"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "converso",
		Usage: "Document-grounded assistant over per-project corpora",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
				Value:   "config.yaml",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:  "project",
				Usage: "Manage projects",
				Subcommands: []*cli.Command{
					{
						Name:   "create",
						Usage:  "Create a new project",
						Action: projectCreateCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "name",
								Aliases:  []string{"n"},
								Usage:    "Project name",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "owner",
								Aliases:  []string{"o"},
								Usage:    "Project owner",
								Required: true,
							},
						},
					},
					{
						Name:   "list",
						Usage:  "List all projects",
						Action: projectListCommand,
					},
					{
						Name:   "delete",
						Usage:  "Delete a project and all of its data",
						Action: projectDeleteCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "name",
								Aliases:  []string{"n"},
								Usage:    "Project name",
								Required: true,
							},
						},
					},
					{
						Name:   "set-password",
						Usage:  "Protect a project with a pre-encrypted credential",
						Action: projectSetPasswordCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "name",
								Aliases:  []string{"n"},
								Usage:    "Project name",
								Required: true,
							},
							&cli.StringFlag{
								Name:  "password",
								Usage: "Opaque encrypted credential; empty removes protection",
							},
						},
					},
					{
						Name:   "set-prompt",
						Usage:  "Store a custom grounded prompt for a project",
						Action: projectSetPromptCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "name",
								Aliases:  []string{"n"},
								Usage:    "Project name",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "prompt-file",
								Usage:    "File containing the prompt text",
								Required: true,
							},
						},
					},
				},
			},
			{
				Name:      "ingest",
				Usage:     "Ingest documents into a project",
				ArgsUsage: "FILE [FILE ...]",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "project",
						Aliases:  []string{"p"},
						Usage:    "Target project name",
						Required: true,
					},
				},
			},
			{
				Name:   "chat",
				Usage:  "Chat with a project's corpus on stdin",
				Action: chatCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "project",
						Aliases:  []string{"p"},
						Usage:    "Project name",
						Required: true,
					},
				},
			},
			{
				Name:      "screen",
				Usage:     "Screen resumes against a job posting",
				ArgsUsage: "FILE [FILE ...]",
				Action:    screenCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Job title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "description-file",
						Usage:    "File containing the job description",
						Required: true,
					},
				},
			},
			{
				Name:      "summarize",
				Usage:     "Summarize documents",
				ArgsUsage: "FILE [FILE ...]",
				Action:    summarizeCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "words",
						Usage: "Word limit for each summary",
						Value: 200,
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Produce one combined summary instead of one per document",
					},
					&cli.StringFlag{
						Name:  "info",
						Usage: "Additional instructions for the summarizer",
					},
				},
			},
		},
	}
}

func setup(c *cli.Context) error {
	// .env is optional; real environment always wins
	_ = godotenv.Load()

	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// openApp builds the full application from the YAML config named by the
// global --config flag.
func openApp(c *cli.Context) (*converso.App, error) {
	params, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	aiConfig := params.AIConfig()
	if err := aiConfig.Validate(); err != nil {
		return nil, err
	}

	opts := []converso.AppOption{
		converso.WithAIConfig(aiConfig),
		converso.WithIngestOptions(
			ingest.WithChunking(params.Ingest.ChunkSize, params.Ingest.ChunkOverlap),
			ingest.WithMaxKnowledgeWords(params.Ingest.MaxKnowledgeWords),
		),
		converso.WithRetrievalOptions(
			retrieval.WithMaxDocs(params.Retrieval.MaxDocs),
			retrieval.WithScoreThreshold(params.Retrieval.ScoreThreshold),
		),
	}
	if len(params.Moderation.Blocklist) > 0 {
		opts = append(opts, converso.WithGuardOptions(moderation.WithBlocklist(params.Moderation.Blocklist)))
	}

	return converso.NewApp(params.ProjectsDir, opts...)
}

// loadDocuments reads each path into an in-memory document tagged with
// its format, mirroring what a file upload would carry.
func loadDocuments(paths []string) ([]core.Document, error) {
	docs := make([]core.Document, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		name := filepath.Base(path)
		docs = append(docs, core.Document{
			Name: name,
			Type: extract.TypeFromName(name),
			Data: data,
		})
	}
	return docs, nil
}

func projectCreateCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	name := c.String("name")
	if err := app.Projects().Create(name, c.String("owner")); err != nil {
		return err
	}
	fmt.Printf("Project %q created\n", name)
	return nil
}

func projectListCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	names, err := app.Projects().List()
	if err != nil {
		return err
	}
	for _, name := range names {
		meta, err := app.Projects().Metadata(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s\towner=%s\tcreated=%s\tfiles=%d\n", name, meta.Owner, meta.CreatedAt.Format("2006-01-02"), len(meta.Files))
	}
	return nil
}

func projectDeleteCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	name := c.String("name")
	if err := app.Projects().Delete(name); err != nil {
		return err
	}
	fmt.Printf("Project %q deleted\n", name)
	return nil
}

func projectSetPasswordCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	name := c.String("name")
	if err := app.Projects().SetPassword(name, c.String("password")); err != nil {
		return err
	}
	fmt.Printf("Project %q protection updated\n", name)
	return nil
}

func projectSetPromptCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	prompt, err := os.ReadFile(c.String("prompt-file"))
	if err != nil {
		return fmt.Errorf("read prompt: %w", err)
	}
	return app.Projects().SavePrompt(c.String("name"), string(prompt))
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one input file is required")
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	docs, err := loadDocuments(c.Args().Slice())
	if err != nil {
		return err
	}

	name := c.String("project")
	report, err := app.Ingest(context.Background(), name, docs)
	if err != nil {
		return err
	}

	records := make([]project.FileRecord, 0, len(report.Files))
	for _, file := range report.Files {
		records = append(records, project.FileRecord{FileName: file.Name, WordCount: file.Words})
	}
	if err := app.Projects().RecordFiles(name, records); err != nil {
		return err
	}

	switch report.Mode {
	case core.StorageModeKnowledge:
		fmt.Printf("Stored as knowledge blob (%d source(s))\n", len(report.Files))
	case core.StorageModeVector:
		fmt.Printf("Indexed %d chunk(s) from %d source(s)\n", report.Chunks, len(report.Files))
	}
	for _, name := range report.Discarded {
		fmt.Fprintf(os.Stderr, "discarded (no usable text): %s\n", name)
	}
	return nil
}

func chatCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	bot, err := app.NewChat(c.String("project"))
	if err != nil {
		return err
	}

	fmt.Println(chat.Greeting)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		turn, err := bot.Respond(context.Background(), input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(turn.Response)
		if len(turn.Documents) > 0 {
			fmt.Printf("[fontes: %s]\n", strings.Join(turn.Documents, ", "))
		}
	}
	return scanner.Err()
}

func screenCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one resume file is required")
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	description, err := os.ReadFile(c.String("description-file"))
	if err != nil {
		return fmt.Errorf("read job description: %w", err)
	}

	docs, err := loadDocuments(c.Args().Slice())
	if err != nil {
		return err
	}

	results, err := app.Screen(context.Background(), docs, c.String("title"), string(description))
	if err != nil {
		return err
	}

	for _, result := range results {
		if result.Outcome == core.OutcomeFailed {
			fmt.Fprintf(os.Stderr, "%s: %s\n", result.Source, result.Err)
		}
	}

	for rank, profile := range recruit.RankProfiles(results) {
		fmt.Printf("%2d. %-30s score=%-3d salary=%-8d %s\n",
			rank+1, profile.Name, profile.CandidateScore, profile.EstimatedSalary, profile.CurrentRole)
	}
	return nil
}

func summarizeCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one input file is required")
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	docs, err := loadDocuments(c.Args().Slice())
	if err != nil {
		return err
	}

	summaries, err := app.Summarize(context.Background(), docs, summarize.Request{
		WordLimit:      c.Int("words"),
		SummarizeAll:   c.Bool("all"),
		AdditionalInfo: c.String("info"),
	})
	if err != nil {
		return err
	}

	// Preserve input order for per-document summaries
	for _, doc := range docs {
		if text, ok := summaries[doc.Name]; ok {
			fmt.Printf("--- %s ---\n%s\n\n", doc.Name, text)
		}
	}
	if text, ok := summaries[summarize.CombinedKey]; ok {
		fmt.Printf("--- %s ---\n%s\n", summarize.CombinedKey, text)
	}
	return nil
}
