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


package converso

import (
	"context"
	"log/slog"

	"github.com/atriumlabs/converso/ai"
	"github.com/atriumlabs/converso/ai/openai"
	"github.com/atriumlabs/converso/chat"
	"github.com/atriumlabs/converso/core"
	"github.com/atriumlabs/converso/extract"
	"github.com/atriumlabs/converso/ingest"
	"github.com/atriumlabs/converso/moderation"
	"github.com/atriumlabs/converso/project"
	"github.com/atriumlabs/converso/recruit"
	"github.com/atriumlabs/converso/retrieval"
	"github.com/atriumlabs/converso/summarize"
)

// App wires the project store, the AI provider and every domain service
// behind a single handle. It is the intended entry point for embedding
// the system in a host program.
type App struct {
	projects   *project.Manager
	provider   ai.AIProvider
	extractor  *extract.Extractor
	pipeline   *ingest.Pipeline
	engine     *retrieval.Engine
	guard      *moderation.Guard
	summarizer *summarize.Summarizer
	pool       *recruit.Pool
	logger     *slog.Logger
}

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	aiConfig  *ai.Config
	ingest    []ingest.Option
	retrieval []retrieval.Option
	guard     []moderation.Option
	logger    *slog.Logger
}

// WithAIConfig overrides the default AI backend configuration.
func WithAIConfig(config *ai.Config) AppOption {
	return func(o *appOptions) {
		o.aiConfig = config
	}
}

// WithIngestOptions forwards options to the ingestion pipeline.
func WithIngestOptions(opts ...ingest.Option) AppOption {
	return func(o *appOptions) {
		o.ingest = append(o.ingest, opts...)
	}
}

// WithRetrievalOptions forwards options to the retrieval engine.
func WithRetrievalOptions(opts ...retrieval.Option) AppOption {
	return func(o *appOptions) {
		o.retrieval = append(o.retrieval, opts...)
	}
}

// WithGuardOptions forwards options to the moderation guard.
func WithGuardOptions(opts ...moderation.Option) AppOption {
	return func(o *appOptions) {
		o.guard = append(o.guard, opts...)
	}
}

// WithLogger sets the logger shared by all services.
func WithLogger(logger *slog.Logger) AppOption {
	return func(o *appOptions) {
		o.logger = logger
	}
}

// NewApp opens the project store rooted at root and builds the full
// service graph on top of it.
func NewApp(root string, opts ...AppOption) (*App, error) {
	// Apply options
	options := &appOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open project store
	projects, err := project.NewManager(root, options.logger)
	if err != nil {
		return nil, err
	}

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		projects.Close()
		return nil, err
	}

	extractor := extract.NewExtractor()

	pipeline, err := ingest.NewPipeline(extractor, provider.Embedder(), projects,
		append([]ingest.Option{ingest.WithLogger(options.logger)}, options.ingest...)...)
	if err != nil {
		provider.Close()
		projects.Close()
		return nil, err
	}

	engine, err := retrieval.NewEngine(provider.Embedder(), projects,
		append([]retrieval.Option{retrieval.WithLogger(options.logger)}, options.retrieval...)...)
	if err != nil {
		provider.Close()
		projects.Close()
		return nil, err
	}

	guard, err := moderation.NewGuard(provider.Generator(),
		append([]moderation.Option{moderation.WithLogger(options.logger)}, options.guard...)...)
	if err != nil {
		provider.Close()
		projects.Close()
		return nil, err
	}

	summarizer, err := summarize.NewSummarizer(provider.Generator(), extractor, options.logger)
	if err != nil {
		provider.Close()
		projects.Close()
		return nil, err
	}

	screener, err := recruit.NewScreener(provider.Generator(), extractor, options.logger)
	if err != nil {
		provider.Close()
		projects.Close()
		return nil, err
	}
	pool, err := recruit.NewPool(screener, options.logger)
	if err != nil {
		provider.Close()
		projects.Close()
		return nil, err
	}

	return &App{
		projects:   projects,
		provider:   provider,
		extractor:  extractor,
		pipeline:   pipeline,
		engine:     engine,
		guard:      guard,
		summarizer: summarizer,
		pool:       pool,
		logger:     options.logger,
	}, nil
}

// Projects exposes the underlying project store.
func (a *App) Projects() *project.Manager {
	return a.projects
}

// Ingest runs the full document pipeline for one project.
func (a *App) Ingest(ctx context.Context, projectName string, docs []core.Document) (*ingest.Report, error) {
	return a.pipeline.Ingest(ctx, projectName, docs)
}

// Retrieve returns the scored chunks for a query against one project.
func (a *App) Retrieve(ctx context.Context, projectName, query string) ([]*core.RetrievalResult, error) {
	return a.engine.Retrieve(ctx, projectName, query)
}

// NewChat builds a chat bot for a project, loading the stored knowledge
// blob and custom prompt when present. Options passed here take
// precedence over the stored project configuration.
func (a *App) NewChat(projectName string, opts ...chat.Option) (*chat.Bot, error) {
	botOpts := []chat.Option{chat.WithLogger(a.logger)}

	content, ok, err := a.projects.Knowledge(projectName)
	if err != nil {
		return nil, err
	}
	if ok {
		botOpts = append(botOpts, chat.WithKnowledge(content))
	}

	prompt, ok, err := a.projects.Prompt(projectName)
	if err != nil {
		return nil, err
	}
	if ok {
		botOpts = append(botOpts, chat.WithGroundedPrompt(prompt))
	}

	botOpts = append(botOpts, opts...)
	return chat.NewBot(projectName, a.provider.Generator(), a.guard, a.engine, botOpts...)
}

// Screen extracts and scores every resume in docs against a job posting.
func (a *App) Screen(ctx context.Context, docs []core.Document, jobTitle, jobDescription string) ([]*core.ScreeningResult, error) {
	return a.pool.Run(ctx, docs, jobTitle, jobDescription)
}

// RankCandidates screens resumes and returns the usable profiles in
// ranking order.
func (a *App) RankCandidates(ctx context.Context, docs []core.Document, jobTitle, jobDescription string) ([]*core.CandidateProfile, error) {
	results, err := a.pool.Run(ctx, docs, jobTitle, jobDescription)
	if err != nil {
		return nil, err
	}
	return recruit.RankProfiles(results), nil
}

// Summarize produces per-document or combined summaries.
func (a *App) Summarize(ctx context.Context, docs []core.Document, req summarize.Request) (map[string]string, error) {
	return a.summarizer.Summarize(ctx, docs, req)
}

func (a *App) Close() error {
	// Stop accepting screening work first
	a.pool.Release()

	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	if err := a.projects.Close(); err != nil {
		a.logger.Error("error closing project store", "err", err)
		return err
	}
	return nil
}
