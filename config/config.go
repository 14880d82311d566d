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


// Package config loads the YAML application configuration used by the
// command-line front end. All knobs have working defaults; a missing
// config file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/atriumlabs/converso/ai"
)

// AIParams configures the OpenAI-compatible backend.
type AIParams struct {
	Host           string `yaml:"host"`
	APIKeyEnv      string `yaml:"api_key_env"`
	ChatModel      string `yaml:"chat_model"`
	EmbeddingModel string `yaml:"embedding_model"`
	TimeoutSecs    int    `yaml:"timeout_secs"`
}

// IngestParams configures document splitting and the knowledge cutoff.
type IngestParams struct {
	ChunkSize         int `yaml:"chunk_size"`
	ChunkOverlap      int `yaml:"chunk_overlap"`
	MaxKnowledgeWords int `yaml:"max_knowledge_words"`
}

// RetrievalParams configures similarity search.
type RetrievalParams struct {
	MaxDocs        int     `yaml:"max_docs"`
	ScoreThreshold float32 `yaml:"score_threshold"`
}

// ModerationParams configures the input guard. An empty blocklist keeps
// the built-in Portuguese terms.
type ModerationParams struct {
	Blocklist []string `yaml:"blocklist"`
}

// Params is the root configuration structure.
type Params struct {
	ProjectsDir string           `yaml:"projects_dir"`
	AI          AIParams         `yaml:"ai"`
	Ingest      IngestParams     `yaml:"ingest"`
	Retrieval   RetrievalParams  `yaml:"retrieval"`
	Moderation  ModerationParams `yaml:"moderation"`
}

// Default returns the configuration used when no file is present.
func Default() *Params {
	return &Params{
		ProjectsDir: "projects",
		AI: AIParams{
			Host:           "https://api.openai.com/v1",
			APIKeyEnv:      "OPENAI_API_KEY",
			ChatModel:      "gpt-4o-mini",
			EmbeddingModel: "text-embedding-3-small",
			TimeoutSecs:    60,
		},
		Ingest: IngestParams{
			ChunkSize:         1000,
			ChunkOverlap:      200,
			MaxKnowledgeWords: 1000,
		},
		Retrieval: RetrievalParams{
			MaxDocs:        4,
			ScoreThreshold: 0.8,
		},
	}
}

// Load reads a config from path. If the file does not exist, returns
// defaults.
func Load(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	params := Default()
	if err := yaml.Unmarshal(data, params); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// Validate rejects configurations that would fail deeper in the stack,
// so the operator sees one clear error up front.
func (p *Params) Validate() error {
	if p.ProjectsDir == "" {
		return errors.New("config: projects_dir is required")
	}
	if p.AI.Host == "" {
		return errors.New("config: ai.host is required")
	}
	if p.AI.ChatModel == "" {
		return errors.New("config: ai.chat_model is required")
	}
	if p.AI.EmbeddingModel == "" {
		return errors.New("config: ai.embedding_model is required")
	}
	if p.AI.TimeoutSecs <= 0 {
		return errors.New("config: ai.timeout_secs must be positive")
	}
	if p.Ingest.ChunkSize <= 0 {
		return errors.New("config: ingest.chunk_size must be positive")
	}
	if p.Ingest.ChunkOverlap < 0 || p.Ingest.ChunkOverlap >= p.Ingest.ChunkSize {
		return errors.New("config: ingest.chunk_overlap must be in [0, chunk_size)")
	}
	if p.Ingest.MaxKnowledgeWords <= 0 {
		return errors.New("config: ingest.max_knowledge_words must be positive")
	}
	if p.Retrieval.MaxDocs <= 0 {
		return errors.New("config: retrieval.max_docs must be positive")
	}
	if p.Retrieval.ScoreThreshold <= 0 {
		return errors.New("config: retrieval.score_threshold must be positive")
	}
	return nil
}

// AIConfig converts the YAML section into the provider configuration.
// The API key is resolved from the environment variable named by
// api_key_env; godotenv in the CLI makes .env files work transparently.
func (p *Params) AIConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithHost(p.AI.Host),
		ai.WithAPIKey(os.Getenv(p.AI.APIKeyEnv)),
		ai.WithChatModel(p.AI.ChatModel),
		ai.WithEmbeddingModel(p.AI.EmbeddingModel),
		ai.WithRequestTimeout(time.Duration(p.AI.TimeoutSecs)*time.Second),
	)
}
