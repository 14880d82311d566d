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


package recruit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumlabs/converso/ai/mock"
	"github.com/atriumlabs/converso/core"
	"github.com/atriumlabs/converso/extract"
)

const validReply = `{
	"Name": "Ana Souza",
	"Age": "29",
	"Location": "São Paulo",
	"Seniority": "Pleno",
	"Phone": "(11) 99999-1234",
	"Email": "ana@empresa.com",
	"LinkedIn": "linkedin.com/in/anasouza",
	"Git": "github.com/anasouza",
	"CurrentRole": "Engenheira de Software",
	"Company": "Empresa X",
	"EducationLevel": "Bacharelado",
	"School": "USP",
	"YearsExperience": 6,
	"Skills": "Go, Python, SQL",
	"SpeaksEnglish": "Sim",
	"IsDisabled": "Não",
	"EstimatedSalary": 11000,
	"CandidateScore": 85,
	"SkillsSummary": "Engenheira experiente em backend.",
	"ScoreRationale": "Perfil alinhado com a vaga."
}`

func cvDoc(name, text string) core.Document {
	return core.Document{
		Name: name,
		Type: core.DocumentTypePlainText,
		Data: []byte(text),
	}
}

func newTestScreener(t *testing.T, generator *mock.MockGenerator) *Screener {
	t.Helper()
	screener, err := NewScreener(generator, extract.NewExtractor(), nil)
	require.NoError(t, err)
	return screener
}

func TestScreenParsesValidReply(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.FixedReply = validReply
	screener := newTestScreener(t, generator)

	result := screener.Screen(context.Background(),
		cvDoc("ana.txt", "Ana Souza, engenheira de software com seis anos de experiência."),
		"Engenheira Backend", "Desenvolvimento de serviços em Go.")

	assert.Equal(t, core.OutcomeParsed, result.Outcome)
	require.NotNil(t, result.Profile)
	assert.Equal(t, "Ana Souza", result.Profile.Name)
	assert.Equal(t, 85, result.Profile.CandidateScore)
	assert.Equal(t, 11000, result.Profile.EstimatedSalary)
	assert.Empty(t, result.Err)

	prompt := generator.LastPrompt()
	assert.Contains(t, prompt, "Engenheira Backend")
	assert.Contains(t, prompt, "Desenvolvimento de serviços em Go.")
	assert.Contains(t, prompt, "seis anos de experiência")
	assert.NotContains(t, prompt, "<titulo>")
	assert.Equal(t, float64(0), generator.LastTemperature())
}

func TestScreenRecoversBraceSpan(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.FixedReply = "Claro! Segue o resultado:\n" + validReply + "\nEspero ter ajudado."
	screener := newTestScreener(t, generator)

	result := screener.Screen(context.Background(), cvDoc("ana.txt", "texto do currículo"), "Vaga", "Descrição")

	// The wrapper text breaks the strict parse but the brace span holds
	// a full object.
	assert.Equal(t, core.OutcomeRecovered, result.Outcome)
	require.NotNil(t, result.Profile)
	assert.Equal(t, "Ana Souza", result.Profile.Name)
}

func TestScreenRecoversTruncatedReply(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.FixedReply = `Resultado: {"Name": "Ana"`
	screener := newTestScreener(t, generator)

	result := screener.Screen(context.Background(), cvDoc("ana.txt", "texto do currículo"), "Vaga", "Descrição")

	assert.Equal(t, core.OutcomeRecovered, result.Outcome)
	require.NotNil(t, result.Profile)
	assert.Equal(t, "Ana", result.Profile.Name)
}

func TestScreenUnparseableReply(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.FixedReply = `Resultado: {"Name": sem aspas}`
	screener := newTestScreener(t, generator)

	result := screener.Screen(context.Background(), cvDoc("ana.txt", "texto do currículo"), "Vaga", "Descrição")

	assert.Equal(t, core.OutcomeFailed, result.Outcome)
	assert.Nil(t, result.Profile)
	assert.Contains(t, result.Err, "JSON parse failed")
	assert.Equal(t, `Resultado: {"Name": sem aspas}`, result.Raw)
}

func TestScreenReplyWithoutJSON(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.FixedReply = "Não consegui analisar este currículo."
	screener := newTestScreener(t, generator)

	result := screener.Screen(context.Background(), cvDoc("ana.txt", "texto do currículo"), "Vaga", "Descrição")

	assert.Equal(t, core.OutcomeFailed, result.Outcome)
	assert.Contains(t, result.Err, "JSON parse failed")
}

func TestScreenExtractionFailure(t *testing.T) {
	generator := mock.NewMockGenerator()
	screener := newTestScreener(t, generator)

	doc := core.Document{Name: "quebrado.pdf", Type: core.DocumentTypePDF, Data: []byte("not a pdf")}
	result := screener.Screen(context.Background(), doc, "Vaga", "Descrição")

	assert.Equal(t, core.OutcomeFailed, result.Outcome)
	assert.Contains(t, result.Err, "extraction failed")
	assert.Equal(t, 0, generator.CallCount(), "failed extraction must not call the model")
}

func TestScreenGenerationFailure(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string, temperature float64) (string, error) {
		return "", errors.New("backend down")
	}
	screener := newTestScreener(t, generator)

	result := screener.Screen(context.Background(), cvDoc("ana.txt", "texto do currículo"), "Vaga", "Descrição")

	assert.Equal(t, core.OutcomeFailed, result.Outcome)
	assert.Contains(t, result.Err, "generation failed")
}

func TestBraceSpan(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
		ok    bool
	}{
		{"plain object", `{"a": 1}`, `{"a": 1}`, true},
		{"prefixed", `Resultado: {"Nome": "Ana"}`, `{"Nome": "Ana"}`, true},
		{"truncated", `Resultado: {"Nome": "Ana"`, `{"Nome": "Ana"}`, true},
		{"no braces", "sem objeto aqui", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := braceSpan(tt.reply)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
