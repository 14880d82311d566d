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


package moderation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumlabs/converso/ai/mock"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ofensivo", Normalize("OFENSIVO"))
	assert.Equal(t, "atencao", Normalize("Atenção"))
	assert.Equal(t, "ja e tarde", Normalize("Já É Tarde"))
}

func TestCheckBlocklistShortCircuits(t *testing.T) {
	classifier := mock.NewMockGenerator()
	guard, err := NewGuard(classifier, WithBlocklist([]string{"ofensivo1"}))
	require.NoError(t, err)

	unsafe := guard.Check(context.Background(), "Isso é ofensivo1 mesmo")
	assert.True(t, unsafe)
	assert.Equal(t, 0, classifier.CallCount(), "classifier must not run after a blocklist hit")
}

func TestCheckBlocklistIgnoresCaseAndDiacritics(t *testing.T) {
	classifier := mock.NewMockGenerator()
	guard, err := NewGuard(classifier, WithBlocklist([]string{"palavrao"}))
	require.NoError(t, err)

	assert.True(t, guard.Check(context.Background(), "Que PALAVRÃO feio"))
	assert.Equal(t, 0, classifier.CallCount())
}

func TestCheckBlocklistRequiresWordBoundary(t *testing.T) {
	classifier := mock.NewMockGenerator()
	classifier.FixedReply = "NAO"
	guard, err := NewGuard(classifier, WithBlocklist([]string{"galo"}))
	require.NoError(t, err)

	// "galopar" contains the term but not as a whole word.
	assert.False(t, guard.Check(context.Background(), "o cavalo vai galopar"))
	assert.Equal(t, 1, classifier.CallCount())
}

func TestCheckClassifierDecides(t *testing.T) {
	t.Run("affirmative token flags unsafe", func(t *testing.T) {
		classifier := mock.NewMockGenerator()
		classifier.FixedReply = "SIM"
		guard, err := NewGuard(classifier)
		require.NoError(t, err)

		assert.True(t, guard.Check(context.Background(), "texto aparentemente normal"))
		assert.Contains(t, classifier.LastPrompt(), "texto aparentemente normal")
		assert.Equal(t, float64(0), classifier.LastTemperature())
	})

	t.Run("negative reply is safe", func(t *testing.T) {
		classifier := mock.NewMockGenerator()
		classifier.FixedReply = "NAO"
		guard, err := NewGuard(classifier)
		require.NoError(t, err)

		assert.False(t, guard.Check(context.Background(), "bom dia"))
	})

	t.Run("ambiguous reply is safe", func(t *testing.T) {
		classifier := mock.NewMockGenerator()
		classifier.FixedReply = "Sim, esse texto parece ofensivo."
		guard, err := NewGuard(classifier)
		require.NoError(t, err)

		assert.False(t, guard.Check(context.Background(), "bom dia"))
	})

	t.Run("trims whitespace around the token", func(t *testing.T) {
		classifier := mock.NewMockGenerator()
		classifier.FixedReply = "  SIM\n"
		guard, err := NewGuard(classifier)
		require.NoError(t, err)

		assert.True(t, guard.Check(context.Background(), "bom dia"))
	})
}

func TestCheckFailsOpen(t *testing.T) {
	classifier := mock.NewMockGenerator()
	classifier.GenerateFunc = func(ctx context.Context, prompt string, temperature float64) (string, error) {
		return "", errors.New("backend down")
	}
	guard, err := NewGuard(classifier)
	require.NoError(t, err)

	assert.False(t, guard.Check(context.Background(), "qualquer texto"))
}

func TestNewGuardRequiresClassifier(t *testing.T) {
	_, err := NewGuard(nil)
	assert.ErrorIs(t, err, ErrClassifierRequired)
}
