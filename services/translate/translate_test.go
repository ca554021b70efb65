// File: services/translate/translate_test.go
package translate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	response string
	err      error
	prompt   string
}

func (f *fakeLLM) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func TestTranslate(t *testing.T) {
	t.Run("english passes through without a model call", func(t *testing.T) {
		llm := &fakeLLM{}
		svc := NewGeminiTranslator(llm)
		got, err := svc.Translate(context.Background(), "Hello", "en")
		require.NoError(t, err)
		assert.Equal(t, "Hello", got)
		assert.Empty(t, llm.prompt)
	})

	t.Run("translates via the model", func(t *testing.T) {
		llm := &fakeLLM{response: "नमस्ते"}
		svc := NewGeminiTranslator(llm)
		got, err := svc.Translate(context.Background(), "Hello", "hi")
		require.NoError(t, err)
		assert.Equal(t, "नमस्ते", got)
		assert.Contains(t, llm.prompt, "Hindi")
	})

	t.Run("unsupported code returns original with error", func(t *testing.T) {
		svc := NewGeminiTranslator(&fakeLLM{})
		got, err := svc.Translate(context.Background(), "Hello", "xx")
		require.Error(t, err)
		assert.Equal(t, "Hello", got)
	})

	t.Run("model failure returns original text", func(t *testing.T) {
		svc := NewGeminiTranslator(&fakeLLM{err: errors.New("down")})
		got, err := svc.Translate(context.Background(), "Hello", "ta")
		require.Error(t, err)
		assert.Equal(t, "Hello", got)
	})
}

func TestLanguages(t *testing.T) {
	svc := NewGeminiTranslator(nil)
	langs := svc.Languages()
	assert.Equal(t, "Hindi", langs["hi"])
	assert.Equal(t, "English", langs["en"])

	// Returned map is a copy.
	langs["hi"] = "mutated"
	assert.Equal(t, "Hindi", svc.Languages()["hi"])
}
