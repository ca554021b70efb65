// File: services/translate/translate.go
package translate

import (
	"context"
	"fmt"
	"strings"

	"ttravels/utils"

	"go.uber.org/zap"
)

// TextGenerator is the model call used for translation.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// supportedLanguages maps language codes to display names.
var supportedLanguages = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"bn": "Bengali",
	"ta": "Tamil",
	"te": "Telugu",
	"mr": "Marathi",
	"gu": "Gujarati",
	"kn": "Kannada",
	"ml": "Malayalam",
	"pa": "Punjabi",
	"or": "Odia",
	"as": "Assamese",
	"ur": "Urdu",
}

// Service translates assistant replies into the user's language.
type Service interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
	Languages() map[string]string
}

// GeminiTranslator performs translation through the generative model.
type GeminiTranslator struct {
	LLM TextGenerator
}

func NewGeminiTranslator(llm TextGenerator) *GeminiTranslator {
	return &GeminiTranslator{LLM: llm}
}

func (t *GeminiTranslator) Languages() map[string]string {
	out := make(map[string]string, len(supportedLanguages))
	for code, name := range supportedLanguages {
		out[code] = name
	}
	return out
}

// Translate renders text in the target language. English and unsupported
// codes return the text unchanged; a failed model call does too, so a
// translation outage never breaks the reply.
func (t *GeminiTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	targetLang = strings.ToLower(strings.TrimSpace(targetLang))
	if text == "" || targetLang == "" || targetLang == "en" {
		return text, nil
	}
	name, ok := supportedLanguages[targetLang]
	if !ok {
		return text, fmt.Errorf("unsupported language code %q", targetLang)
	}
	if t.LLM == nil {
		return text, fmt.Errorf("translation is not configured")
	}

	prompt := fmt.Sprintf(`Translate the following text to %s. Preserve line breaks, numbers, currency amounts, dates and proper nouns like city and hotel names. Return ONLY the translation, nothing else.

Text:
%s`, name, text)

	translated, err := t.LLM.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("Translation failed, returning original text",
			zap.String("targetLang", targetLang), zap.Error(err))
		return text, err
	}
	translated = strings.TrimSpace(translated)
	if translated == "" {
		return text, fmt.Errorf("translation returned empty output")
	}
	return translated, nil
}
