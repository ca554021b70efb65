// File: services/speech/tts.go
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	elevenLabsBaseURL = "https://api.elevenlabs.io/v1"
	// Voice id for "Rachel".
	defaultVoiceID = "21m00Tcm4TlvDq8ikWAM"
	defaultModelID = "eleven_multilingual_v2"
)

// TTSService synthesizes speech from assistant replies via ElevenLabs.
type TTSService interface {
	Synthesize(ctx context.Context, text string) ([]byte, string, error)
}

// ElevenLabsService is the HTTP-backed TTSService.
type ElevenLabsService struct {
	apiKey     string
	baseURL    string
	voiceID    string
	httpClient *http.Client
}

func NewElevenLabsService(apiKey string) *ElevenLabsService {
	return &ElevenLabsService{
		apiKey:     apiKey,
		baseURL:    elevenLabsBaseURL,
		voiceID:    defaultVoiceID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type ttsRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Synthesize converts text into audio bytes and returns the MIME type of the
// payload.
func (s *ElevenLabsService) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	if s.apiKey == "" {
		return nil, "", fmt.Errorf("text-to-speech is not configured")
	}
	if text == "" {
		return nil, "", fmt.Errorf("nothing to synthesize")
	}

	body, err := json.Marshal(ttsRequest{Text: text, ModelID: defaultModelID})
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode tts request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", s.baseURL, s.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("failed to build tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", s.apiKey)
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read tts response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("tts provider returned status %d: %s", resp.StatusCode, truncate(audio, 200))
	}
	return audio, "audio/mpeg", nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
