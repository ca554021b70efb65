// File: handlers/stt.go
package handlers

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"ttravels/config"

	speech "cloud.google.com/go/speech/apiv1"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

const (
	MaxDurationSeconds = 60              // 1 minute maximum
	MaxFileSize        = 5 * 1024 * 1024 // 5MB (conservative buffer)
	AllowedExtension   = ".wav"
)

type waveHeader struct {
	RiffTag       [4]byte
	FileSize      uint32
	WaveTag       [4]byte
	FmtTag        [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataTag       [4]byte
	DataSize      uint32
}

func parseWaveHeader(data []byte) (*waveHeader, error) {
	if len(data) < 44 {
		return nil, errors.New("invalid WAV header length")
	}

	var header waveHeader
	buf := bytes.NewReader(data)
	fields := []interface{}{
		&header.RiffTag, &header.FileSize, &header.WaveTag,
		&header.FmtTag, &header.FmtSize, &header.AudioFormat,
		&header.NumChannels, &header.SampleRate, &header.ByteRate,
		&header.BlockAlign, &header.BitsPerSample,
		&header.DataTag, &header.DataSize,
	}
	for _, f := range fields {
		if err := binary.Read(buf, binary.LittleEndian, f); err != nil {
			return nil, err
		}
	}
	return &header, nil
}

func validateWaveDuration(header *waveHeader) error {
	if header.ByteRate == 0 {
		return errors.New("invalid WAV byte rate")
	}
	seconds := float64(header.DataSize) / float64(header.ByteRate)
	if seconds > MaxDurationSeconds {
		return fmt.Errorf("audio is %.0fs long, maximum is %ds", seconds, MaxDurationSeconds)
	}
	return nil
}

func convertAudio(inputPath, outputPath string) error {
	_, err := exec.LookPath("ffmpeg")
	if err != nil {
		return fmt.Errorf("ffmpeg not found in system PATH: %v", err)
	}

	cmd := exec.Command("ffmpeg",
		"-y",
		"-i", inputPath,
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", "16000",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %s", stderr.String())
	}
	return nil
}

// transcribeUpload saves the uploaded WAV, normalizes it to 16kHz mono PCM
// and runs Google speech recognition. Shared by the transcription endpoint
// and the voice chat endpoint.
func transcribeUpload(ctx context.Context, file multipart.File, filename, language string) (string, int, error) {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != AllowedExtension {
		return "", http.StatusBadRequest, fmt.Errorf("invalid file type: expected %s, got %s", AllowedExtension, ext)
	}

	tempInput, err := os.CreateTemp("", "audio-*.wav")
	if err != nil {
		return "", http.StatusInternalServerError, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempInput.Name())
	defer tempInput.Close()

	if _, err := io.Copy(tempInput, io.LimitReader(file, MaxFileSize)); err != nil {
		return "", http.StatusInternalServerError, fmt.Errorf("failed to save audio file: %w", err)
	}

	raw, err := os.ReadFile(tempInput.Name())
	if err != nil {
		return "", http.StatusInternalServerError, fmt.Errorf("failed to read audio file: %w", err)
	}
	if header, err := parseWaveHeader(raw); err == nil {
		if err := validateWaveDuration(header); err != nil {
			return "", http.StatusBadRequest, err
		}
	}

	tempOutput, err := os.CreateTemp("", "converted-*.wav")
	if err != nil {
		return "", http.StatusInternalServerError, fmt.Errorf("failed to create output temp file: %w", err)
	}
	defer os.Remove(tempOutput.Name())
	defer tempOutput.Close()

	if err := convertAudio(tempInput.Name(), tempOutput.Name()); err != nil {
		return "", http.StatusBadRequest, fmt.Errorf("audio conversion failed: %w", err)
	}

	audioData, err := os.ReadFile(tempOutput.Name())
	if err != nil {
		return "", http.StatusInternalServerError, fmt.Errorf("failed to read converted audio: %w", err)
	}

	client, err := speech.NewClient(ctx, option.WithCredentialsFile(config.AppConfig.GoogleServiceAccountFile))
	if err != nil {
		return "", http.StatusInternalServerError, fmt.Errorf("failed to initialize speech client: %w", err)
	}
	defer client.Close()

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			LanguageCode:      language,
			AudioChannelCount: 1, // Mono
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: audioData,
			},
		},
	}

	resp, err := client.Recognize(ctx, req)
	if err != nil {
		return "", http.StatusInternalServerError, fmt.Errorf("speech recognition failed: %w", err)
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	return strings.TrimSpace(transcript.String()), http.StatusOK, nil
}

// SpeechToTextHandler transcribes an uploaded WAV recording.
func SpeechToTextHandler(c *gin.Context) {
	language := c.DefaultPostForm("language", "en-IN")

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "audio file is required",
			"details": err.Error(),
		})
		return
	}
	defer file.Close()

	transcript, status, err := transcribeUpload(c.Request.Context(), file, header.Filename, language)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transcription": transcript,
	})
}
