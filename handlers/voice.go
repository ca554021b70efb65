// File: handlers/voice.go
package handlers

import (
	"encoding/base64"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"ttravels/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// voiceMimeTypes are the compressed formats browsers record in; they go
// through the model transcriber instead of the Cloud Speech WAV path.
var voiceMimeTypes = map[string]string{
	".webm": "audio/webm",
	".ogg":  "audio/ogg",
	".mp3":  "audio/mp3",
	".m4a":  "audio/mp4",
	".flac": "audio/flac",
}

// VoiceChatHandler runs a full voice turn: transcribe the uploaded audio,
// answer it, and synthesize the spoken reply. A synthesis failure still
// returns the text reply.
func VoiceChatHandler(c *gin.Context) {
	language := c.DefaultPostForm("language", "en-IN")
	conversationID := strings.TrimSpace(c.PostForm("conversation_id"))
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "audio file is required",
			"details": err.Error(),
		})
		return
	}
	defer file.Close()

	var transcript string
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if mime, ok := voiceMimeTypes[ext]; ok && transcriberSvc != nil {
		data, err := io.ReadAll(io.LimitReader(file, MaxFileSize))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read audio file"})
			return
		}
		transcript, err = transcriberSvc.Transcribe(c.Request.Context(), mime, data)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   "transcription failed",
				"details": err.Error(),
			})
			return
		}
	} else {
		var status int
		var err error
		transcript, status, err = transcribeUpload(c.Request.Context(), file, header.Filename, language)
		if err != nil {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
	}
	if transcript == "" {
		c.JSON(http.StatusOK, gin.H{
			"transcription":   "",
			"reply":           "I couldn't hear anything in that recording. Could you try again?",
			"conversation_id": conversationID,
		})
		return
	}

	result := assistantSvc.Respond(c.Request.Context(), transcript, conversationID)

	response := gin.H{
		"transcription":   transcript,
		"reply":           result.Reply,
		"conversation_id": conversationID,
		"trip_plan":       result.TripPlan,
		"hotel_results":   result.HotelResults,
		"timestamp":       result.Timestamp,
	}

	if ttsSvc != nil {
		audio, mime, err := ttsSvc.Synthesize(c.Request.Context(), result.Reply)
		if err != nil {
			utils.GetLogger().Warn("Reply synthesis failed", zap.Error(err))
		} else {
			response["audio_base64"] = base64.StdEncoding.EncodeToString(audio)
			response["audio_mime"] = mime
		}
	}

	c.JSON(http.StatusOK, response)
}

// TextToSpeechHandler synthesizes arbitrary text.
func TextToSpeechHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "text is required",
			"details": err.Error(),
		})
		return
	}
	if ttsSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "text-to-speech is not configured"})
		return
	}

	audio, mime, err := ttsSvc.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "speech synthesis failed",
			"details": err.Error(),
		})
		return
	}
	c.Data(http.StatusOK, mime, audio)
}
