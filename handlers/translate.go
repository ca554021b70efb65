// File: handlers/translate.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TranslateHandler translates a piece of text to a supported language.
func TranslateHandler(c *gin.Context) {
	var req struct {
		Text       string `json:"text" binding:"required"`
		TargetLang string `json:"target_lang" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "text and target_lang are required",
			"details": err.Error(),
		})
		return
	}
	if translateSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "translation is not configured"})
		return
	}

	translated, err := translateSvc.Translate(c.Request.Context(), req.Text, req.TargetLang)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "translation failed",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"translated_text": translated,
		"target_lang":     req.TargetLang,
	})
}

// LanguagesHandler lists the supported translation languages.
func LanguagesHandler(c *gin.Context) {
	if translateSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "translation is not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"languages": translateSvc.Languages()})
}
