package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rajesharyain/magination/application/ports/inbound"
	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/domain"
	"github.com/rajesharyain/magination/infrastructure/gin_interface/dto"
)

const (
	msgTextRequired   = "Text is required"
	msgNoScript       = "No script file provided"
	msgJSONOnly       = "Only JSON files are allowed"
	msgAudioFailed    = "Failed to generate audio"
	msgScriptFailed   = "Failed to process script"
	msgBadRequestBody = "Invalid request body"
	msgInvalidScenes  = "Invalid script file"
	msgEmptySceneText = "Every scene needs text"
)

type SpeechController interface {
	Languages(c *gin.Context)
	Emotions(c *gin.Context)
	GenerateAudio(c *gin.Context)
	ProcessScript(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type speechController struct {
	speech inbound.SpeechPort
	logger outbound.LoggerPort
}

func NewSpeechController(speech inbound.SpeechPort, logger outbound.LoggerPort) SpeechController {
	return &speechController{
		speech: speech,
		logger: logger,
	}
}

func (s *speechController) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, s.speech.Languages())
}

func (s *speechController) Emotions(c *gin.Context) {
	c.JSON(http.StatusOK, s.speech.Emotions())
}

func (s *speechController) GenerateAudio(c *gin.Context) {
	// Defaults mirror the request model: English, neutral, normal speed.
	req := dto.GenerateAudioRequest{
		Language: domain.DefaultLanguageCode,
		Emotion:  domain.DefaultEmotion,
		Speed:    1.0,
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.SpeechErrorResponse{Error: msgBadRequestBody})
		return
	}

	if req.Text == "" {
		c.JSON(http.StatusBadRequest, dto.SpeechErrorResponse{Error: msgTextRequired})
		return
	}

	audioURL, err := s.speech.GenerateAudio(c.Request.Context(), inbound.GenerateAudioParams{
		Text:         req.Text,
		LanguageCode: req.Language,
		Emotion:      req.Emotion,
		Speed:        req.Speed,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, dto.SpeechErrorResponse{Error: msgTextRequired})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.SpeechErrorResponse{Error: msgAudioFailed})
		return
	}

	c.JSON(http.StatusOK, dto.GenerateAudioResponse{
		Success:  true,
		AudioUrl: audioURL,
	})
}

func (s *speechController) ProcessScript(c *gin.Context) {
	fileHeader, err := c.FormFile("script")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.SpeechErrorResponse{Error: msgNoScript})
		return
	}

	if !strings.HasSuffix(fileHeader.Filename, ".json") {
		c.JSON(http.StatusBadRequest, dto.SpeechErrorResponse{Error: msgJSONOnly})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error(err, "failed to open script file")
		c.JSON(http.StatusInternalServerError, dto.SpeechErrorResponse{Error: msgScriptFailed})
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.logger.Error(closeErr, "failed to close script file")
		}
	}()

	scriptJSON, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error(err, "failed to read script file")
		c.JSON(http.StatusInternalServerError, dto.SpeechErrorResponse{Error: msgScriptFailed})
		return
	}

	audioFiles, err := s.speech.ProcessScript(c.Request.Context(), scriptJSON)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBadScript):
			c.JSON(http.StatusBadRequest, dto.SpeechErrorResponse{Error: msgInvalidScenes})
		case errors.Is(err, domain.ErrEmptyText):
			c.JSON(http.StatusBadRequest, dto.SpeechErrorResponse{Error: msgEmptySceneText})
		default:
			c.JSON(http.StatusInternalServerError, dto.SpeechErrorResponse{Error: msgScriptFailed})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ProcessScriptResponse{
		Success:    true,
		AudioFiles: audioFiles,
	})
}

func (s *speechController) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/languages", s.Languages)
	r.GET("/api/emotions", s.Emotions)
	r.POST("/api/generate-audio", s.GenerateAudio)
	r.POST("/api/process-script", s.ProcessScript)
}
