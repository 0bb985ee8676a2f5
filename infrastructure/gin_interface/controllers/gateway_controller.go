package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajesharyain/magination/application/ports/inbound"
	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/domain"
	"github.com/rajesharyain/magination/infrastructure/gin_interface/dto"
)

// Error messages are part of the API contract; clients match on them.
const (
	msgNoImage         = "No image file provided"
	msgNoPrompt        = "No prompt provided"
	msgMissingParams   = "Missing required parameters"
	msgUploadFailed    = "Failed to upload image"
	msgVoiceFailed     = "Failed to generate voice"
	msgAnimationFailed = "Failed to create animation"
)

type GatewayController interface {
	UploadImage(c *gin.Context)
	GenerateVoice(c *gin.Context)
	Animate(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type gatewayController struct {
	gateway inbound.PipelineGatewayPort
	logger  outbound.LoggerPort
}

func NewGatewayController(gateway inbound.PipelineGatewayPort, logger outbound.LoggerPort) GatewayController {
	return &gatewayController{
		gateway: gateway,
		logger:  logger,
	}
}

func (g *gatewayController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgNoImage})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		g.logger.Error(err, "failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgUploadFailed})
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			g.logger.Error(closeErr, "failed to close uploaded file")
		}
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		g.logger.Error(err, "failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgUploadFailed})
		return
	}

	asset, err := g.gateway.UploadImage(c.Request.Context(), inbound.UploadImageParams{
		Content:      content,
		OriginalName: fileHeader.Filename,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoFile) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgNoImage})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgUploadFailed})
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{Url: asset.URL})
}

func (g *gatewayController) GenerateVoice(c *gin.Context) {
	var req dto.GenerateVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgNoPrompt})
		return
	}

	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgNoPrompt})
		return
	}

	res, err := g.gateway.SynthesizeVoice(c.Request.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPrompt) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgNoPrompt})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgVoiceFailed})
		return
	}

	c.JSON(http.StatusOK, dto.GenerateVoiceResponse{AudioUrl: res.AudioURL})
}

func (g *gatewayController) Animate(c *gin.Context) {
	var req dto.AnimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgMissingParams})
		return
	}

	if req.ImageUrl == "" || req.AudioUrl == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgMissingParams})
		return
	}

	res, err := g.gateway.AnimateImage(c.Request.Context(), req.ImageUrl, req.AudioUrl)
	if err != nil {
		if errors.Is(err, domain.ErrMissingParams) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgMissingParams})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgAnimationFailed})
		return
	}

	c.JSON(http.StatusOK, dto.AnimateResponse{VideoUrl: res.VideoURL})
}

func (g *gatewayController) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/upload", g.UploadImage)
	r.POST("/api/generate-voice", g.GenerateVoice)
	r.POST("/api/animate", g.Animate)
}
