package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tarsier/internal/dto"
	"github.com/lshigami/Tarsier/internal/service"
	"github.com/rs/zerolog/log"
)

type VisionController struct {
	visionSvc service.VisionService
}

func NewVisionController(visionSvc service.VisionService) *VisionController {
	return &VisionController{visionSvc: visionSvc}
}

// AnswerImageQuestion godoc
// @Summary Answer a question captured as a screenshot or photo
// @Description Accepts an image plus optional prompt and answer choices, returns the model's answer. The result is saved into the session's history.
// @Tags Vision
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Photo or screenshot to analyze"
// @Param prompt formData string false "Additional question text if the screenshot lacks context"
// @Param options formData string false "Semicolon- or newline-separated answer choices"
// @Param model formData string false "Model override"
// @Param X-Session-Id header string false "Opaque session identifier"
// @Success 200 {object} dto.ImageQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable image file"
// @Failure 500 {object} dto.ErrorResponse "Answer generation failed"
// @Router /api/image-question [post]
func (c *VisionController) AnswerImageQuestion(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Image file is required", Details: []string{err.Error()}})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Unable to open uploaded image", Details: []string{err.Error()}})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Unable to read uploaded image", Details: []string{err.Error()}})
		return
	}

	input := dto.ImageQuestionInput{
		Image:    image,
		MIMEType: fileHeader.Header.Get("Content-Type"),
		Prompt:   ctx.PostForm("prompt"),
		Options:  service.ParseOptions(ctx.PostForm("options")),
		Model:    ctx.PostForm("model"),
	}

	resp, err := c.visionSvc.AnswerImageQuestion(ctx.Request.Context(), sessionID(ctx), input)
	if err != nil {
		log.Error().Err(err).Msg("AnswerImageQuestion: pipeline failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to answer image question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
