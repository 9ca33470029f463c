package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tarsier/internal/dto"
	"github.com/lshigami/Tarsier/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewSvc service.InterviewService
}

func NewInterviewController(interviewSvc service.InterviewService) *InterviewController {
	return &InterviewController{interviewSvc: interviewSvc}
}

// ProcessInterview godoc
// @Summary Transcribe a recorded question and generate answers
// @Description Accepts an audio blob plus optional context sections, returns the transcript with a quick and a full answer. The result is saved into the session's history.
// @Tags Interview
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Recorded audio blob"
// @Param position formData string false "Position being interviewed for"
// @Param model formData string false "Model override"
// @Param job_description formData string false "Job description text"
// @Param company_info formData string false "Company overview text"
// @Param about_you formData string false "Candidate summary text"
// @Param resume formData string false "Resume highlights"
// @Param X-Session-Id header string false "Opaque session identifier"
// @Success 200 {object} dto.InterviewResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable audio file"
// @Failure 500 {object} dto.ErrorResponse "Answer generation failed"
// @Router /api/interview [post]
func (c *InterviewController) ProcessInterview(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Audio file is required", Details: []string{err.Error()}})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Unable to open uploaded file", Details: []string{err.Error()}})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Unable to read uploaded file", Details: []string{err.Error()}})
		return
	}

	input := dto.InterviewInput{
		Audio:          audio,
		Filename:       fileHeader.Filename,
		MIMEType:       fileHeader.Header.Get("Content-Type"),
		Position:       ctx.PostForm("position"),
		Model:          ctx.PostForm("model"),
		JobDescription: ctx.PostForm("job_description"),
		CompanyInfo:    ctx.PostForm("company_info"),
		AboutYou:       ctx.PostForm("about_you"),
		Resume:         ctx.PostForm("resume"),
	}

	resp, err := c.interviewSvc.ProcessInterview(ctx.Request.Context(), sessionID(ctx), input)
	if err != nil {
		log.Error().Err(err).Msg("ProcessInterview: pipeline failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to process interview snippet", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
