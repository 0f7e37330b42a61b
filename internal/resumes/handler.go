package resumes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/llm"
	"resume-insight/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

const (
	defaultListLimit = 100
	maxListLimit     = 200
)

// Handler wires HTTP handlers to the pipeline and repo.
type Handler struct {
	Pipeline *Pipeline
	Repo     Repo
}

// NewHandler constructs a Handler.
func NewHandler(pipeline *Pipeline, repo Repo) *Handler {
	return &Handler{Pipeline: pipeline, Repo: repo}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/upload", h.upload)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.DELETE("/resumes/:id", h.delete)
}

func (h *Handler) upload(c *gin.Context) {
	if h.Pipeline.LLM == nil {
		respond.Error(c, http.StatusInternalServerError, "llm_not_configured", "LLM service is not configured", nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	resume, err := h.Pipeline.Process(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		h.uploadError(c, err)
		return
	}

	c.Set("resumeId", resume.ID)
	respond.OK(c, UploadResponse{
		Message:  "Resume uploaded and processed successfully!",
		ResumeID: resume.ID,
		Data:     resume,
	})
}

func (h *Handler) uploadError(c *gin.Context, err error) {
	stage := "unknown"
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		stage = stageErr.Stage
	}
	c.Set("failedStage", stage)

	switch {
	case errors.Is(err, ErrNoText):
		respond.Error(c, http.StatusBadRequest, "no_text_extracted", "could not extract text from the uploaded file", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume record disappeared during processing", nil)
	case llm.IsRateLimit(err):
		respond.Error(c, http.StatusInternalServerError, "llm_rate_limited", "LLM provider rate limit exceeded, try again later", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "processing_failed", fmt.Sprintf("resume processing failed at stage %s", stage), nil)
	}
}

func (h *Handler) list(c *gin.Context) {
	skip := 0
	limit := defaultListLimit

	if v := c.Query("skip"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			skip = parsed
		}
	}
	if skip < 0 {
		skip = 0
	}

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	resumes, err := h.Repo.List(c.Request.Context(), skip, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}

	out := make([]Summary, 0, len(resumes))
	for _, r := range resumes {
		out = append(out, toSummary(r))
	}
	respond.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resume, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		return
	}
	respond.OK(c, resume)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resume, err := h.Repo.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete resume", nil)
		return
	}

	respond.OK(c, gin.H{
		"message": "Resume deleted successfully",
		"data":    resume,
	})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}
