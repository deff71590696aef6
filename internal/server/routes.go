package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tantran2612/vidscribe/internal/composer"
	"github.com/tantran2612/vidscribe/internal/fault"
	"github.com/tantran2612/vidscribe/internal/logger"
	"github.com/tantran2612/vidscribe/internal/pipeline"
)

const invalidURLMessage = "Invalid YouTube URL provided"

type API struct {
	pipeline pipeline.Pipeline
	logger   logger.Logger
}

func newAPI(pipe pipeline.Pipeline, log logger.Logger) *API {
	return &API{pipeline: pipe, logger: log}
}

func registerRoutes(r *gin.Engine, api *API) {
	r.GET("/", api.handleRoot)
	r.GET("/test/", api.handleTest)
	r.POST("/echo/", api.handleEcho)
	r.POST("/transcribe/", api.handleTranscribeForm)
	r.POST("/transcribe-json/", api.handleTranscribeJSON)
	r.POST("/transcribe-summary/", api.handleTranscribeSummary)
}

func (a *API) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "vidscribe API is running"})
}

func (a *API) handleTest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Test endpoint is working"})
}

func (a *API) handleEcho(c *gin.Context) {
	var payload struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	c.JSON(http.StatusOK, gin.H{"received_url": payload.URL})
}

// handleTranscribeForm is the form-encoded surface. Failures are reported
// as HTTP error statuses derived from the failure kind.
func (a *API) handleTranscribeForm(c *gin.Context) {
	url := c.PostForm("url")
	if !isVideoHostURL(url) {
		respondMessage(c, http.StatusBadRequest, invalidURLMessage)
		return
	}

	outcome, err := a.pipeline.Run(c.Request.Context(), url, composer.DefaultOptions())
	if err != nil {
		a.logger.Error(c.Request.Context(), "Transcribe request failed: %v", err)
		respondMessage(c, fault.StatusOf(err), fault.DetailOf(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": outcome.Text})
}

// handleTranscribeJSON preserves the historical JSON surface contract:
// every failure is an HTTP 200 carrying an error body.
func (a *API) handleTranscribeJSON(c *gin.Context) {
	var payload struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "invalid request body"})
		return
	}

	if !isVideoHostURL(payload.URL) {
		a.logger.Warn(c.Request.Context(), "Invalid URL provided: %s", payload.URL)
		c.JSON(http.StatusOK, gin.H{"error": invalidURLMessage})
		return
	}

	outcome, err := a.pipeline.Run(c.Request.Context(), payload.URL, composer.DefaultOptions())
	if err != nil {
		a.logger.Error(c.Request.Context(), "Transcribe request failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"error": fault.DetailOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": outcome.Text})
}

type summaryRequest struct {
	URL               string `json:"url"`
	SummaryType       string `json:"summary_type"`
	IncludeTimestamps *bool  `json:"include_timestamps"`
	IncludeChapters   *bool  `json:"include_chapters"`
	IncludeHighlights *bool  `json:"include_highlights"`
}

type summaryMetadata struct {
	Title       string `json:"title"`
	Uploader    string `json:"uploader"`
	Duration    string `json:"duration"`
	ViewCount   int64  `json:"view_count"`
	UploadDate  string `json:"upload_date"`
	Description string `json:"description"`
}

type summaryProcessing struct {
	HasChapters        bool `json:"has_chapters"`
	HasSummary         bool `json:"has_summary"`
	HasHighlights      bool `json:"has_highlights"`
	WordCount          int  `json:"word_count"`
	ChapterCount       int  `json:"chapter_count"`
	TimestampsIncluded bool `json:"timestamps_included"`
	ChaptersIncluded   bool `json:"chapters_included"`
	HighlightsIncluded bool `json:"highlights_included"`
}

type summaryResponse struct {
	Text       string            `json:"text"`
	Source     string            `json:"source"`
	Metadata   summaryMetadata   `json:"metadata"`
	Processing summaryProcessing `json:"processing"`
}

// handleTranscribeSummary follows the JSON surface convention (200 with
// an error body on failure) and returns the richer payload.
func (a *API) handleTranscribeSummary(c *gin.Context) {
	var payload summaryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "invalid request body"})
		return
	}

	if !isVideoHostURL(payload.URL) {
		c.JSON(http.StatusOK, gin.H{"error": invalidURLMessage})
		return
	}

	opts := composer.DefaultOptions()
	if payload.SummaryType != "" {
		opts.SummaryType = payload.SummaryType
	}
	if payload.IncludeTimestamps != nil {
		opts.IncludeTimestamps = *payload.IncludeTimestamps
	}
	if payload.IncludeChapters != nil {
		opts.IncludeChapters = *payload.IncludeChapters
	}
	if payload.IncludeHighlights != nil {
		opts.IncludeHighlights = *payload.IncludeHighlights
	}

	outcome, err := a.pipeline.Run(c.Request.Context(), payload.URL, opts)
	if err != nil {
		a.logger.Error(c.Request.Context(), "Summary request failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"error": fault.DetailOf(err)})
		return
	}

	md := outcome.Metadata
	c.JSON(http.StatusOK, summaryResponse{
		Text:   outcome.Text,
		Source: string(outcome.Source),
		Metadata: summaryMetadata{
			Title:       md.Title,
			Uploader:    md.Uploader,
			Duration:    composer.FormatTimestamp(float64(md.Duration)),
			ViewCount:   md.ViewCount,
			UploadDate:  composer.FormatUploadDate(md.UploadDate),
			Description: truncate(md.Description, 500),
		},
		Processing: summaryProcessing{
			HasChapters:        outcome.Report.HasChapters,
			HasSummary:         outcome.Report.HasSummary,
			HasHighlights:      outcome.Report.HasHighlights,
			WordCount:          outcome.Report.WordCount,
			ChapterCount:       outcome.Report.ChapterCount,
			TimestampsIncluded: outcome.Report.TimestampsIncluded,
			ChaptersIncluded:   outcome.Report.ChaptersIncluded,
			HighlightsIncluded: outcome.Report.HighlightsIncluded,
		},
	})
}

// isVideoHostURL checks for a recognized video-hosting hostname pattern.
func isVideoHostURL(url string) bool {
	if url == "" {
		return false
	}
	return strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
