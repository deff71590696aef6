package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tantran2612/vidscribe/internal/acquirer"
	"github.com/tantran2612/vidscribe/internal/composer"
	"github.com/tantran2612/vidscribe/internal/fault"
	"github.com/tantran2612/vidscribe/internal/logger"
	"github.com/tantran2612/vidscribe/internal/pipeline"
)

type stubPipeline struct {
	outcome *pipeline.Outcome
	err     error
	gotURL  string
	gotOpts composer.Options
}

func (s *stubPipeline) Run(ctx context.Context, url string, opts composer.Options) (*pipeline.Outcome, error) {
	s.gotURL = url
	s.gotOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.outcome, nil
}

func setupTestServer(t *testing.T, pipe pipeline.Pipeline) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	api := newAPI(pipe, logger.New("error"))
	registerRoutes(engine, api)
	return engine
}

func successfulOutcome() *pipeline.Outcome {
	return &pipeline.Outcome{
		Text:   "a fine summary",
		Source: composer.SourceGenerated,
		Metadata: acquirer.Metadata{
			Title:       "Go Concurrency Patterns",
			Uploader:    "gophercon",
			Duration:    1858,
			ViewCount:   123456,
			UploadDate:  "20230515",
			Description: strings.Repeat("d", 600),
		},
		Report: pipeline.Report{
			HasChapters:  true,
			WordCount:    42,
			ChapterCount: 3,
		},
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestLivenessEndpoints(t *testing.T) {
	engine := setupTestServer(t, &stubPipeline{})

	for _, path := range []string{"/", "/test/"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
		if _, ok := decodeBody(t, rec)["message"]; !ok {
			t.Errorf("GET %s missing message field", path)
		}
	}
}

func TestEcho(t *testing.T) {
	engine := setupTestServer(t, &stubPipeline{})

	body := bytes.NewBufferString(`{"url": "https://youtu.be/abc"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo/", body)
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeBody(t, rec)["received_url"]; got != "https://youtu.be/abc" {
		t.Errorf("received_url = %v", got)
	}
}

func TestTranscribeFormInvalidURL(t *testing.T) {
	engine := setupTestServer(t, &stubPipeline{})

	form := url.Values{"url": {"https://example.com/watch"}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcribe/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestTranscribeJSONInvalidURLReturns200(t *testing.T) {
	engine := setupTestServer(t, &stubPipeline{})

	body := bytes.NewBufferString(`{"url": "https://example.com/watch"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcribe-json/", body)
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 (JSON surface reports errors in body)", rec.Code)
	}
	if _, ok := decodeBody(t, rec)["error"]; !ok {
		t.Error("expected error field in body")
	}
}

func TestTranscribeFormFaultStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		kind fault.Kind
		want int
	}{
		{"private", fault.KindPrivateVideo, http.StatusForbidden},
		{"not found", fault.KindNotFound, http.StatusNotFound},
		{"download failed", fault.KindDownloadFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipe := &stubPipeline{err: fault.New(tt.kind, "boom")}
			engine := setupTestServer(t, pipe)

			form := url.Values{"url": {"https://www.youtube.com/watch?v=abc"}}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/transcribe/", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			engine.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestTranscribeJSONFaultReturns200WithError(t *testing.T) {
	pipe := &stubPipeline{err: fault.New(fault.KindPrivateVideo, "the video is private and cannot be accessed")}
	engine := setupTestServer(t, pipe)

	body := bytes.NewBufferString(`{"url": "https://www.youtube.com/watch?v=abc"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcribe-json/", body)
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "the video is private and cannot be accessed" {
		t.Errorf("error = %v", got)
	}
}

func TestTranscribeFormSuccess(t *testing.T) {
	pipe := &stubPipeline{outcome: successfulOutcome()}
	engine := setupTestServer(t, pipe)

	form := url.Values{"url": {"https://www.youtube.com/watch?v=abc"}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcribe/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeBody(t, rec)["text"]; got != "a fine summary" {
		t.Errorf("text = %v", got)
	}
}

func TestTranscribeSummaryDefaultsAndPayload(t *testing.T) {
	pipe := &stubPipeline{outcome: successfulOutcome()}
	engine := setupTestServer(t, pipe)

	body := bytes.NewBufferString(`{"url": "https://www.youtube.com/watch?v=abc"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcribe-summary/", body)
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	if pipe.gotOpts.SummaryType != composer.TypeComprehensive {
		t.Errorf("SummaryType = %q, want default comprehensive", pipe.gotOpts.SummaryType)
	}
	if !pipe.gotOpts.IncludeTimestamps || !pipe.gotOpts.IncludeChapters || !pipe.gotOpts.IncludeHighlights {
		t.Errorf("toggles should default to true: %+v", pipe.gotOpts)
	}

	var resp summaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Metadata.Duration != "30:58" {
		t.Errorf("Duration = %q, want 30:58", resp.Metadata.Duration)
	}
	if resp.Metadata.UploadDate != "2023-05-15" {
		t.Errorf("UploadDate = %q", resp.Metadata.UploadDate)
	}
	if len(resp.Metadata.Description) != 500 {
		t.Errorf("Description length = %d, want truncated to 500", len(resp.Metadata.Description))
	}
	if resp.Processing.WordCount != 42 || resp.Processing.ChapterCount != 3 {
		t.Errorf("processing = %+v", resp.Processing)
	}
}

func TestTranscribeSummaryExplicitToggles(t *testing.T) {
	pipe := &stubPipeline{outcome: successfulOutcome()}
	engine := setupTestServer(t, pipe)

	body := bytes.NewBufferString(`{
		"url": "https://www.youtube.com/watch?v=abc",
		"summary_type": "bullets",
		"include_timestamps": false,
		"include_chapters": false,
		"include_highlights": false
	}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcribe-summary/", body)
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if pipe.gotOpts.SummaryType != composer.TypeBullets {
		t.Errorf("SummaryType = %q", pipe.gotOpts.SummaryType)
	}
	if pipe.gotOpts.IncludeTimestamps || pipe.gotOpts.IncludeChapters || pipe.gotOpts.IncludeHighlights {
		t.Errorf("explicit false toggles not honored: %+v", pipe.gotOpts)
	}
}
