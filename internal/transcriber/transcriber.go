package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tantran2612/vidscribe/internal/fault"
)

// transcriptRequest carries the fixed capability set submitted with every
// job. The service silently skips features a plan does not include, so the
// richest tier is always requested.
type transcriptRequest struct {
	AudioURL          string `json:"audio_url"`
	Punctuate         bool   `json:"punctuate"`
	FormatText        bool   `json:"format_text"`
	AutoChapters      bool   `json:"auto_chapters"`
	SpeakerLabels     bool   `json:"speaker_labels"`
	AutoHighlights    bool   `json:"auto_highlights"`
	EntityDetection   bool   `json:"entity_detection"`
	SentimentAnalysis bool   `json:"sentiment_analysis"`
	Summarization     bool   `json:"summarization"`
	SummaryModel      string `json:"summary_model,omitempty"`
	SummaryType       string `json:"summary_type,omitempty"`
}

type transcriptPayload struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Error    string `json:"error"`
	Text     string `json:"text"`
	Summary  string `json:"summary"`
	Chapters []struct {
		Start    int64  `json:"start"`
		End      int64  `json:"end"`
		Headline string `json:"headline"`
		Summary  string `json:"summary"`
		Gist     string `json:"gist"`
	} `json:"chapters"`
	AutoHighlightsResult struct {
		Results []struct {
			Text  string  `json:"text"`
			Rank  float64 `json:"rank"`
			Count int     `json:"count"`
		} `json:"results"`
	} `json:"auto_highlights_result"`
	Entities []struct {
		EntityType string `json:"entity_type"`
		Text       string `json:"text"`
		Start      int64  `json:"start"`
		End        int64  `json:"end"`
	} `json:"entities"`
	SentimentAnalysisResults []struct {
		Text       string  `json:"text"`
		Sentiment  string  `json:"sentiment"`
		Confidence float64 `json:"confidence"`
	} `json:"sentiment_analysis_results"`
	Words []struct {
		Text       string  `json:"text"`
		Start      int64   `json:"start"`
		End        int64   `json:"end"`
		Confidence float64 `json:"confidence"`
	} `json:"words"`
}

// Transcribe uploads the audio file, creates a transcription job with the
// full capability set, and polls until the service settles it.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	if strings.TrimSpace(t.apiKey) == "" {
		return nil, fault.New(fault.KindBadCredentials, "transcription api key is not configured")
	}

	if _, err := os.Stat(audioPath); err != nil {
		return nil, fault.New(fault.KindMissingAudio, "audio file not found: %s", audioPath)
	}

	t.logger.Info(ctx, "Uploading audio for transcription: %s", audioPath)
	audioURL, err := t.upload(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	id, err := t.createTranscript(ctx, audioURL)
	if err != nil {
		return nil, err
	}

	t.logger.Info(ctx, "Transcript job %s created, polling", id)
	payload, err := t.awaitTranscript(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapResult(payload), nil
}

func (t *implTranscriber) upload(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", fault.New(fault.KindMissingAudio, "open audio file: %v", err)
	}
	defer file.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/v2/upload", file)
	if err != nil {
		return "", fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Authorization", t.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	var payload struct {
		UploadURL string `json:"upload_url"`
	}
	if err := t.do(req, &payload); err != nil {
		return "", err
	}
	if payload.UploadURL == "" {
		return "", fault.New(fault.KindTranscriptionFailed, "upload returned no url")
	}
	return payload.UploadURL, nil
}

func (t *implTranscriber) createTranscript(ctx context.Context, audioURL string) (string, error) {
	body := transcriptRequest{
		AudioURL:          audioURL,
		Punctuate:         true,
		FormatText:        true,
		AutoChapters:      true,
		SpeakerLabels:     true,
		AutoHighlights:    true,
		EntityDetection:   true,
		SentimentAnalysis: true,
		Summarization:     true,
		SummaryModel:      "informative",
		SummaryType:       "bullets",
	}

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		return "", fmt.Errorf("encode transcript request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/v2/transcript", buf)
	if err != nil {
		return "", fmt.Errorf("create transcript request: %w", err)
	}
	req.Header.Set("Authorization", t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var payload transcriptPayload
	if err := t.do(req, &payload); err != nil {
		return "", err
	}
	if payload.ID == "" {
		return "", fault.New(fault.KindTranscriptionFailed, "transcript job has no id")
	}
	return payload.ID, nil
}

func (t *implTranscriber) awaitTranscript(ctx context.Context, id string) (*transcriptPayload, error) {
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/v2/transcript/"+id, nil)
		if err != nil {
			return nil, fmt.Errorf("create poll request: %w", err)
		}
		req.Header.Set("Authorization", t.apiKey)

		var payload transcriptPayload
		if err := t.do(req, &payload); err != nil {
			return nil, err
		}

		switch payload.Status {
		case "completed":
			return &payload, nil
		case "error":
			return nil, serviceFault(payload.Error)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(t.pollInterval):
		}
	}
}

func (t *implTranscriber) do(req *http.Request, out interface{}) error {
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fault.New(fault.KindTranscriptionFailed, "transcription request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail := decodeAPIError(resp)
		if resp.StatusCode == http.StatusUnauthorized || isCredentialMessage(detail) {
			return fault.New(fault.KindBadCredentials, "invalid transcription api key: %s", detail)
		}
		return fault.New(fault.KindTranscriptionFailed, "transcription service error: status %d: %s", resp.StatusCode, detail)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fault.New(fault.KindTranscriptionFailed, "decode transcription response: %v", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) string {
	body, _ := io.ReadAll(resp.Body)

	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return apiErr.Error
	}
	return strings.TrimSpace(string(body))
}

// serviceFault maps a terminal job error to a failure kind. Credential
// complaints get their own kind so callers can report them distinctly.
func serviceFault(detail string) error {
	if isCredentialMessage(detail) {
		return fault.New(fault.KindBadCredentials, "invalid transcription api key: %s", detail)
	}
	return fault.New(fault.KindTranscriptionFailed, "transcription failed: %s", detail)
}

func isCredentialMessage(detail string) bool {
	m := strings.ToLower(detail)
	return strings.Contains(m, "api key") ||
		strings.Contains(m, "unauthorized") ||
		strings.Contains(m, "authentication")
}

func mapResult(p *transcriptPayload) *Result {
	r := &Result{
		Text:    p.Text,
		Summary: p.Summary,
	}

	for _, c := range p.Chapters {
		r.Chapters = append(r.Chapters, Chapter{
			Start:    float64(c.Start) / 1000,
			End:      float64(c.End) / 1000,
			Headline: c.Headline,
			Summary:  c.Summary,
			Gist:     c.Gist,
		})
	}
	for _, h := range p.AutoHighlightsResult.Results {
		r.Highlights = append(r.Highlights, Highlight{Text: h.Text, Rank: h.Rank, Count: h.Count})
	}
	for _, e := range p.Entities {
		r.Entities = append(r.Entities, Entity{
			Type:  e.EntityType,
			Text:  e.Text,
			Start: float64(e.Start) / 1000,
			End:   float64(e.End) / 1000,
		})
	}
	for _, s := range p.SentimentAnalysisResults {
		r.Sentiments = append(r.Sentiments, Sentiment{Text: s.Text, Sentiment: s.Sentiment, Confidence: s.Confidence})
	}
	for _, w := range p.Words {
		r.Words = append(r.Words, Word{
			Text:       w.Text,
			Start:      float64(w.Start) / 1000,
			End:        float64(w.End) / 1000,
			Confidence: w.Confidence,
		})
	}

	return r
}
