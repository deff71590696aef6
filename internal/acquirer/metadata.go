package acquirer

import (
	"bytes"
	"encoding/json"
)

// Metadata describes a video as reported by the extraction tool.
// Every field has a defined default so absent payload fields never
// propagate as surprises downstream.
type Metadata struct {
	Title       string
	Description string
	Duration    int
	Uploader    string
	ViewCount   int64
	LikeCount   int64
	UploadDate  string
	Categories  []string
	Tags        []string
	ChannelURL  string
}

// probeInfo mirrors the fields of interest in yt-dlp's --dump-json output.
type probeInfo struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    float64  `json:"duration"`
	Uploader    string   `json:"uploader"`
	ViewCount   int64    `json:"view_count"`
	LikeCount   int64    `json:"like_count"`
	UploadDate  string   `json:"upload_date"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
	ChannelURL  string   `json:"channel_url"`
}

func decodeMetadata(data []byte) (Metadata, error) {
	var info probeInfo
	if err := json.Unmarshal(bytes.TrimSpace(data), &info); err != nil {
		return Metadata{}, err
	}

	md := Metadata{
		Title:       info.Title,
		Description: info.Description,
		Duration:    int(info.Duration),
		Uploader:    info.Uploader,
		ViewCount:   info.ViewCount,
		LikeCount:   info.LikeCount,
		UploadDate:  info.UploadDate,
		Categories:  info.Categories,
		Tags:        info.Tags,
		ChannelURL:  info.ChannelURL,
	}

	if md.Title == "" {
		md.Title = "Unknown Title"
	}
	if md.Description == "" {
		md.Description = "No description available"
	}
	if md.Uploader == "" {
		md.Uploader = "Unknown Uploader"
	}
	if md.Duration < 0 {
		md.Duration = 0
	}
	if md.ViewCount < 0 {
		md.ViewCount = 0
	}
	if md.LikeCount < 0 {
		md.LikeCount = 0
	}

	return md, nil
}

// placeholderMetadata stands in when metadata extraction fails; the
// request still proceeds to download and transcription.
func placeholderMetadata() Metadata {
	return Metadata{
		Title:       "Unknown",
		Description: "Failed to extract video information",
		Uploader:    "Unknown Uploader",
	}
}
