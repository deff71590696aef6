package transcriber

// Result is the transcription payload handed to the composer. Only Text is
// guaranteed; everything else depends on what the service produced and
// defaults to its zero value when absent.
type Result struct {
	Text       string
	Summary    string
	Chapters   []Chapter
	Highlights []Highlight
	Entities   []Entity
	Sentiments []Sentiment
	Words      []Word
}

// Chapter bounds are in seconds; the service reports milliseconds and the
// conversion happens at this package's boundary.
type Chapter struct {
	Start    float64
	End      float64
	Headline string
	Summary  string
	Gist     string
}

type Highlight struct {
	Text  string
	Rank  float64
	Count int
}

type Entity struct {
	Type  string
	Text  string
	Start float64
	End   float64
}

type Sentiment struct {
	Text       string
	Sentiment  string
	Confidence float64
}

type Word struct {
	Text       string
	Start      float64
	End        float64
	Confidence float64
}
