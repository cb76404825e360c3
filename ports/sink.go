package ports

// Series is a ranked one-dimensional numeric view: parallel label/value
// slices in ranked order.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Len returns the number of entries in the series.
func (s Series) Len() int {
	return len(s.Labels)
}

// ChartSink is the visualization collaborator. It either renders the series
// interactively or persists it to outputPath when one is given. Callers treat
// a render failure as a warning: it never aborts the computation that
// produced the series.
type ChartSink interface {
	Render(series Series, title, xLabel, yLabel, outputPath string) error
}

// NopSink discards every series. It is the default when no visualization
// collaborator is configured.
type NopSink struct{}

// Render implements ChartSink.
func (NopSink) Render(Series, string, string, string, string) error {
	return nil
}
