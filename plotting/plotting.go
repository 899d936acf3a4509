// Package plotting renders scatter plots through a sidecar plotting service.
package plotting

// Point represents a single data point in a series.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series represents a single point series in a scatter plot.
type Series struct {
	Name       string  `json:"name"`
	Color      string  `json:"color,omitempty"`
	MarkerSize float64 `json:"marker_size,omitempty"`
	Opacity    float64 `json:"opacity,omitempty"`
	Points     []Point `json:"data"`
}

// RefLine represents a horizontal reference line.
type RefLine struct {
	Y     float64 `json:"y"`
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// ScatterPlot describes a titled scatter chart in the universal JSON format
// understood by the sidecar plotting service.
type ScatterPlot struct {
	ID       string    `json:"plot_id,omitempty"`
	Type     string    `json:"plot_type"`
	Title    string    `json:"title"`
	XLabel   string    `json:"x_axis_label"`
	YLabel   string    `json:"y_axis_label"`
	Series   []Series  `json:"series"`
	RefLines []RefLine `json:"ref_lines,omitempty"`
}

// Renderer renders a scatter plot. Render blocks until the plot has been
// rendered or rejected.
type Renderer interface {
	Render(plot *ScatterPlot) error
}
