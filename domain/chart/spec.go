// Package chart models the specification object handed to the chart layer.
// The server never renders anything; it emits one Spec per chart and the
// client-side plotting library turns it into a pie, scatter, or bar figure.
package chart

// Kind identifies the figure type a Spec describes.
type Kind string

const (
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
	KindBar     Kind = "bar"
)

// Fixed outcome colors for the per-site success/failure pie.
const (
	ColorSuccess = "green"
	ColorFailure = "red"
)

// Encoding names the fields the chart layer binds to visual channels.
// ColorMap, when present, pins categories to fixed colors.
type Encoding struct {
	LabelField string            `json:"label_field,omitempty"`
	ValueField string            `json:"value_field,omitempty"`
	XField     string            `json:"x_field,omitempty"`
	YField     string            `json:"y_field,omitempty"`
	ColorField string            `json:"color_field,omitempty"`
	ColorMap   map[string]string `json:"color_map,omitempty"`
}

// Slice is one pie segment.
type Slice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Point is one scatter mark. Category feeds the color channel.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Category string  `json:"category"`
}

// Bar is one bar of a categorical bar chart.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Spec is a complete, self-describing chart specification. Exactly one of
// Slices, Points, or Bars is populated, matching Kind. Specs are ephemeral:
// derived per request and discarded once serialized.
type Spec struct {
	Kind     Kind     `json:"kind"`
	Title    string   `json:"title"`
	Encoding Encoding `json:"encoding"`
	Slices   []Slice  `json:"slices,omitempty"`
	Points   []Point  `json:"points,omitempty"`
	Bars     []Bar    `json:"bars,omitempty"`
}
