package symbol

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// PathStyle is the rendering style attached to segments, chevrons and polygons.
type PathStyle struct {
	Stroke      bool    `mapstructure:"stroke" json:"stroke"`
	Color       string  `mapstructure:"color" json:"color"`
	Weight      float64 `mapstructure:"weight" json:"weight"`
	Opacity     float64 `mapstructure:"opacity" json:"opacity"`
	Fill        bool    `mapstructure:"fill" json:"fill"`
	FillColor   string  `mapstructure:"fillColor" json:"fillColor,omitempty"`
	FillOpacity float64 `mapstructure:"fillOpacity" json:"fillOpacity"`
	Interactive bool    `mapstructure:"interactive" json:"interactive"`
}

// DefaultPathStyle is the base style every path-producing factory starts from.
func DefaultPathStyle() PathStyle {
	return PathStyle{
		Stroke:      true,
		Color:       "#3388ff",
		Weight:      3,
		Opacity:     1,
		FillOpacity: 0.2,
		Interactive: true,
	}
}

// MarkerStyle is the rendering style attached to point markers.
type MarkerStyle struct {
	Draggable    bool    `mapstructure:"draggable" json:"draggable"`
	Interactive  bool    `mapstructure:"interactive" json:"interactive"`
	Title        string  `mapstructure:"title" json:"title,omitempty"`
	Opacity      float64 `mapstructure:"opacity" json:"opacity"`
	ZIndexOffset int     `mapstructure:"zIndexOffset" json:"zIndexOffset"`
}

// DashOptions configures a Dash factory.
type DashOptions struct {
	// PixelSize is the dash length in pixels. Values <= 1 draw a dot.
	PixelSize float64   `mapstructure:"pixelSize"`
	PathStyle PathStyle `mapstructure:"pathStyle"`
}

// DefaultDashOptions returns pixelSize 10 with a weight 3 stroke.
func DefaultDashOptions() DashOptions {
	style := DefaultPathStyle()
	style.Weight = 3
	return DashOptions{PixelSize: 10, PathStyle: style}
}

// ArrowHeadOptions configures an ArrowHead factory.
type ArrowHeadOptions struct {
	// AsPolygon draws a closed wedge instead of an open chevron.
	AsPolygon bool    `mapstructure:"asPolygon"`
	PixelSize float64 `mapstructure:"pixelSize"`
	// HeadAngle is the angle in degrees between the heading and each wing.
	HeadAngle float64   `mapstructure:"headAngle"`
	PathStyle PathStyle `mapstructure:"pathStyle"`
}

// DefaultArrowHeadOptions returns a 10px, 30 degree chevron drawn with an
// unfilled, non-interactive weight 2 stroke.
func DefaultArrowHeadOptions() ArrowHeadOptions {
	style := DefaultPathStyle()
	style.Fill = false
	style.Weight = 2
	style.Interactive = false
	return ArrowHeadOptions{PixelSize: 10, HeadAngle: 30, PathStyle: style}
}

// MarkerOptions configures a Marker factory.
type MarkerOptions struct {
	MarkerStyle MarkerStyle `mapstructure:"markerStyle"`
}

// DefaultMarkerOptions returns a fixed, non-interactive, opaque marker.
func DefaultMarkerOptions() MarkerOptions {
	return MarkerOptions{
		MarkerStyle: MarkerStyle{
			Draggable:   false,
			Interactive: false,
			Opacity:     1,
		},
	}
}

// NumberOptions configures a Number factory. The marker options are shared
// with Marker and decoded from the same keys.
type NumberOptions struct {
	MarkerOptions `mapstructure:",squash"`
	// ClassName is attached to the text icon.
	ClassName string `mapstructure:"className"`
}

// DefaultNumberOptions returns the marker defaults plus the number icon class.
func DefaultNumberOptions() NumberOptions {
	return NumberOptions{
		MarkerOptions: DefaultMarkerOptions(),
		ClassName:     "polysymbol-number",
	}
}

// DecodeDashOptions merges raw over DefaultDashOptions.
func DecodeDashOptions(raw map[string]any) (DashOptions, error) {
	opts := DefaultDashOptions()
	err := mergeOptions(&opts, raw)
	return opts, err
}

// DecodeArrowHeadOptions merges raw over DefaultArrowHeadOptions.
func DecodeArrowHeadOptions(raw map[string]any) (ArrowHeadOptions, error) {
	opts := DefaultArrowHeadOptions()
	err := mergeOptions(&opts, raw)
	return opts, err
}

// DecodeMarkerOptions merges raw over DefaultMarkerOptions.
func DecodeMarkerOptions(raw map[string]any) (MarkerOptions, error) {
	opts := DefaultMarkerOptions()
	err := mergeOptions(&opts, raw)
	return opts, err
}

// DecodeNumberOptions merges raw over DefaultNumberOptions.
func DecodeNumberOptions(raw map[string]any) (NumberOptions, error) {
	opts := DefaultNumberOptions()
	err := mergeOptions(&opts, raw)
	return opts, err
}

// mergeOptions decodes raw into the options struct dst points at. Present
// keys replace the current value and absent keys keep it; nested style
// groups merge field by field. Unknown keys are ignored.
func mergeOptions(dst any, raw map[string]any) error {
	if len(raw) == 0 {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("error creating options decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("error decoding symbol options: %w", err)
	}
	return nil
}
