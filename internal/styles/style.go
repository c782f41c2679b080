// Package styles defines the typographic profile the renderer lays pages out
// with, including loading and validating user-supplied profile files.
package styles

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-press/internal/layout"
)

// Style holds the page geometry and font sizes for one rendering run. All
// dimensions are in points.
type Style struct {
	PageWidth    float64 `json:"page_width" validate:"gt=0"`
	PageHeight   float64 `json:"page_height" validate:"gt=0"`
	MarginLeft   float64 `json:"margin_left" validate:"gte=0"`
	MarginRight  float64 `json:"margin_right" validate:"gte=0"`
	MarginTop    float64 `json:"margin_top" validate:"gte=0"`
	MarginBottom float64 `json:"margin_bottom" validate:"gte=0"`

	NameSize    float64 `json:"name_size" validate:"gt=0"`
	HeadingSize float64 `json:"heading_size" validate:"gt=0"`
	BodySize    float64 `json:"body_size" validate:"gt=0"`
	MetaSize    float64 `json:"meta_size" validate:"gt=0"`
}

// Default returns the A4 profile matching the built-in renderer's original
// appearance.
func Default() Style {
	return Style{
		PageWidth:    595,
		PageHeight:   842,
		MarginLeft:   40,
		MarginRight:  40,
		MarginTop:    40,
		MarginBottom: 40,
		NameSize:     22,
		HeadingSize:  11.5,
		BodySize:     10,
		MetaSize:     10.2,
	}
}

// Validate checks field ranges and that the margins leave usable content area.
func (s Style) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}
	if s.PageWidth-s.MarginLeft-s.MarginRight <= 0 {
		return fmt.Errorf("invalid style: horizontal margins leave no content width")
	}
	if s.PageHeight-s.MarginTop-s.MarginBottom <= 0 {
		return fmt.Errorf("invalid style: vertical margins leave no content height")
	}
	return nil
}

// Geometry returns the page box the paginator works against.
func (s Style) Geometry() layout.Geometry {
	return layout.Geometry{
		PageWidth:    s.PageWidth,
		PageHeight:   s.PageHeight,
		MarginLeft:   s.MarginLeft,
		MarginRight:  s.MarginRight,
		MarginTop:    s.MarginTop,
		MarginBottom: s.MarginBottom,
	}
}

// Typography returns the font sizes the layout engine assigns per element.
func (s Style) Typography() layout.Typography {
	return layout.Typography{
		NameSize:    s.NameSize,
		HeadingSize: s.HeadingSize,
		BodySize:    s.BodySize,
		MetaSize:    s.MetaSize,
	}
}

// Load reads a style profile file. The JSON is schema-validated before
// decoding; fields absent from the file keep their defaults, and the combined
// result is range-validated.
func Load(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("failed to read style file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a style profile from JSON content on top of the defaults.
func Parse(data []byte) (Style, error) {
	if err := ValidateStyleJSON(string(data)); err != nil {
		return Style{}, err
	}
	style := Default()
	if err := json.Unmarshal(data, &style); err != nil {
		return Style{}, fmt.Errorf("failed to parse style JSON: %w", err)
	}
	if err := style.Validate(); err != nil {
		return Style{}, err
	}
	return style, nil
}
