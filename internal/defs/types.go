// internal/defs/types.go
package defs

// StyleDefinition configures the look of shapes created in one draw mode.
// Colors are RGBA channel values.
type StyleDefinition struct {
	Mode           string   `json:"mode"`
	LineColor      [4]uint8 `json:"line_color"`
	LockedColor    [4]uint8 `json:"locked_color"`
	SelectionColor [4]uint8 `json:"selection_color"`
	LineWidth      float32  `json:"line_width"`
	PointSize      float32  `json:"point_size"`
}
