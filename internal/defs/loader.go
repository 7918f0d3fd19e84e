// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/sirupsen/logrus"

	"go-painter/internal/shape"
)

// StyleLibrary holds the style for each draw mode, keyed by mode name.
// Modes without an entry use shape.DefaultStyle.
var StyleLibrary map[string]shape.Style

// LoadStyleDefinitions reads the style configuration file and populates the
// StyleLibrary.
func LoadStyleDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read style definitions file: %w", err)
	}

	var styleDefs []StyleDefinition
	if err := json.Unmarshal(file, &styleDefs); err != nil {
		return fmt.Errorf("failed to unmarshal style definitions: %w", err)
	}

	StyleLibrary = make(map[string]shape.Style)
	for _, def := range styleDefs {
		StyleLibrary[def.Mode] = toStyle(def)
	}

	logrus.Infof("Loaded %d style definitions", len(StyleLibrary))
	return nil
}

func toStyle(def StyleDefinition) shape.Style {
	st := shape.DefaultStyle()
	st.LineColor = rgba(def.LineColor)
	st.LockedColor = rgba(def.LockedColor)
	st.SelectionColor = rgba(def.SelectionColor)
	if def.LineWidth > 0 {
		st.LineWidth = def.LineWidth
	}
	if def.PointSize > 0 {
		st.PointSize = def.PointSize
	}
	return st
}

func rgba(c [4]uint8) color.RGBA {
	return color.RGBA{c[0], c[1], c[2], c[3]}
}
