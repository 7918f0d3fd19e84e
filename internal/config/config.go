// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 1200
	ScreenHeight  = 900
	ToolbarHeight = 50
	StatusHeight  = 30

	MaxDeltaTime = 0.06

	MinTouchDist    = 10.0 // px, how close a touch must be to a point to grab it
	LongTouchDelay  = 0.7  // seconds
	DoubleTapDelay  = 0.3  // seconds
	DoubleTapDist   = 6.0  // px
	DuplicateOffset = 15.0 // px, offset applied to duplicated shapes

	DefaultLineWidth = 1.0
	DefaultPointSize = 3.0
	MinShapeRadius   = 2.0

	DefaultCircleRadius   = 10.0
	DefaultEllipseRadiusX = 10.0
	DefaultEllipseRadiusY = 15.0

	ArrowMoveStep = 1.0 // px per arrow key press

	ToolbarButtonWidth   = 100
	ToolbarButtonHeight  = 34
	ToolbarButtonSpacing = 12
	ToolbarMarginX       = 10
	ToolbarMarginY       = 8

	FontSize      = 14
	TitleFontSize = 24
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	ToolbarColor    = color.RGBA{34, 36, 48, 255}
	StatusColor     = color.RGBA{28, 30, 40, 255}

	LineColor           = color.RGBA{0, 255, 0, 255}
	LockedLineColor     = color.RGBA{102, 143, 92, 255}
	SelectionPointColor = color.RGBA{255, 128, 79, 255}

	ButtonColor       = color.RGBA{58, 62, 80, 255}
	ButtonActiveColor = color.RGBA{96, 110, 160, 255}
	ButtonBorderColor = color.RGBA{110, 114, 134, 255}
	ButtonTextColor   = color.RGBA{230, 230, 235, 255}

	StatusTextColor = color.RGBA{170, 175, 190, 255}
)
