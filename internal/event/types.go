// internal/event/types.go
package event

const (
	ShapeAdded      EventType = "ShapeAdded"      // a shape was added to the canvas
	ShapeRemoved    EventType = "ShapeRemoved"    // a shape was removed from the canvas
	ShapeSelected   EventType = "ShapeSelected"   // a shape entered the selection
	ShapeDeselected EventType = "ShapeDeselected" // a shape left the selection
	DrawModeChanged EventType = "DrawModeChanged" // the canvas draw mode changed
	CanvasCleared   EventType = "CanvasCleared"   // all shapes were removed
	DocumentSaved   EventType = "DocumentSaved"
	DocumentLoaded  EventType = "DocumentLoaded"
)
