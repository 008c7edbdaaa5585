// Package ui holds layout constants and the size/focus state shared by panels.
package ui

// Layout constants shared by the panels.
const (
	// ScrollMargin is the number of rows kept visible around the cursor.
	ScrollMargin = 2

	// BorderSize is the space a rounded panel border takes on each axis.
	BorderSize = 2

	// HeaderHeight is the panel title line.
	HeaderHeight = 1

	// PanelOverhead is what a bordered panel with a title line takes vertically.
	PanelOverhead = BorderSize + HeaderHeight

	// MinArtWidth is the narrowest window that still shows album art.
	MinArtWidth = 60
)
