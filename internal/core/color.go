package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI styles.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorText          // document text
	ColorDim           // separator, hints
	ColorHead          // snake head
	ColorBody          // snake body
	ColorFood          // food icon
	ColorComment       // recognized comment spans
	ColorAlert         // game over, warnings
	ColorAccent        // HUD highlights
)
