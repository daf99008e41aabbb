package core

// Color is the role of a canvas cell. The platform layer maps roles to
// terminal styles, so drawing code never deals with escape sequences.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlock         // filled board cell
	ColorEmpty         // empty board cell
	ColorBorder        // frame around the board
	ColorText          // overlay and status text
	ColorAccent        // highlighted text (active control)
	ColorMuted         // secondary text (hints)
	ColorError         // failure messages
)
