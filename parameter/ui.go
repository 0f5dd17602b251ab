package parameter

// Terminal layout
const (
	// TopMargin reserves a line for the score row
	TopMargin = 1

	// BottomMargin reserves a line for the status bar
	BottomMargin = 1

	// Glyphs
	PaddleGlyph     = '█'
	BallGlyph       = '●'
	CenterLineGlyph = '┊'

	AudioStr = "♫ "
)
