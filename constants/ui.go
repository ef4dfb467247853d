package constants

// Overlay text
const (
	TextPaused        = "PAUSED"
	TextPausedHint    = "Press SPACE to continue"
	TextGameOver      = "GAME OVER"
	TextBoardFull     = "BOARD FULL"
	TextFinalScore    = "Final Score: %d"
	TextGameOverHint  = "Press SPACE to restart or ESC to exit"
	TextTooSmall      = "Terminal too small: need %dx%d"
	TextStatusControl = "arrows/wasd/hjkl move  space pause  esc quit"
)

// Board layout
const (
	// CellColumns is the terminal columns per grid cell, compensating for tall glyphs
	CellColumns = 2

	// StatusBarRows is reserved above the board for score and speed
	StatusBarRows = 1

	// FooterRows is reserved below the board for the controls hint
	FooterRows = 1

	// BorderWidth is the frame drawn around the board
	BorderWidth = 1
)
