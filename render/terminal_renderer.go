// Package render draws game snapshots to a tcell screen.
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// Layout is the screen placement of the board for a given screen size
type Layout struct {
	OriginX, OriginY int // Top-left of the status bar
	BoardX, BoardY   int // Screen position of grid cell (0,0)
	FooterY          int
	Width, Height    int // Total columns and rows required
}

// ComputeLayout centers the board; ok is false when the screen is too small
func ComputeLayout(screenWidth, screenHeight, gridWidth, gridHeight int) (l Layout, ok bool) {
	l.Width = gridWidth*constants.CellColumns + 2*constants.BorderWidth
	l.Height = constants.StatusBarRows + gridHeight + 2*constants.BorderWidth + constants.FooterRows
	if screenWidth < l.Width || screenHeight < l.Height {
		return l, false
	}

	l.OriginX = (screenWidth - l.Width) / 2
	l.OriginY = (screenHeight - l.Height) / 2
	l.BoardX = l.OriginX + constants.BorderWidth
	l.BoardY = l.OriginY + constants.StatusBarRows + constants.BorderWidth
	l.FooterY = l.BoardY + gridHeight + constants.BorderWidth
	return l, true
}

// CellPosition returns the screen coordinates of a grid cell's first column
func (l Layout) CellPosition(x, y int) (int, int) {
	return l.BoardX + x*constants.CellColumns, l.BoardY + y
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	sw, sh := r.screen.Size()
	layout, ok := ComputeLayout(sw, sh, snap.GridWidth, snap.GridHeight)
	if !ok {
		msg := fmt.Sprintf(constants.TextTooSmall, layout.Width, layout.Height)
		r.drawText(max((sw-len(msg))/2, 0), sh/2, msg, defaultStyle)
		r.screen.Show()
		return
	}

	r.drawStatusBar(layout, snap, defaultStyle)
	r.drawBorder(layout, snap, defaultStyle)
	r.drawGrid(layout, snap, defaultStyle)
	r.drawFood(layout, snap, defaultStyle)
	r.drawSnake(layout, snap, defaultStyle)
	r.drawFooter(layout, defaultStyle)

	switch snap.State {
	case engine.StatePaused:
		r.drawPausedOverlay(layout, defaultStyle)
	case engine.StateOver:
		r.drawGameOverOverlay(layout, snap, defaultStyle)
	}

	r.screen.Show()
}

// drawStatusBar draws score, length, speed and play time above the board
func (r *TerminalRenderer) drawStatusBar(l Layout, snap engine.Snapshot, style tcell.Style) {
	left := fmt.Sprintf("Score: %d", snap.Score)
	r.drawText(l.OriginX, l.OriginY, left, style.Bold(true))

	right := fmt.Sprintf("Length: %d  Speed: %.1f  Time: %s", len(snap.Cells), snap.Speed, formatElapsed(snap.Elapsed))
	x := l.OriginX + l.Width - len(right)
	if x > l.OriginX+len(left)+1 {
		r.drawText(x, l.OriginY, right, style.Foreground(RgbHint))
	}
}

func (r *TerminalRenderer) drawBorder(l Layout, snap engine.Snapshot, style tcell.Style) {
	borderStyle := style.Foreground(RgbBorder)
	top := l.BoardY - 1
	bottom := l.BoardY + snap.GridHeight
	left := l.BoardX - 1
	right := l.BoardX + snap.GridWidth*constants.CellColumns

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, borderStyle)
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	r.screen.SetContent(left, top, '┌', nil, borderStyle)
	r.screen.SetContent(right, top, '┐', nil, borderStyle)
	r.screen.SetContent(left, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

// drawGrid draws the faint background grid
func (r *TerminalRenderer) drawGrid(l Layout, snap engine.Snapshot, style tcell.Style) {
	dotStyle := style.Foreground(RgbGridDot)
	for y := 0; y < snap.GridHeight; y++ {
		for x := 0; x < snap.GridWidth; x++ {
			sx, sy := l.CellPosition(x, y)
			r.screen.SetContent(sx, sy, GlyphGridDot, nil, dotStyle)
		}
	}
}

func (r *TerminalRenderer) drawFood(l Layout, snap engine.Snapshot, style tcell.Style) {
	r.fillCell(l, snap.Food.X, snap.Food.Y, style.Foreground(RgbFood))
}

// drawSnake draws the body tail-first so the head is always on top
// A head that left the grid on the final tick is not drawn over the border
func (r *TerminalRenderer) drawSnake(l Layout, snap engine.Snapshot, style tcell.Style) {
	bodyStyle := style.Foreground(RgbSnakeBody)
	for i := len(snap.Cells) - 1; i >= 0; i-- {
		c := snap.Cells[i]
		if !c.InBounds(snap.GridWidth, snap.GridHeight) {
			continue
		}
		cellStyle := bodyStyle
		if i == 0 {
			cellStyle = style.Foreground(RgbSnakeHead)
		}
		r.fillCell(l, c.X, c.Y, cellStyle)
	}
}

func (r *TerminalRenderer) drawFooter(l Layout, style tcell.Style) {
	r.drawText(l.OriginX, l.FooterY, constants.TextStatusControl, style.Foreground(RgbHint))
}

func (r *TerminalRenderer) drawPausedOverlay(l Layout, style tcell.Style) {
	cy := l.OriginY + l.Height/2
	r.drawCentered(l, cy, constants.TextPaused, style.Foreground(RgbPaused).Bold(true))
	r.drawCentered(l, cy+2, constants.TextPausedHint, style.Foreground(RgbText))
}

func (r *TerminalRenderer) drawGameOverOverlay(l Layout, snap engine.Snapshot, style tcell.Style) {
	cy := l.OriginY + l.Height/2
	title, color := constants.TextGameOver, RgbGameOver
	if snap.BoardFull {
		title, color = constants.TextBoardFull, RgbBoardFull
	}
	r.drawCentered(l, cy-2, title, style.Foreground(color).Bold(true))
	r.drawCentered(l, cy, fmt.Sprintf(constants.TextFinalScore, snap.Score), style.Foreground(RgbText))
	r.drawCentered(l, cy+2, constants.TextGameOverHint, style.Foreground(RgbText))
}

// fillCell paints every column of a grid cell with the segment glyph
func (r *TerminalRenderer) fillCell(l Layout, x, y int, style tcell.Style) {
	sx, sy := l.CellPosition(x, y)
	for i := 0; i < constants.CellColumns; i++ {
		r.screen.SetContent(sx+i, sy, GlyphSegment, nil, style)
	}
}

// drawCentered draws text centered on the board with a padded backdrop
func (r *TerminalRenderer) drawCentered(l Layout, y int, text string, style tcell.Style) {
	padded := " " + text + " "
	x := l.OriginX + (l.Width-len([]rune(padded)))/2
	r.drawText(x, y, padded, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// formatElapsed renders play time as mm:ss
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
