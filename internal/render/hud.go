package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUD is everything shown below the map.
type HUD struct {
	Floor    int
	Status   string // multi-line player status
	Facing   int
	Items    []string
	Active   int
	Messages []string
	GameOver bool
	HelpLine string
}

const messageRows = HUDHeight - 4

// DrawHUD renders the status bar, inventory row and message log at the
// bottom of the screen, then shows the frame.
func (r *Renderer) DrawHUD(h HUD) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)

	status := strings.ReplaceAll(h.Status, "\n", "  ")
	line := fmt.Sprintf("Floor: %d  %s  Facing: %s", h.Floor, status, FacingArrow(h.Facing))
	r.drawText(0, hudY+1, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	col := 0
	for i, label := range h.Items {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if i == h.Active {
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		}
		col = r.drawText(col, hudY+2, fmt.Sprintf("%d:%s ", i+1, label), style)
	}

	start := max(len(h.Messages)-messageRows, 0)
	for i, m := range h.Messages[start:] {
		r.drawText(0, hudY+3+i, m, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	if h.GameOver {
		r.drawText(0, hudY+HUDHeight-1, "[Q] Quit", tcell.StyleDefault.Foreground(tcell.ColorRed))
	} else if h.HelpLine != "" {
		r.drawText(0, hudY+HUDHeight-1, h.HelpLine, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text starting at column x and returns the column after it.
// Wide runes such as kana advance two columns.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}
