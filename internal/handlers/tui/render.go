package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/blrd/internal/models"
)

const (
	// hiddenCell replaces an obscured character of the picture
	hiddenCell = '░'

	welcomeText = "Guess the blurred picture before the timer runs out."
	startText   = "Press Enter to start"
	noticeText  = "Incorrect guess. Try again!"
	quitText    = "Esc to quit"
)

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHidden  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleArt     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBox     = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleCursor  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleNotice  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleWin     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLose    = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleMuted   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// FormatClock renders seconds as MM:SS
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// cellRank places a picture cell in [0,1). Lower ranks stay hidden longer.
func cellRank(row, col int) float64 {
	h := xxhash.Sum64String(strconv.Itoa(row) + ":" + strconv.Itoa(col))
	return float64(h>>11) / float64(1<<53)
}

// Obscure hides every non-space cell whose rank is below ratio. A ratio of
// one hides the whole picture and zero shows it unchanged.
func Obscure(art []string, ratio float64) []string {
	ratio = math.Max(0, math.Min(1, ratio))
	out := make([]string, len(art))
	for row, line := range art {
		var sb strings.Builder
		col := 0
		for _, r := range line {
			if r != ' ' && cellRank(row, col) < ratio {
				sb.WriteRune(hiddenCell)
			} else {
				sb.WriteRune(r)
			}
			col++
		}
		out[row] = sb.String()
	}
	return out
}

// ShareLines formats the score card. gated marks a card shown because the
// day's round was already played.
func ShareLines(card *models.ScoreCard, gated bool) []string {
	var lines []string
	switch {
	case gated:
		lines = append(lines, "You already played today. Come back tomorrow!",
			fmt.Sprintf("Your score is %d seconds!", card.Score))
	case card.Solved:
		lines = append(lines, fmt.Sprintf("Your score is %d seconds!", card.Score))
	default:
		lines = append(lines, "Out of time!")
	}

	st := card.Stats
	if st.Count == 0 {
		lines = append(lines, "No scores recorded yet.")
	} else {
		lines = append(lines,
			fmt.Sprintf("Best: %ds  Worst: %ds  Average of last 5: %.1fs", st.Best, st.Worst, st.AvgLast5))
	}
	if card.Share != "" {
		lines = append(lines, "", card.Share)
	}
	return lines
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawCentered(s tcell.Screen, y int, style tcell.Style, text string) {
	w, _ := s.Size()
	x := (w - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	drawText(s, x, y, style, text)
}

// draw paints the whole frame for the round and what the view remembers
func draw(s tcell.Screen, puzzle *models.Puzzle, initialBlur float64, round *models.Round, v view) {
	s.Clear()

	y := 1
	drawCentered(s, y, styleTitle, "B L R D")
	y += 2

	if round.State == models.RoundStateNotStarted && !round.Gated {
		drawCentered(s, y, styleDefault, welcomeText)
		drawCentered(s, y+2, styleTitle, startText)
		drawCentered(s, y+4, styleMuted, quitText)
		s.Show()
		return
	}

	if puzzle.Title != "" {
		drawCentered(s, y, styleMuted, puzzle.Title)
	}
	y++
	drawCentered(s, y, styleDefault, "Time left: "+FormatClock(round.RemainingSeconds()))
	y += 2

	ratio := 0.0
	if initialBlur > 0 {
		ratio = round.BlurPx / initialBlur
	}
	width := 0
	for _, line := range puzzle.Art {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	w, _ := s.Size()
	artX := (w - width) / 2
	if artX < 0 {
		artX = 0
	}
	for _, line := range Obscure(puzzle.Art, ratio) {
		x := artX
		for _, r := range line {
			style := styleArt
			if r == hiddenCell {
				style = styleHidden
			}
			s.SetContent(x, y, r, nil, style)
			x++
		}
		y++
	}
	y++

	drawBoxes(s, y, round)
	y += 2

	if v.incorrect {
		drawCentered(s, y, styleNotice, noticeText)
	}
	if v.quip != "" {
		drawCentered(s, y+1, styleMuted, v.quip)
	}
	y += 3

	if v.card != nil {
		style := styleWin
		if !v.card.Solved || round.Gated {
			style = styleLose
		}
		for i, line := range ShareLines(v.card, round.Gated) {
			if i > 0 {
				style = styleDefault
			}
			drawCentered(s, y, style, line)
			y++
		}
		y++
	}

	drawCentered(s, y, styleMuted, quitText)
	s.Show()
}

// drawBoxes renders one [ ] per answer letter with the cursor box reversed
func drawBoxes(s tcell.Screen, y int, round *models.Round) {
	w, _ := s.Size()
	x := (w - 3*len(round.Slots)) / 2
	if x < 0 {
		x = 0
	}
	for i, slot := range round.Slots {
		ch := ' '
		if slot != "" {
			ch = []rune(slot)[0]
		}
		inner := styleBox
		if i == round.Cursor && !round.InputDisabled {
			inner = styleCursor
		}
		s.SetContent(x, y, '[', nil, styleBox)
		s.SetContent(x+1, y, ch, nil, inner)
		s.SetContent(x+2, y, ']', nil, styleBox)
		x += 3
	}
}
