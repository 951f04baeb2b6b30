package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"swipedeck/internal/deck"
)

const (
	arrowWidth   = 3
	defaultWidth = 80
	// border (2) plus horizontal padding (4)
	cardChrome = 6
	// border (2) plus vertical padding (2)
	cardChromeV = 4
)

// Frame contains all the state needed for rendering
type Frame struct {
	Width         int
	Height        int
	DeckTitle     string
	Slides        int
	Index         int
	Slide         deck.Slide
	HasSlide      bool
	Offset        int // horizontal shift of the card content, in cells
	Status        string
	StatusIsError bool
	Prompt        string // rendered input line for jump mode
	Footer        string // rendered key help
}

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Hit identifies what a mouse position landed on
type Hit int

const (
	HitNone Hit = iota
	HitPrev
	HitNext
	HitDot
	HitCard
)

// Layout records where the interactive parts of the last frame were drawn
type Layout struct {
	Card Rect
	Prev Rect
	Next Rect
	Dots []Rect
}

// HitTest maps a cell to the control under it. For HitDot the slide index
// is returned as well.
func (l Layout) HitTest(x, y int) (Hit, int) {
	if l.Prev.Contains(x, y) {
		return HitPrev, -1
	}
	if l.Next.Contains(x, y) {
		return HitNext, -1
	}
	for i, d := range l.Dots {
		if d.Contains(x, y) {
			return HitDot, i
		}
	}
	if l.Card.Contains(x, y) {
		return HitCard, -1
	}
	return HitNone, -1
}

// Renderer handles all view rendering
type Renderer struct {
	styles  *Styles
	size    string
	card    string
	rounded bool
	md      *MarkdownRenderer
}

// NewRenderer creates a new renderer. size is "normal" or "compact", card
// is "box" or "holo".
func NewRenderer(size, card string, rounded bool, markdownStyle string) *Renderer {
	return &Renderer{
		styles:  NewStyles(),
		size:    size,
		card:    card,
		rounded: rounded,
		md:      NewMarkdownRenderer(markdownStyle),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view and the layout of its controls
func (r *Renderer) Render(f Frame) (string, Layout) {
	var layout Layout
	width := f.Width
	if width <= 0 {
		width = defaultWidth
	}

	var blocks []string
	row := 0
	add := func(block string) {
		blocks = append(blocks, block)
		row += lipgloss.Height(block)
	}

	title := f.DeckTitle
	if title == "" {
		title = "swipedeck"
	}
	header := r.styles.Title.Render(title)
	if f.Slides > 0 {
		header += "  " + r.styles.Counter.Render(fmt.Sprintf("%d/%d", f.Index+1, f.Slides))
	}
	add(header)
	add("")

	// rendered up front so the card can take the rows that remain
	var tail []string
	if f.Prompt != "" {
		tail = append(tail, f.Prompt)
	}
	if f.Status != "" {
		if f.StatusIsError {
			tail = append(tail, r.styles.StatusError.Render(f.Status))
		} else {
			tail = append(tail, r.styles.Status.Render(f.Status))
		}
	}
	if f.Footer != "" {
		tail = append(tail, f.Footer)
	}
	tailH := 0
	for _, b := range tail {
		tailH += lipgloss.Height(b)
	}

	if !f.HasSlide {
		add(r.styles.Empty.Render("No slides in this deck"))
	} else {
		paginated := f.Slides >= 2
		compact := r.size == "compact"
		sideArrows := paginated && !compact

		cardW := width
		if sideArrows {
			cardW = width - 2*arrowWidth
		}
		if cardW < cardChrome+10 {
			cardW = cardChrome + 10
		}

		maxH := 0
		if f.Height > 0 {
			maxH = f.Height - row - tailH
			if paginated {
				maxH--
			}
			maxH = max(maxH, cardChromeV+1)
		}

		card := r.renderCard(f.Slide, cardW, maxH, f.Offset)
		cardH := lipgloss.Height(card)
		cardTop := row

		if sideArrows {
			left := r.arrowColumn("‹", cardH)
			right := r.arrowColumn("›", cardH)
			add(lipgloss.JoinHorizontal(lipgloss.Top, left, card, right))
			layout.Prev = Rect{X: 0, Y: cardTop, W: arrowWidth, H: cardH}
			layout.Card = Rect{X: arrowWidth, Y: cardTop, W: cardW, H: cardH}
			layout.Next = Rect{X: arrowWidth + cardW, Y: cardTop, W: arrowWidth, H: cardH}
		} else {
			add(card)
			layout.Card = Rect{X: 0, Y: cardTop, W: cardW, H: cardH}
		}

		if paginated {
			nav := r.navbar(f.Index, f.Slides, width, compact, row, &layout)
			add(nav)
		}
	}

	for _, b := range tail {
		add(b)
	}

	return strings.Join(blocks, "\n"), layout
}

// renderCard draws the slide inside its border. A positive maxH caps the
// card's height; content that does not fit is cut off at the bottom.
func (r *Renderer) renderCard(s deck.Slide, cardW, maxH, offset int) string {
	inner := cardW - cardChrome

	var parts []string
	if s.Title != "" {
		parts = append(parts, r.styles.Heading.Render(s.Title))
	}
	if s.Header != "" {
		parts = append(parts, r.styles.Header.Width(inner).Render(s.Header))
	}
	for _, p := range s.Info {
		parts = append(parts, r.styles.Paragraph.Width(inner).Render(p))
	}
	if body := r.md.Render(s.Body, inner); body != "" {
		parts = append(parts, body)
	}

	content := strings.Join(parts, "\n")
	if maxH > 0 {
		content = clipLines(content, maxH-cardChromeV)
	}
	content = shiftLines(content, offset, inner)
	// lipgloss widths exclude the border
	return CardStyle(r.card, r.rounded, cardW-2).Render(content)
}

// clipLines keeps at most n lines of content
func clipLines(content string, n int) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= n {
		return content
	}
	return strings.Join(lines[:n], "\n")
}

// shiftLines moves every line right (positive) or left (negative) by
// offset cells, clipped to width
func shiftLines(content string, offset, width int) string {
	if offset == 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if offset > 0 {
			line = strings.Repeat(" ", offset) + line
			lines[i] = ansi.Truncate(line, width, "")
		} else {
			lines[i] = ansi.TruncateLeft(line, -offset, "")
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) arrowStyle() lipgloss.Style {
	if r.card == "holo" {
		return r.styles.ArrowHolo
	}
	return r.styles.Arrow
}

func (r *Renderer) arrowColumn(glyph string, height int) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", arrowWidth)
	}
	if height > 0 {
		lines[height/2] = " " + r.arrowStyle().Render(glyph) + " "
	}
	return strings.Join(lines, "\n")
}

// navbar renders the dot indicators, plus the arrows in compact mode, and
// records their positions on row
func (r *Renderer) navbar(index, total, width int, compact bool, row int, layout *Layout) string {
	dots := make([]string, total)
	for i := range dots {
		if i == index {
			dots[i] = r.styles.DotActive.Render("●")
		} else {
			dots[i] = r.styles.Dot.Render("○")
		}
	}
	dotsLine := strings.Join(dots, " ")
	dotsW := 2*total - 1

	barW := dotsW
	if compact {
		barW += 6 // "‹  " and "  ›"
	}
	left := (width - barW) / 2
	if left < 0 {
		left = 0
	}

	first := left
	if compact {
		layout.Prev = Rect{X: left, Y: row, W: 1, H: 1}
		first = left + 3
		layout.Next = Rect{X: first + dotsW + 2, Y: row, W: 1, H: 1}
	}
	layout.Dots = make([]Rect, total)
	for i := range layout.Dots {
		layout.Dots[i] = Rect{X: first + 2*i, Y: row, W: 1, H: 1}
	}

	line := dotsLine
	if compact {
		arrow := r.arrowStyle()
		line = arrow.Render("‹") + "  " + dotsLine + "  " + arrow.Render("›")
	}
	return strings.Repeat(" ", left) + line
}
