package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"swipedeck/internal/carousel"
	"swipedeck/internal/config"
	"swipedeck/internal/deck"
	"swipedeck/internal/eventbus"
	"swipedeck/internal/gesture"
	"swipedeck/internal/ui/input"
	inputtypes "swipedeck/internal/ui/input/types"
	"swipedeck/internal/ui/transition"
	"swipedeck/internal/ui/views"
)

// readyMarker is printed once the first frame is drawn when running under the e2e suite
const readyMarker = "__READY__"

// Model is the Bubble Tea host for one carousel
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *zap.Logger

	deckPath string
	deck     *deck.Deck
	carousel *carousel.Controller[deck.Slide]

	tracker  *gesture.Tracker
	anim     *transition.Animator
	ticking  bool
	renderer *views.Renderer
	layout   views.Layout

	inputHandler *input.Handler
	help         help.Model
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	showFullHelp bool

	width     int
	height    int
	status    string
	statusErr bool
	e2e       bool

	now func() time.Time
}

// NewModel creates a new UI model for d, loaded from deckPath
func NewModel(cfg *config.Config, d *deck.Deck, deckPath string, bus eventbus.EventBus, logger *zap.Logger) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if d == nil {
		d = &deck.Deck{}
	}

	c, err := carousel.New(d.SlideSet(), carousel.WithSwipeThreshold(cfg.Carousel.SwipeThreshold))
	if err != nil {
		return nil, err
	}

	keys := inputtypes.DefaultKeyMap()
	m := &Model{
		bus:      bus,
		config:   cfg,
		logger:   logger,
		deckPath: deckPath,
		deck:     d,
		carousel: c,
		tracker: gesture.NewTracker(
			cfg.Carousel.CellWidthPx,
			time.Duration(cfg.Carousel.VelocityWindowMs)*time.Millisecond,
		),
		anim:         transition.New(cfg.UI.SpringStiffness, cfg.UI.SpringDamping, cfg.UI.Animate),
		renderer:     views.NewRenderer(cfg.UI.Size, cfg.UI.Card, cfg.UI.Rounded, cfg.UI.MarkdownStyle),
		inputHandler: input.New(keys),
		help:         help.New(),
		helpRenderer: NewHelpRenderer(keys),
		e2e:          os.Getenv("SWIPEDECK_E2E_TEST") == "1",
		now:          time.Now,
	}
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// Carousel exposes the controller, mainly for tests and status lines
func (m *Model) Carousel() *carousel.Controller[deck.Slide] {
	return m.carousel
}

// CurrentIndex implements input types.Context
func (m *Model) CurrentIndex() int { return m.carousel.Index() }

// TotalSlides implements input types.Context
func (m *Model) TotalSlides() int { return m.carousel.Len() }

// Paginated implements input types.Context
func (m *Model) Paginated() bool { return m.carousel.Paginated() }

// HelpVisible implements input types.Context
func (m *Model) HelpVisible() bool { return m.showFullHelp }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		return m, tea.Batch(cmd, m.executeActions(actions))

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case frameMsg:
		if m.anim.Step() {
			return m, frameTick()
		}
		m.ticking = false

	case DeckReloadedMsg:
		m.applyReload(msg)

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			m.setError(e.Message)
		}

	case helpPagerMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("help pager: %v", msg.err))
		}

	default:
		return m, m.inputHandler.Update(msg)
	}

	return m, nil
}

func (m *Model) executeActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		switch a := action.(type) {
		case inputtypes.PaginateAction:
			cmds = append(cmds, m.navigate(func() error { return m.carousel.Paginate(a.Step) }))

		case inputtypes.JumpAction:
			cmds = append(cmds, m.navigate(func() error { return m.carousel.JumpTo(a.Index) }))

		case inputtypes.JumpFirstAction:
			cmds = append(cmds, m.navigate(func() error { return m.carousel.JumpTo(0) }))

		case inputtypes.JumpLastAction:
			cmds = append(cmds, m.navigate(func() error { return m.carousel.JumpTo(m.carousel.Len() - 1) }))

		case inputtypes.SubmitTextAction:
			if a.Mode == inputtypes.ModeJump {
				cmds = append(cmds, m.submitJump(a.Text))
			}

		case inputtypes.CancelTextAction:
			m.clearStatus()

		case inputtypes.ReloadAction:
			cmds = append(cmds, m.reloadCmd())

		case inputtypes.ToggleHelpAction:
			m.showFullHelp = !m.showFullHelp
			m.help.ShowAll = m.showFullHelp

		case inputtypes.OpenHelpPagerAction:
			content := m.helpRenderer.RenderHelpContent()
			ops := m.helpOps
			cmds = append(cmds, func() tea.Msg {
				return helpPagerMsg{err: ops.ShowHelpInPager(content)}
			})

		case inputtypes.QuitAction:
			m.logger.Info("quitting", zap.Bool("force", a.Force))
			cmds = append(cmds, tea.Quit)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) submitJump(text string) tea.Cmd {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		m.setError(fmt.Sprintf("not a slide number: %q", text))
		return nil
	}
	// Slide numbers are 1-based on screen
	return m.navigate(func() error { return m.carousel.JumpTo(n - 1) })
}

// navigate runs one controller transition, then publishes and animates the result
func (m *Model) navigate(op func() error) tea.Cmd {
	from := m.carousel.Index()
	if err := op(); err != nil {
		m.logger.Warn("navigation rejected", zap.Error(err))
		m.setError(err.Error())
		return nil
	}
	m.clearStatus()
	return m.afterTransition(from)
}

func (m *Model) afterTransition(from int) tea.Cmd {
	state := m.carousel.State()
	if state.Index == from {
		return nil
	}

	m.logger.Debug("slide changed",
		zap.Int("from", from),
		zap.Int("to", state.Index),
		zap.Stringer("direction", state.LastDirection))
	m.publish(eventbus.SlideChangedEvent{From: from, To: state.Index, Direction: state.LastDirection})

	if m.anim.Start(state.LastDirection, float64(m.slideDistance())) {
		return m.startTicking()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		hit, idx := m.layout.HitTest(msg.X, msg.Y)
		switch hit {
		case views.HitPrev:
			return m.navigate(func() error { return m.carousel.Prev() })
		case views.HitNext:
			return m.navigate(func() error { return m.carousel.Next() })
		case views.HitDot:
			return m.navigate(func() error { return m.carousel.JumpTo(idx) })
		case views.HitCard:
			if m.carousel.Paginated() {
				m.anim.Stop()
				m.tracker.Press(float64(msg.X), m.now())
			}
		}

	case tea.MouseActionMotion:
		if m.tracker.Dragging() {
			m.tracker.Move(float64(msg.X), m.now())
			m.anim.Follow(m.tracker.Offset() / m.config.Carousel.CellWidthPx)
		}

	case tea.MouseActionRelease:
		sample, ok := m.tracker.Release(float64(msg.X), m.now())
		if !ok {
			return nil
		}
		return m.applyGesture(sample)
	}
	return nil
}

func (m *Model) applyGesture(sample gesture.Sample) tea.Cmd {
	from := m.carousel.Index()
	dir, err := m.carousel.ApplyGesture(sample.Offset, sample.Velocity)
	if err != nil {
		m.setError(err.Error())
		return nil
	}

	m.logger.Debug("gesture",
		zap.Float64("offset", sample.Offset),
		zap.Float64("velocity", sample.Velocity),
		zap.Float64("power", carousel.SwipePower(sample.Offset, sample.Velocity)),
		zap.Stringer("direction", dir))
	m.publish(eventbus.GestureRecognizedEvent{Offset: sample.Offset, Velocity: sample.Velocity, Direction: dir})

	if dir == carousel.DirectionNone {
		if m.anim.Release() {
			return m.startTicking()
		}
		return nil
	}
	m.clearStatus()
	return m.afterTransition(from)
}

func (m *Model) reloadCmd() tea.Cmd {
	if m.deckPath == "" {
		m.setError("no deck file to reload")
		return nil
	}
	m.publish(eventbus.ReloadRequestedEvent{Path: m.deckPath})
	path := m.deckPath
	return func() tea.Msg {
		d, err := deck.Load(path)
		return DeckReloadedMsg{Deck: d, Err: err}
	}
}

// applyReload swaps in a new deck and keeps the reader on the same slide
// number when it still exists
func (m *Model) applyReload(msg DeckReloadedMsg) {
	if msg.Err != nil {
		m.logger.Warn("deck reload failed", zap.Error(msg.Err))
		m.setError(fmt.Sprintf("reload failed: %v", msg.Err))
		return
	}

	c, err := carousel.New(msg.Deck.SlideSet(), carousel.WithSwipeThreshold(m.carousel.SwipeThreshold()))
	if err != nil {
		m.setError(err.Error())
		return
	}
	if n := c.Len(); n > 0 {
		target := m.carousel.Index()
		if target > n-1 {
			target = n - 1
		}
		if err := c.JumpTo(target); err != nil {
			m.setError(err.Error())
			return
		}
	}

	m.deck = msg.Deck
	m.carousel = c
	m.tracker.Cancel()
	m.anim.Stop()
	m.status = fmt.Sprintf("reloaded %d slides", c.Len())
	m.statusErr = false
	m.publish(eventbus.DeckReloadedEvent{Path: m.deckPath, Slides: c.Len()})
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/transition.FPS, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// slideDistance is how far an incoming slide travels, in cells
func (m *Model) slideDistance() int {
	if m.layout.Card.W > 0 {
		return m.layout.Card.W / 2
	}
	if m.width > 0 {
		return m.width / 2
	}
	return 20
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

// View renders the current slide
func (m *Model) View() string {
	slide, ok := m.carousel.Current()
	f := views.Frame{
		Width:         m.width,
		Height:        m.height,
		DeckTitle:     m.deck.Title,
		Slides:        m.carousel.Len(),
		Index:         m.carousel.Index(),
		Slide:         slide,
		HasSlide:      ok,
		Offset:        m.anim.Offset(),
		Status:        m.status,
		StatusIsError: m.statusErr,
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		f.Prompt = m.renderer.Styles().Prompt.Render(m.inputHandler.Prompt()) + ti.View()
	}
	if m.config.UI.ShowHelp || m.showFullHelp {
		f.Footer = m.help.View(m.inputHandler.Keys())
	}
	if m.e2e && f.Height > 0 {
		f.Height--
	}

	out, layout := m.renderer.Render(f)
	m.layout = layout
	if m.e2e {
		out += "\n" + readyMarker
	}
	return out
}
