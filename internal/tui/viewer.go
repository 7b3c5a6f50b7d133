package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/san-kum/mandelview/internal/control"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/render"
	"github.com/san-kum/mandelview/internal/session"
	"github.com/san-kum/mandelview/internal/viewport"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const upperHalf = "▀"

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Viewer is a bubbletea model that renders one frame per tick. Terminals
// only report key presses and auto-repeats, so a pan or zoom key counts as
// held for the frame after each event.
type Viewer struct {
	sess     *session.Session
	keys     map[string]control.Action
	interval time.Duration

	pending control.Input
	frame   *render.FrameBuffer
	view    viewport.State
	err     error

	width, height int
}

// NewViewer renders at fps frames per second; fps <= 0 uses 30.
func NewViewer(sess *session.Session, bindings map[control.Action]string, fps int) *Viewer {
	if fps <= 0 {
		fps = 30
	}
	return &Viewer{
		sess:     sess,
		keys:     KeyMap(bindings),
		interval: time.Second / time.Duration(fps),
		view:     sess.Controller().View(),
		width:    80,
		height:   24,
	}
}

func (v *Viewer) Init() tea.Cmd { return tick(v.interval) }

// Err is the render error that stopped the viewer, if any.
func (v *Viewer) Err() error { return v.err }

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		return v, nil
	case tickMsg:
		buf, view, err := v.sess.Frame(v.pending)
		v.pending = control.Input{}
		if err != nil {
			v.err = err
			return v, tea.Quit
		}
		v.frame, v.view = buf, view
		return v, tick(v.interval)
	}
	return v, nil
}

func (v *Viewer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if action, ok := v.keys[key]; ok {
		v.queue(action)
		return v, nil
	}

	switch key {
	case "q", "esc", "ctrl+c":
		return v, tea.Quit
	case "r":
		v.sess.Controller().Reset()
		v.view = v.sess.Controller().View()
	}
	return v, nil
}

func (v *Viewer) queue(a control.Action) {
	if a.IsToggle() {
		v.pending.Pressed = append(v.pending.Pressed, a)
		return
	}
	for _, h := range v.pending.Held {
		if h == a {
			return
		}
	}
	v.pending.Held = append(v.pending.Held, a)
}

func (v *Viewer) View() string {
	var b strings.Builder
	if v.frame != nil {
		writeHalfBlocks(&b, v.frame)
	}
	b.WriteString(v.statusLine())
	return b.String()
}

func (v *Viewer) statusLine() string {
	stats := v.sess.Stats()
	return fmt.Sprintf("%s %s  %s %s  %s %s  %s\n",
		dim.Render("zoom"), cyan.Render(fmt.Sprintf("%.3g", v.view.Zoom)),
		dim.Render("center"), cyan.Render(fmt.Sprintf("(%.5f, %.5f)", v.view.XOffset, v.view.YOffset)),
		dim.Render("mode"), magenta.Render(v.view.Mode.String()),
		yellow.Render(fmt.Sprintf("%.0f fps", stats.FPS())),
	) + dim.Render("wasd/arrows pan  space/+ zoom in  - zoom out  enter gray  backspace hue  r reset  q quit")
}

// writeHalfBlocks draws two pixel rows per terminal line using truecolor
// foreground for the upper pixel and background for the lower one.
func writeHalfBlocks(b *strings.Builder, buf *render.FrameBuffer) {
	for row := 0; row < buf.Height; row += 2 {
		for col := 0; col < buf.Width; col++ {
			tr, tg, tb := palette.Unpack(buf.At(col, row))
			var br, bg, bb uint8
			if row+1 < buf.Height {
				br, bg, bb = palette.Unpack(buf.At(col, row+1))
			}
			fmt.Fprintf(b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s", tr, tg, tb, br, bg, bb, upperHalf)
		}
		b.WriteString("\x1b[0m\n")
	}
}

// Run shows sess in the terminal until the user quits or ctx is done.
func Run(ctx context.Context, sess *session.Session, bindings map[control.Action]string, fps int) error {
	v := NewViewer(sess, bindings, fps)
	p := tea.NewProgram(v, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "terminal viewer")
	}
	return v.Err()
}
