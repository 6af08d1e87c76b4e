/*
Copyright © 2026 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"strings"

	braillefb "github.com/blacktop/go-braillefb"
	"github.com/blacktop/go-braillefb/internal/fractal"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// source produces frames for the viewer. Implementations are values so a
// frame can be rendered in the background while the model moves on.
type source interface {
	Title() string
	Render(cols, rows int) (string, error)
	// Handle applies a key press and reports whether the frame changed
	Handle(msg tea.KeyMsg, keys keyMap) (source, bool)
	// Enable turns on the key bindings the source understands
	Enable(keys keyMap) keyMap
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Brighter key.Binding
	Darker   key.Binding
	Invert   key.Binding
	Dither   key.Binding
	Edges    key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.ZoomIn, k.ZoomOut,
		k.Brighter, k.Darker, k.Invert, k.Dither, k.Edges, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func disabled(keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithDisabled())
}

func defaultKeyMap() keyMap {
	k := keyMap{
		Up:       disabled("up", "k"),
		Down:     disabled("down", "j"),
		Left:     disabled("left", "h"),
		Right:    disabled("right", "l"),
		ZoomIn:   disabled("+", "="),
		ZoomOut:  disabled("-", "_"),
		Brighter: disabled("]"),
		Darker:   disabled("["),
		Invert:   disabled("i"),
		Dither:   disabled("d"),
		Edges:    disabled("e"),
		Reset:    disabled("r"),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	k.Up.SetHelp("↑/k", "up")
	k.Down.SetHelp("↓/j", "down")
	k.Left.SetHelp("←/h", "left")
	k.Right.SetHelp("→/l", "right")
	k.ZoomIn.SetHelp("+", "zoom in")
	k.ZoomOut.SetHelp("-", "zoom out")
	k.Brighter.SetHelp("]", "threshold up")
	k.Darker.SetHelp("[", "threshold down")
	k.Invert.SetHelp("i", "invert")
	k.Dither.SetHelp("d", "dither")
	k.Edges.SetHelp("e", "edges")
	k.Reset.SetHelp("r", "reset")
	return k
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))
)

// chromeRows is the number of terminal rows used by the status and help lines
const chromeRows = 2

type frameMsg struct {
	frame string
	err   error
	gen   int
}

type model struct {
	src  source
	keys keyMap
	help help.Model

	cols int
	rows int

	frame string
	err   error
	gen   int // discards stale frames
}

func newModel(src source) model {
	return model{
		src:  src,
		keys: src.Enable(defaultKeyMap()),
		help: help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) render() tea.Cmd {
	if m.cols <= 0 || m.rows <= 0 {
		return nil
	}
	src, cols, rows, gen := m.src, m.cols, m.rows, m.gen
	return func() tea.Msg {
		frame, err := src.Render(cols, rows)
		return frameMsg{frame: frame, err: err, gen: gen}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = max(msg.Height-chromeRows, 1)
		m.help.Width = msg.Width
		m.gen++
		return m, m.render()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		src, changed := m.src.Handle(msg, m.keys)
		if !changed {
			return m, nil
		}
		m.src = src
		m.gen++
		return m, m.render()

	case frameMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.frame = strings.TrimSuffix(msg.frame, "\n")
		m.err = msg.err
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.frame)
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(titleStyle.Render(m.src.Title()))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// runViewer starts the interactive viewer for src
func runViewer(src source) error {
	_, err := tea.NewProgram(newModel(src), tea.WithAltScreen()).Run()
	return err
}

// imageSource renders an image file, re-fitting it on every resize
type imageSource struct {
	path string
	opts braillefb.Options
}

func (s imageSource) Title() string {
	return fmt.Sprintf("%s %s", s.path, statusStyle.Render(fmt.Sprintf(
		"threshold=%.2f invert=%t dither=%t edges=%t",
		s.opts.Threshold, s.opts.Invert, s.opts.Dither, s.opts.Edges)))
}

func (s imageSource) Render(cols, rows int) (string, error) {
	img, err := braillefb.Open(s.path)
	if err != nil {
		return "", err
	}
	return img.Options(s.opts).Size(cols, rows).Render()
}

func (s imageSource) Handle(msg tea.KeyMsg, keys keyMap) (source, bool) {
	switch {
	case key.Matches(msg, keys.Brighter):
		s.opts.Threshold = min(s.opts.Threshold+0.05, 1)
	case key.Matches(msg, keys.Darker):
		s.opts.Threshold = max(s.opts.Threshold-0.05, 0)
	case key.Matches(msg, keys.Invert):
		s.opts.Invert = !s.opts.Invert
	case key.Matches(msg, keys.Dither):
		s.opts.Dither = !s.opts.Dither
	case key.Matches(msg, keys.Edges):
		s.opts.Edges = !s.opts.Edges
	default:
		return s, false
	}
	return s, true
}

func (s imageSource) Enable(keys keyMap) keyMap {
	for _, b := range []*key.Binding{&keys.Brighter, &keys.Darker, &keys.Invert, &keys.Dither, &keys.Edges} {
		b.SetEnabled(true)
	}
	return keys
}

// mandelbrotSource renders the mandelbrot set with pan and zoom
type mandelbrotSource struct {
	params fractal.Params
	reset  fractal.Params
}

const (
	panStep  = 0.1
	zoomStep = 0.8
)

func (s mandelbrotSource) Title() string {
	p := s.params
	return fmt.Sprintf("mandelbrot %s", statusStyle.Render(fmt.Sprintf(
		"re=[%.4f, %.4f] im=[%.4f, %.4f] iterations=%d",
		p.MinRe, p.MaxRe, p.MinIm, p.MaxIm(), p.MaxIterations)))
}

func (s mandelbrotSource) Render(cols, rows int) (string, error) {
	p := s.params.Resize(cols*braillefb.CellWidth, rows*braillefb.CellHeight)
	var b strings.Builder
	if err := renderMandelbrot(context.Background(), &b, p); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s mandelbrotSource) Handle(msg tea.KeyMsg, keys keyMap) (source, bool) {
	switch {
	case key.Matches(msg, keys.Up):
		s.params = s.params.Pan(0, panStep)
	case key.Matches(msg, keys.Down):
		s.params = s.params.Pan(0, -panStep)
	case key.Matches(msg, keys.Left):
		s.params = s.params.Pan(-panStep, 0)
	case key.Matches(msg, keys.Right):
		s.params = s.params.Pan(panStep, 0)
	case key.Matches(msg, keys.ZoomIn):
		s.params = s.params.Zoom(zoomStep)
	case key.Matches(msg, keys.ZoomOut):
		s.params = s.params.Zoom(1 / zoomStep)
	case key.Matches(msg, keys.Reset):
		s.params = s.reset
	default:
		return s, false
	}
	return s, true
}

func (s mandelbrotSource) Enable(keys keyMap) keyMap {
	for _, b := range []*key.Binding{&keys.Up, &keys.Down, &keys.Left, &keys.Right, &keys.ZoomIn, &keys.ZoomOut, &keys.Reset} {
		b.SetEnabled(true)
	}
	return keys
}
