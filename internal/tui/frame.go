package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = time.Second / 30

// frameMsg is one animation tick. It carries the clock generation that
// scheduled it so ticks from a stopped run are recognized and dropped.
type frameMsg struct {
	gen int
	at  time.Time
}

// frameClock schedules animation frames for the active demo. Stopping
// bumps the generation, which orphans any tick already in flight; a
// demo switch or unmount therefore cannot leak a recurring callback
// into the next demo's run.
type frameClock struct {
	gen     int
	running bool
}

func (c *frameClock) start() tea.Cmd {
	if c.running {
		return nil
	}
	c.running = true
	return c.tick()
}

func (c *frameClock) stop() {
	c.gen++
	c.running = false
}

// current reports whether the tick belongs to the running clock.
func (c *frameClock) current(msg frameMsg) bool {
	return c.running && msg.gen == c.gen
}

func (c *frameClock) tick() tea.Cmd {
	g := c.gen
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{gen: g, at: t}
	})
}
