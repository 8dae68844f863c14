package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/notify"
)

const (
	defaultToastTTL   = 5 * time.Second
	defaultMaxToasts  = 5
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 50
)

type toast struct {
	notification notify.Notification
	remaining    time.Duration
}

// ToastController manages the lifecycle of active toast notifications.
// It handles push, eviction, TTL countdown, and dismissal.
type ToastController struct {
	toasts  []toast
	ticking bool
	st      styles
}

func NewToastController(st styles) *ToastController {
	return &ToastController{st: st}
}

// Push adds a notification to the toast stack. If the stack exceeds
// defaultMaxToasts, the oldest toast is evicted.
func (c *ToastController) Push(n notify.Notification) {
	c.toasts = append(c.toasts, toast{
		notification: n,
		remaining:    defaultToastTTL,
	})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Tick decrements the remaining TTL on all toasts by d and removes
// any that have expired.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

func (c *ToastController) HasToasts() bool { return len(c.toasts) > 0 }

func (c *ToastController) Toasts() []toast { return c.toasts }

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ensureTick starts the tick loop if toasts are waiting and no tick is in
// flight. Only one loop runs at a time.
func (c *ToastController) ensureTick() tea.Cmd {
	if !c.HasToasts() || c.ticking {
		return nil
	}
	c.ticking = true
	return scheduleToastTick()
}

// onTick advances the countdown and schedules the next tick while toasts remain.
func (c *ToastController) onTick() tea.Cmd {
	c.Tick(toastTickInterval)
	if c.HasToasts() {
		return scheduleToastTick()
	}
	c.ticking = false
	return nil
}

// View renders the toast stack, oldest at the top.
func (c *ToastController) View() string {
	if len(c.toasts) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(c.toasts))
	for _, t := range c.toasts {
		rendered = append(rendered, c.renderToast(t))
	}
	return strings.Join(rendered, "\n")
}

func (c *ToastController) renderToast(t toast) string {
	var icon string
	var style lipgloss.Style

	switch t.notification.Level {
	case notify.LevelError:
		icon = "✖"
		style = c.st.toastError
	case notify.LevelWarning:
		icon = "!"
		style = c.st.toastWarning
	default:
		icon = "✔"
		style = c.st.toastInfo
	}

	return style.Width(toastWidth).Render(icon + " " + t.notification.Message)
}
