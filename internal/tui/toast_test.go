package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Makepad-fr/tada/internal/notify"
	"github.com/Makepad-fr/tada/internal/ui"
)

func TestToastController_Push(t *testing.T) {
	c := NewToastController(newStyles(ui.Current()))

	c.Push(notify.Info("hello"))

	assert.True(t, c.HasToasts())
	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "hello", c.Toasts()[0].notification.Message)
	assert.Equal(t, defaultToastTTL, c.Toasts()[0].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController(newStyles(ui.Current()))

	for i := range defaultMaxToasts + 2 {
		c.Push(notify.Info(time.Duration(i).String()))
	}

	assert.Len(t, c.Toasts(), defaultMaxToasts)
	assert.Equal(t, "2ns", c.Toasts()[0].notification.Message)
}

func TestToastController_Tick_removes_expired(t *testing.T) {
	c := NewToastController(newStyles(ui.Current()))
	c.Push(notify.Info("expires"))
	c.Push(notify.Info("survives"))

	c.toasts[0].remaining = 50 * time.Millisecond
	c.Tick(100 * time.Millisecond)

	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].notification.Message)
	assert.Equal(t, defaultToastTTL-100*time.Millisecond, c.Toasts()[0].remaining)
}

func TestToastController_Dismiss(t *testing.T) {
	c := NewToastController(newStyles(ui.Current()))
	c.Dismiss() // empty is a no-op

	c.Push(notify.Info("first"))
	c.Push(notify.Info("second"))
	c.Dismiss()

	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "first", c.Toasts()[0].notification.Message)
}

func TestToastController_SingleTickLoop(t *testing.T) {
	c := NewToastController(newStyles(ui.Current()))
	assert.Nil(t, c.ensureTick(), "no toasts, no tick")

	c.Push(notify.Warning("a"))
	assert.NotNil(t, c.ensureTick())
	assert.Nil(t, c.ensureTick(), "tick already in flight")

	c.toasts[0].remaining = toastTickInterval
	assert.Nil(t, c.onTick())
	assert.False(t, c.HasToasts())
	assert.False(t, c.ticking)
}

func TestToastController_View(t *testing.T) {
	c := NewToastController(newStyles(ui.Current()))
	assert.Empty(t, c.View())

	c.Push(notify.Error("disk full"))
	c.Push(notify.Info("exported todos.pdf"))

	v := c.View()
	assert.Contains(t, v, "✖ disk full")
	assert.Contains(t, v, "✔ exported todos.pdf")
}
