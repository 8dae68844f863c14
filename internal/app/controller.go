// Package app turns user intents into todo store operations and pushes the
// results to a renderer and a notifier.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Makepad-fr/tada/internal/export"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/notify"
	"github.com/Makepad-fr/tada/internal/todo"
)

// ErrReported wraps errors that were already shown through the Notifier.
var ErrReported = errors.New("reported")

// Renderer redraws the full list. An empty slice is the empty state.
type Renderer interface {
	Render(items []model.Item, filter model.Filter)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(items []model.Item, filter model.Filter)

func (f RendererFunc) Render(items []model.Item, filter model.Filter) { f(items, filter) }

type Options struct {
	// ExportDir receives exported files. Empty means the working directory.
	ExportDir string
}

// Controller is the only caller of the todo store's mutating methods.
type Controller struct {
	store    *todo.Store
	renderer Renderer
	notifier notify.Notifier
	opts     Options
	log      zerolog.Logger
}

func New(store *todo.Store, r Renderer, n notify.Notifier, opts Options, log zerolog.Logger) *Controller {
	return &Controller{
		store:    store,
		renderer: r,
		notifier: n,
		opts:     opts,
		log:      log.With().Str("component", "controller").Logger(),
	}
}

// Store exposes the underlying store for read-only queries.
func (c *Controller) Store() *todo.Store { return c.store }

// Start loads the persisted list and renders it.
func (c *Controller) Start(ctx context.Context) {
	c.store.Load(ctx)
	c.render()
}

// OnAddOrUpdateRequested creates an item, or renames the item being edited.
func (c *Controller) OnAddOrUpdateRequested(ctx context.Context, title string) (model.Item, error) {
	it, err := c.store.Submit(ctx, title)
	if err != nil {
		return model.Item{}, c.fail(err)
	}
	c.render()
	return it, nil
}

func (c *Controller) OnToggleRequested(ctx context.Context, id string) (model.Item, error) {
	it, err := c.store.ToggleCompletion(ctx, id)
	if err != nil {
		return model.Item{}, c.fail(err)
	}
	c.render()
	return it, nil
}

// OnEditRequested starts editing id and returns the title to pre-fill.
func (c *Controller) OnEditRequested(ctx context.Context, id string) (string, error) {
	title, err := c.store.BeginEdit(ctx, id)
	if err != nil {
		return "", c.fail(err)
	}
	return title, nil
}

func (c *Controller) OnCancelEdit() {
	c.store.CancelEdit()
}

func (c *Controller) OnDeleteRequested(ctx context.Context, id string) error {
	if err := c.store.Remove(ctx, id); err != nil {
		return c.fail(err)
	}
	c.render()
	return nil
}

func (c *Controller) OnFilterChanged(ctx context.Context, f model.Filter) error {
	if _, err := c.store.ApplyFilter(ctx, f); err != nil {
		return c.fail(err)
	}
	c.render()
	return nil
}

// OnExportRequested writes the current working list in format f and returns
// the file path.
func (c *Controller) OnExportRequested(ctx context.Context, f export.Format) (string, error) {
	e, err := export.For(f)
	if err != nil {
		return "", c.fail(err)
	}

	items := c.store.Items()
	p, err := export.WriteFile(c.opts.ExportDir, e, items)
	if err != nil {
		return "", c.fail(err)
	}

	c.log.Info().Str("format", string(f)).Str("path", p).Int("rows", len(items)).Msg("exported")
	c.notifier.Notify(notify.Info("exported " + p))
	return p, nil
}

func (c *Controller) render() {
	c.renderer.Render(c.store.Items(), c.store.Filter())
}

// fail shows err to the user and marks it as reported. Validation and lookup
// failures get fixed messages; anything else is logged.
func (c *Controller) fail(err error) error {
	switch {
	case errors.Is(err, todo.ErrEmptyTitle), errors.Is(err, todo.ErrDuplicateTitle):
		c.notifier.Notify(notify.Error(err.Error()))
	case errors.Is(err, todo.ErrNotFound):
		c.notifier.Notify(notify.Warning(todo.ErrNotFound.Error()))
	case errors.Is(err, todo.ErrEditInProgress), errors.Is(err, todo.ErrNotEditing),
		errors.Is(err, todo.ErrInvalidFilter), errors.Is(err, export.ErrUnknownFormat):
		c.notifier.Notify(notify.Warning(err.Error()))
	default:
		c.log.Error().Err(err).Msg("operation failed")
		c.notifier.Notify(notify.Error(err.Error()))
	}
	return fmt.Errorf("%w: %w", ErrReported, err)
}
