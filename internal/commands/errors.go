package commands

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/model"
)

// ErrUsage marks errors caused by bad arguments.
var ErrUsage = errors.New("usage")

func usage(text string) error { return fmt.Errorf("%w: %s", ErrUsage, text) }

// ExitCode maps a command error to a process exit code: 0 ok, 1 error, 2 usage.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}

// Reported reports whether err was already shown to the user.
func Reported(err error) bool { return errors.Is(err, app.ErrReported) }

// resolveRef turns a ref into an item id. A ref is an id, or a 1-based
// position in the full list. Unknown refs pass through unchanged so the
// store reports them as not found.
func resolveRef(all []model.Item, ref string) string {
	if slices.ContainsFunc(all, func(it model.Item) bool { return it.ID == ref }) {
		return ref
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(all) {
		return all[n-1].ID
	}
	return ref
}
