package todo

import (
	"errors"

	"github.com/Makepad-fr/tada/internal/model"
)

var (
	ErrEmptyTitle     = errors.New("todo title can not be empty")
	ErrDuplicateTitle = errors.New("this todo already exists")
	ErrNotFound       = errors.New("todo not found")
	ErrEditInProgress = errors.New("an edit is in progress")
	ErrNotEditing     = errors.New("todo is not being edited")
	ErrInvalidFilter  = model.ErrInvalidFilter
)
