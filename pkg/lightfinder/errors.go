package lightfinder

import (
	"errors"
	"fmt"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoHeader indicates the sheet holds no header row.
var ErrNoHeader = errors.New("no header row")

// ErrUnknownFormat indicates an unsupported export format.
var ErrUnknownFormat = errors.New("unknown export format")

// ErrInvalidCriteria is returned by Search for out-of-range criteria.
var ErrInvalidCriteria = models.ErrInvalidCriteria

// LoadError represents an error while loading one part of a catalog.
type LoadError struct {
	SheetName string
	Component string // "open", "range", "cells", "images"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName, component string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
