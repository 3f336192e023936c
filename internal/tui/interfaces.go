// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui contains the terminal UI pieces of the AVA client: the
// document selection dialog and the rendering of the menu.
package tui

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/file_picker_mock.go -package=mock

// FilePicker lets the user choose a document.
type FilePicker interface {
	// PickFile shows the dialog and blocks until the user selects a file or
	// dismisses the dialog. ok is false when the dialog was dismissed.
	PickFile(ctx context.Context) (path string, ok bool, err error)
}
