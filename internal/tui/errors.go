// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrPickerStartDir is returned when the dialog's start directory does
	// not exist or is not a directory.
	ErrPickerStartDir = errors.New("invalid file dialog start directory")
	// ErrDialogFailed is returned when the dialog program could not run.
	ErrDialogFailed = errors.New("file dialog failed")
)
