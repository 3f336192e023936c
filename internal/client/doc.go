// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive session of the AVA client.
//
// The session reads menu commands line by line, dispatches them to the chat
// and load-file actions and turns every action-level error into a printed
// diagnostic. Only a failing input or output stream ends the session with an
// error.
package client
