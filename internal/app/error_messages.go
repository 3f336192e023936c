// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the AVA client.
//
// All Msg* constants are printed by the session loop to the output or error
// stream. Keeping them in one place keeps the wording consistent between
// actions and lets tests match on exact text.
package app

const (
	// MsgChoicePrompt asks for the next menu command.
	MsgChoicePrompt = "\nPlease enter a choice: "

	// MsgNoChoiceSelected is printed when the input matches no command.
	MsgNoChoiceSelected = "No choice selected"

	// MsgHelp is printed for the help command.
	MsgHelp = "Help is on the way"

	// MsgExiting is printed once, right before the session ends.
	MsgExiting = "Exiting system..."

	// MsgQuestionPrompt asks for the next chat question.
	MsgQuestionPrompt = "\nAsk AVA a question (type 'quit' to quit): "

	// MsgQuitWord leaves the chat when typed in any letter case.
	MsgQuitWord = "quit"

	// MsgLoadDocumentHint follows a rejected chat question.
	MsgLoadDocumentHint = "Did you load a document?"

	// MsgNoFileSelected is printed when the file dialog is dismissed.
	MsgNoFileSelected = "No file selected."
)

// Format strings for messages carrying a value.
const (
	// MsgFileLoadedFmt takes the original and the canonical document name.
	MsgFileLoadedFmt = "File '%s' loaded successfully as '%s'!"

	// MsgConfigErrorFmt takes a configuration error naming the missing
	// variable.
	MsgConfigErrorFmt = "Error: %v."

	// MsgCopyErrorFmt takes the copy failure.
	MsgCopyErrorFmt = "Error copying file: %v"

	// MsgDialogErrorFmt takes the file dialog failure.
	MsgDialogErrorFmt = "Error opening file dialog: %v"

	// MsgRequestErrorFmt takes a transport failure.
	MsgRequestErrorFmt = "Error sending API request: %v"

	// MsgRejectedFmt takes the status line of a non-2xx response.
	MsgRejectedFmt = "Failed to notify API. Status: %s"
)
