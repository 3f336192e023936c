package client

import (
	"context"

	"github.com/MKhiriev/ava-cli/internal/app"
)

// loadFile lets the user pick a PDF, copies it into the documents directory
// and notifies the backend. Every failure ends the action with a message;
// only a failed write to the terminal is returned.
func (a *App) loadFile(ctx context.Context) error {
	documents := a.services.DocumentService

	if _, err := documents.TargetDir(); err != nil {
		a.logger.Warn().Err(err).Msg("document directory not configured")
		return a.reportError(err)
	}

	path, ok, err := a.picker.PickFile(ctx)
	if err != nil {
		a.logger.Error().Err(err).Msg("file dialog failed")
		return a.reportError(err)
	}
	if !ok {
		return a.println(app.MsgNoFileSelected)
	}

	doc, err := documents.Import(ctx, path)
	if err != nil {
		return a.reportError(err)
	}
	if err = a.printf(app.MsgFileLoadedFmt, doc.OriginalName, doc.Name); err != nil {
		return err
	}

	answer, err := documents.Notify(ctx, doc)
	if err != nil {
		a.logger.Error().Err(err).Str("document", doc.Path).Msg("load notification failed")
		return a.reportError(err)
	}

	a.logger.Info().Str("document", doc.Path).Str("request_id", answer.RequestID).Msg("document loaded")
	return a.println(answer.Body)
}
