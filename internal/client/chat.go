package client

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/ava-cli/internal/app"
	"github.com/MKhiriev/ava-cli/internal/service"
)

// chat runs the question loop until the user types quit. Only a stream
// failure or a done context is returned; backend failures are printed and
// the loop goes on.
func (a *App) chat(ctx context.Context) error {
	chatService := a.services.ChatService

	for {
		if err := a.prompt(app.MsgQuestionPrompt); err != nil {
			return err
		}

		line, err := a.readLine()
		if err != nil {
			return err
		}
		if err = ctx.Err(); err != nil {
			return err
		}

		question := strings.TrimSpace(line)
		if strings.EqualFold(question, app.MsgQuitWord) {
			return nil
		}

		if err = chatService.Ready(); err != nil {
			a.logger.Warn().Err(err).Msg("chat unavailable")
			return a.reportError(err)
		}

		answer, askErr := chatService.Ask(ctx, question)
		if askErr != nil {
			a.logger.Error().Err(askErr).Msg("question failed")
			if err = a.reportError(askErr); err != nil {
				return err
			}
			if errors.Is(askErr, service.ErrBackendRejected) {
				if err = a.println(app.MsgLoadDocumentHint); err != nil {
					return err
				}
			}
			continue
		}

		a.logger.Debug().Str("request_id", answer.RequestID).Msg("answer received")
		if err = a.println(answer.Body); err != nil {
			return err
		}
	}
}
