package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/ava-cli/internal/app"
	"github.com/MKhiriev/ava-cli/internal/logger"
	"github.com/MKhiriev/ava-cli/internal/service"
	"github.com/MKhiriev/ava-cli/internal/tui"
	"github.com/MKhiriev/ava-cli/internal/utils"
)

// App is the interactive session. Prompts, answers and notices go to out,
// diagnostics of failed actions go to errOut.
type App struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	services *service.ClientServices
	picker   tui.FilePicker

	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(in io.Reader, out, errOut io.Writer, services *service.ClientServices, picker tui.FilePicker, logger *logger.Logger) *App {
	return &App{
		in:       bufio.NewReader(in),
		out:      out,
		errOut:   errOut,
		services: services,
		picker:   picker,
		logger:   logger.WithComponent("session"),
	}
}

// Run shows the menu and dispatches commands until the user exits. It
// returns nil on exit, the context error once ctx is done, and an error
// wrapping [ErrInputFailed] or [ErrOutputFailed] when the terminal streams
// fail.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.showMenu(); err != nil {
		return err
	}

	for {
		if err := a.prompt(app.MsgChoicePrompt); err != nil {
			return err
		}

		line, err := a.readLine()
		if err != nil {
			return err
		}
		if err = ctx.Err(); err != nil {
			return err
		}

		cmd := ParseCommand(line)
		a.logger.Debug().Stringer("command", cmd).Msg("command received")

		switch cmd {
		case CommandChat:
			err = a.chat(utils.WithAction(ctx, cmd.String()))
		case CommandLoadFile:
			err = a.loadFile(utils.WithAction(ctx, cmd.String()))
		case CommandHelp:
			err = a.println(app.MsgHelp)
		case CommandOptions:
			err = a.showMenu()
		case CommandExit:
			return a.println(app.MsgExiting)
		default:
			err = a.println(app.MsgNoChoiceSelected)
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) showMenu() error {
	return a.prompt(tui.RenderMenu() + "\n")
}

func (a *App) prompt(msg string) error {
	return write(a.out, msg)
}

// readLine returns the next line without its terminator. A last line that
// is not newline-terminated is still returned; the read after it fails.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("%w: %w", ErrInputFailed, err)
	}
	return line, nil
}

func (a *App) println(msg string) error {
	return write(a.out, msg+"\n")
}

func (a *App) printf(format string, args ...any) error {
	return write(a.out, fmt.Sprintf(format+"\n", args...))
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputFailed, err)
	}
	return nil
}

// reportError prints the diagnostic for a failed action.
func (a *App) reportError(err error) error {
	var backendErr *service.BackendError

	switch {
	case errors.As(err, &backendErr) && backendErr.Rejected():
		return write(a.errOut, fmt.Sprintf(app.MsgRejectedFmt+"\n", backendErr.Status))
	case errors.Is(err, service.ErrBackendUnreachable):
		return write(a.errOut, fmt.Sprintf(app.MsgRequestErrorFmt+"\n", err))
	case errors.Is(err, service.ErrDocumentNotCopied):
		return write(a.errOut, fmt.Sprintf(app.MsgCopyErrorFmt+"\n", err))
	case errors.Is(err, tui.ErrDialogFailed), errors.Is(err, tui.ErrPickerStartDir):
		return write(a.errOut, fmt.Sprintf(app.MsgDialogErrorFmt+"\n", err))
	default:
		return write(a.errOut, fmt.Sprintf(app.MsgConfigErrorFmt+"\n", err))
	}
}
