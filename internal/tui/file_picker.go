package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/ava-cli/internal/config"
	"github.com/MKhiriev/ava-cli/internal/logger"
	"github.com/MKhiriev/ava-cli/models"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pickerTitle   = "Select a PDF document"
	pickerHotKeys = "enter: select │ ↑/↓: navigate │ h/←: back │ esc/q: cancel"
	pickerHeight  = 12
)

// allowedExtensions are matched by suffix, so both letter cases are listed.
var allowedExtensions = []string{models.DocumentExtension, ".PDF"}

type filePickerModel struct {
	picker    filepicker.Model
	selected  string
	cancelled bool
	notice    string
}

func newFilePickerModel(startDir string) filePickerModel {
	fp := filepicker.New()
	fp.CurrentDirectory = startDir
	fp.AllowedTypes = allowedExtensions
	fp.Height = pickerHeight
	fp.KeyMap.Back = keys.back

	return filePickerModel{picker: fp}
}

func (m filePickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m filePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.cancel) {
		m.cancelled = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.selected = path
		return m, tea.Quit
	}

	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.notice = filepath.Base(path) + " is not a PDF document"
		return m, cmd
	}

	if _, ok := msg.(tea.KeyMsg); ok {
		m.notice = ""
	}

	return m, cmd
}

func (m filePickerModel) View() string {
	if m.selected != "" || m.cancelled {
		return ""
	}

	body := m.picker.CurrentDirectory + "\n\n" + m.picker.View()
	if m.notice != "" {
		body += "\n" + errorStyle.Render(m.notice)
	}

	return renderPage(pickerTitle, body, pickerHotKeys)
}

// TerminalFilePicker is a [FilePicker] that runs a bubbletea file browser
// in the terminal, listing directories and PDF documents only.
type TerminalFilePicker struct {
	startDir string
	in       io.Reader
	out      io.Writer

	logger *logger.Logger
}

// NewFilePicker constructs a [TerminalFilePicker] that opens in
// cfg.PickerStartDir. Nil in or out keep bubbletea's defaults (the
// process's standard streams).
func NewFilePicker(cfg config.Documents, in io.Reader, out io.Writer, logger *logger.Logger) *TerminalFilePicker {
	startDir := cfg.PickerStartDir
	if startDir == "" {
		startDir = config.DefaultPickerStartDir
	}

	return &TerminalFilePicker{
		startDir: startDir,
		in:       in,
		out:      out,
		logger:   logger.WithComponent("file_picker"),
	}
}

// PickFile implements [FilePicker].
func (p *TerminalFilePicker) PickFile(ctx context.Context) (string, bool, error) {
	startDir, err := resolveStartDir(p.startDir)
	if err != nil {
		return "", false, err
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}
	if p.out != nil {
		opts = append(opts, tea.WithOutput(p.out))
	}

	finalModel, err := tea.NewProgram(newFilePickerModel(startDir), opts...).Run()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrDialogFailed, err)
	}

	result, ok := finalModel.(filePickerModel)
	if !ok {
		return "", false, fmt.Errorf("%w: %w", ErrDialogFailed, tea.ErrProgramKilled)
	}

	if result.selected == "" {
		p.logger.Debug().Str("start_dir", startDir).Msg("file dialog dismissed")
		return "", false, nil
	}

	p.logger.Debug().Str("path", result.selected).Msg("file selected")
	return result.selected, true, nil
}

func resolveStartDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPickerStartDir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPickerStartDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrPickerStartDir, abs)
	}

	return abs, nil
}
