package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"godice/domain/core"
)

var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	infoBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
	errorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1)
	warnStyle = lipgloss.NewStyle().Foreground(colorWarning)
)

// Prompter runs the interactive dialogs in the terminal: a file picker,
// pre-filled numeric inputs and modal report panels. Each dialog is a
// one-shot huh form; huh tears the screen state down on every exit path,
// so a cancelled prompt cannot leak UI state.
// Implements ports.PrompterPort.
type Prompter struct{}

// NewPrompter creates a terminal prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// PickFile asks the user to choose an input file restricted to the given
// extensions. Aborting the picker or confirming without a selection is
// core.ErrCancelled.
func (p *Prompter) PickFile(ctx context.Context, title string, extensions []string) (string, error) {
	var path string
	form := huh.NewForm(huh.NewGroup(
		huh.NewFilePicker().
			Title(title).
			AllowedTypes(extensions).
			ShowHidden(false).
			Value(&path),
	))

	if err := form.RunWithContext(ctx); err != nil {
		return "", mapAbort(err)
	}
	if path == "" {
		return "", fmt.Errorf("%w: no file selected", core.ErrCancelled)
	}
	return path, nil
}

// PromptFloat asks for a numeric value pre-filled with defaultValue.
func (p *Prompter) PromptFloat(ctx context.Context, prompt string, defaultValue float64) (float64, error) {
	raw := strconv.FormatFloat(defaultValue, 'g', -1, 64)
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(prompt).
			Value(&raw).
			Validate(func(s string) error {
				if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
					return fmt.Errorf("enter a numeric value")
				}
				return nil
			}),
	))

	if err := form.RunWithContext(ctx); err != nil {
		return 0, mapAbort(err)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: no value entered", core.ErrCancelled)
	}
	return value, nil
}

// Info presents an informational message.
func (p *Prompter) Info(ctx context.Context, title, message string) {
	fmt.Println(infoBox.Render(titleStyle.Render(title) + "\n" + message))
}

// Error presents an error message.
func (p *Prompter) Error(ctx context.Context, title, message string) {
	fmt.Println(errorBox.Render(warnStyle.Render(title) + "\n" + message))
}

// ShowReport presents the report panel and blocks until dismissed.
func (p *Prompter) ShowReport(ctx context.Context, title, body string) {
	fmt.Println(infoBox.Render(titleStyle.Render(title) + "\n\n" + body))

	ack := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Dismiss report").
			Affirmative("OK").
			Negative("").
			Value(&ack),
	))
	// dismissal is dismissal, however the form ends
	_ = form.RunWithContext(ctx)
}

func mapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return fmt.Errorf("%w: prompt aborted", core.ErrCancelled)
	}
	return err
}
