package ports

import "context"

// PrompterPort abstracts the one-shot user interactions: file selection,
// numeric prompts and terminal dialogs. Every prompt blocks until the user
// answers or cancels; cancellation surfaces as core.ErrCancelled so callers
// can terminate nominally instead of crashing downstream.
//
// Implementations must tear down any UI state they acquire on every return
// path, confirmed or cancelled.
type PrompterPort interface {
	// PickFile asks the user for an input file restricted to the given
	// extensions (e.g. ".csv", ".xlsx").
	PickFile(ctx context.Context, title string, extensions []string) (string, error)

	// PromptFloat asks for a numeric value, pre-filled with defaultValue.
	PromptFloat(ctx context.Context, prompt string, defaultValue float64) (float64, error)

	// Info and Error present modal messages for the nominal termination
	// paths (no file selected, schema error).
	Info(ctx context.Context, title, message string)
	Error(ctx context.Context, title, message string)

	// ShowReport presents the final report text and blocks until dismissed.
	ShowReport(ctx context.Context, title, body string)
}
