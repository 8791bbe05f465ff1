package ports

import "context"

// PreferenceStore persists user-facing display preferences across restarts.
// Currently that is only the dark mode flag.
type PreferenceStore interface {
	// DarkMode reports whether dark mode is enabled. Defaults to false
	// when no preference has been saved yet.
	DarkMode(ctx context.Context) (bool, error)

	// SetDarkMode persists the dark mode flag.
	SetDarkMode(ctx context.Context, enabled bool) error
}
