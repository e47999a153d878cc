package constants

import "time"

const (
	AppName = "tasksched"
	Version = "v0.2.0"

	// DateFormat is the canonical day-key format used throughout the
	// application (YYYY-MM-DD, always UTC).
	DateFormat = "2006-01-02"

	// UndoWindow is how long a captured undo snapshot stays live before
	// it expires and is discarded.
	UndoWindow = 6 * time.Second

	// ExpansionCapYears bounds recurrence expansion past a task's anchor
	// date regardless of the requested window.
	ExpansionCapYears = 1

	// DuplicatePrefix is prepended to the title of a duplicated task.
	DuplicatePrefix = "Copy of "
)
