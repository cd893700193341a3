package components

import "github.com/hy4ri/datepick/internal/calendar"

// DateSelectedMsg is emitted when a picker confirms a date.
type DateSelectedMsg struct {
	ID   string
	Date calendar.Date
}

// PickerClosedMsg is emitted when a controlled picker asks its host to hide it.
// The host is expected to call SetVisible(false).
type PickerClosedMsg struct {
	ID string
}
