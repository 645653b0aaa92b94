// File: internal/notify/model.go
package notify

import "time"

// ToastType enumerates the toast styles.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
	ToastWarning ToastType = "warning"
)

// Per-type default titles and glyphs. These are fixed lookup tables; the
// title half can be overridden per call, the glyph cannot.
var (
	toastTitles = map[ToastType]string{
		ToastSuccess: "Success",
		ToastError:   "Error",
		ToastInfo:    "Info",
		ToastWarning: "Warning",
	}
	toastIcons = map[ToastType]string{
		ToastSuccess: "✅",
		ToastError:   "❌",
		ToastInfo:    "ℹ️",
		ToastWarning: "⚠️",
	}
)

// ToastOptions describe a single-acknowledgment message.
type ToastOptions struct {
	// Title overrides the per-type default when non-empty.
	Title   string
	Message string
	// Duration is accepted for compatibility with callers that pass one, but
	// has no effect: the modal is dismissed only by explicit acknowledgment.
	Duration time.Duration
	Type     ToastType
}

// ConfirmOptions describe a two-choice dialog gating an action behind
// explicit user consent.
type ConfirmOptions struct {
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
	// OnConfirm runs when the user picks the confirm button.
	OnConfirm func()
	// OnCancel optionally runs when the user picks the cancel button.
	OnCancel func()
	// Destructive styles the confirm button as destructive.
	Destructive bool
}

// ButtonStyle enumerates the platform button styles.
type ButtonStyle string

const (
	ButtonStyleDefault     ButtonStyle = "default"
	ButtonStyleCancel      ButtonStyle = "cancel"
	ButtonStyleDestructive ButtonStyle = "destructive"
)

// Button is one choice on a modal. OnPress, when set, is invoked by the
// platform after the user picks the button.
type Button struct {
	Label   string
	Style   ButtonStyle
	OnPress func()
}

// Modal is the request handed to the platform presenter.
type Modal struct {
	Title               string
	Message             string
	Buttons             []Button
	DismissOnOutsideTap bool
}
