// File: internal/notify/service.go
package notify

import "go.uber.org/zap"

// Presenter is the platform modal primitive. Present schedules the modal and
// returns immediately; button callbacks fire later, when (and if) the user
// responds. Presentation is assumed infallible.
type Presenter interface {
	Present(modal Modal)
}

// Service presents toast-style messages and confirm dialogs through a
// Presenter. It is stateless; every call is an independent fire-and-forget
// trigger.
type Service struct {
	presenter Presenter
	logger    *zap.Logger
}

// NewService creates a new notification service.
func NewService(presenter Presenter, logger *zap.Logger) *Service {
	return &Service{presenter: presenter, logger: logger}
}

// ShowToast presents a message with a single acknowledgment button. The
// button is styled destructive only for error toasts. A zero Type is treated
// as info.
func (s *Service) ShowToast(opts ToastOptions) {
	toastType := opts.Type
	if toastType == "" {
		toastType = ToastInfo
	}

	title := toastTitles[toastType]
	if opts.Title != "" {
		title = opts.Title
	}

	buttonStyle := ButtonStyleDefault
	if toastType == ToastError {
		buttonStyle = ButtonStyleDestructive
	}

	s.logger.Debug("Presenting toast",
		zap.String("type", string(toastType)),
		zap.String("title", title),
	)

	s.presenter.Present(Modal{
		Title:               toastIcons[toastType] + " " + title,
		Message:             opts.Message,
		Buttons:             []Button{{Label: "OK", Style: buttonStyle}},
		DismissOnOutsideTap: true,
	})
}

// Success presents a success toast. An empty title falls back to the default.
func (s *Service) Success(message, title string) {
	s.ShowToast(ToastOptions{Type: ToastSuccess, Message: message, Title: title})
}

// Error presents an error toast. An empty title falls back to the default.
func (s *Service) Error(message, title string) {
	s.ShowToast(ToastOptions{Type: ToastError, Message: message, Title: title})
}

// Info presents an info toast. An empty title falls back to the default.
func (s *Service) Info(message, title string) {
	s.ShowToast(ToastOptions{Type: ToastInfo, Message: message, Title: title})
}

// Warning presents a warning toast. An empty title falls back to the default.
func (s *Service) Warning(message, title string) {
	s.ShowToast(ToastOptions{Type: ToastWarning, Message: message, Title: title})
}

// ShowConfirm presents a two-choice dialog. Exactly one of OnConfirm or
// OnCancel fires, depending on which button the user picks.
func (s *Service) ShowConfirm(opts ConfirmOptions) {
	confirmText := opts.ConfirmText
	if confirmText == "" {
		confirmText = "Confirm"
	}
	cancelText := opts.CancelText
	if cancelText == "" {
		cancelText = "Cancel"
	}

	confirmStyle := ButtonStyleDefault
	if opts.Destructive {
		confirmStyle = ButtonStyleDestructive
	}

	s.logger.Debug("Presenting confirm dialog",
		zap.String("title", opts.Title),
		zap.Bool("destructive", opts.Destructive),
	)

	s.presenter.Present(Modal{
		Title:   opts.Title,
		Message: opts.Message,
		Buttons: []Button{
			{Label: cancelText, Style: ButtonStyleCancel, OnPress: opts.OnCancel},
			{Label: confirmText, Style: confirmStyle, OnPress: opts.OnConfirm},
		},
		DismissOnOutsideTap: true,
	})
}
