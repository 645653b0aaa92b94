// File: internal/notify/presenter.go
package notify

import "go.uber.org/zap"

// LogPresenter renders modals into the log. It is the presenter used in
// headless runs, where no user exists to press a button, so callbacks are
// never invoked.
type LogPresenter struct {
	logger *zap.Logger
}

// NewLogPresenter creates a presenter backed by the given logger.
func NewLogPresenter(logger *zap.Logger) *LogPresenter {
	return &LogPresenter{logger: logger}
}

var _ Presenter = (*LogPresenter)(nil)

// Present writes the modal to the log and returns.
func (p *LogPresenter) Present(modal Modal) {
	labels := make([]string, 0, len(modal.Buttons))
	for _, b := range modal.Buttons {
		labels = append(labels, b.Label)
	}
	p.logger.Info("Modal presented",
		zap.String("title", modal.Title),
		zap.String("message", modal.Message),
		zap.Strings("buttons", labels),
	)
}
