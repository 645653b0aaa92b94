// File: internal/notify/service_test.go
package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingPresenter captures every modal it is asked to present.
type recordingPresenter struct {
	modals []Modal
}

func (p *recordingPresenter) Present(modal Modal) {
	p.modals = append(p.modals, modal)
}

func newTestNotifier() (*Service, *recordingPresenter) {
	presenter := &recordingPresenter{}
	return NewService(presenter, zap.NewNop()), presenter
}

func TestShowToast_ErrorUsesDestructiveAcknowledgment(t *testing.T) {
	svc, presenter := newTestNotifier()

	svc.ShowToast(ToastOptions{Type: ToastError, Message: "X"})

	require.Len(t, presenter.modals, 1)
	modal := presenter.modals[0]
	assert.Equal(t, "❌ Error", modal.Title)
	assert.Equal(t, "X", modal.Message)
	require.Len(t, modal.Buttons, 1)
	assert.Equal(t, "OK", modal.Buttons[0].Label)
	assert.Equal(t, ButtonStyleDestructive, modal.Buttons[0].Style)
	assert.True(t, modal.DismissOnOutsideTap)
}

func TestShowToast_TitleOverrideKeepsGlyph(t *testing.T) {
	svc, presenter := newTestNotifier()

	svc.ShowToast(ToastOptions{Type: ToastSuccess, Message: "X", Title: "Done"})

	require.Len(t, presenter.modals, 1)
	modal := presenter.modals[0]
	assert.Equal(t, "✅ Done", modal.Title)
	require.Len(t, modal.Buttons, 1)
	assert.Equal(t, ButtonStyleDefault, modal.Buttons[0].Style)
}

func TestShowToast_DefaultTitlesPerType(t *testing.T) {
	testCases := []struct {
		toastType ToastType
		wantTitle string
	}{
		{ToastSuccess, "✅ Success"},
		{ToastError, "❌ Error"},
		{ToastInfo, "ℹ️ Info"},
		{ToastWarning, "⚠️ Warning"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.toastType), func(t *testing.T) {
			svc, presenter := newTestNotifier()
			svc.ShowToast(ToastOptions{Type: tc.toastType, Message: "hello"})
			require.Len(t, presenter.modals, 1)
			assert.Equal(t, tc.wantTitle, presenter.modals[0].Title)
		})
	}
}

func TestShowToast_MissingTypeFallsBackToInfo(t *testing.T) {
	svc, presenter := newTestNotifier()

	svc.ShowToast(ToastOptions{Message: "hello"})

	require.Len(t, presenter.modals, 1)
	assert.Equal(t, "ℹ️ Info", presenter.modals[0].Title)
}

func TestShowToast_DurationIsANoOp(t *testing.T) {
	svc, presenter := newTestNotifier()

	svc.ShowToast(ToastOptions{Type: ToastInfo, Message: "hello", Duration: 3 * time.Second})

	// Still a single acknowledgment-only presentation; nothing auto-dismisses.
	require.Len(t, presenter.modals, 1)
	require.Len(t, presenter.modals[0].Buttons, 1)
}

func TestShortcuts_ForwardTypeAndTitle(t *testing.T) {
	svc, presenter := newTestNotifier()

	svc.Success("a", "")
	svc.Error("b", "")
	svc.Info("c", "")
	svc.Warning("d", "Heads up")

	require.Len(t, presenter.modals, 4)
	assert.Equal(t, "✅ Success", presenter.modals[0].Title)
	assert.Equal(t, "❌ Error", presenter.modals[1].Title)
	assert.Equal(t, "ℹ️ Info", presenter.modals[2].Title)
	assert.Equal(t, "⚠️ Heads up", presenter.modals[3].Title)
}

func TestShowConfirm_DefaultLabels(t *testing.T) {
	svc, presenter := newTestNotifier()

	svc.ShowConfirm(ConfirmOptions{Title: "Delete entry", Message: "Sure?", OnConfirm: func() {}})

	require.Len(t, presenter.modals, 1)
	modal := presenter.modals[0]
	require.Len(t, modal.Buttons, 2)
	assert.Equal(t, "Cancel", modal.Buttons[0].Label)
	assert.Equal(t, ButtonStyleCancel, modal.Buttons[0].Style)
	assert.Equal(t, "Confirm", modal.Buttons[1].Label)
	assert.Equal(t, ButtonStyleDefault, modal.Buttons[1].Style)
	assert.True(t, modal.DismissOnOutsideTap)
}

func TestShowConfirm_DestructiveConfirmInvokesOnlyConfirmCallback(t *testing.T) {
	svc, presenter := newTestNotifier()

	confirmed := false
	cancelled := false
	svc.ShowConfirm(ConfirmOptions{
		Title:       "Delete entry",
		Message:     "This cannot be undone.",
		ConfirmText: "Delete",
		Destructive: true,
		OnConfirm:   func() { confirmed = true },
		OnCancel:    func() { cancelled = true },
	})

	require.Len(t, presenter.modals, 1)
	modal := presenter.modals[0]
	require.Len(t, modal.Buttons, 2)
	assert.Equal(t, "Delete", modal.Buttons[1].Label)
	assert.Equal(t, ButtonStyleDestructive, modal.Buttons[1].Style)

	// Simulate the user picking confirm.
	modal.Buttons[1].OnPress()
	assert.True(t, confirmed)
	assert.False(t, cancelled)
}

func TestShowConfirm_CancelInvokesCancelCallback(t *testing.T) {
	svc, presenter := newTestNotifier()

	confirmed := false
	cancelled := false
	svc.ShowConfirm(ConfirmOptions{
		Title:     "Sign out",
		Message:   "Sign out of this device?",
		OnConfirm: func() { confirmed = true },
		OnCancel:  func() { cancelled = true },
	})

	require.Len(t, presenter.modals, 1)
	presenter.modals[0].Buttons[0].OnPress()
	assert.True(t, cancelled)
	assert.False(t, confirmed)
}
