package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/focus"
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/source"
)

func newTestWorkflow(t *testing.T) (*focus.Manager, WorkflowModel) {
	t.Helper()
	fm := focus.NewManager()
	return fm, NewWorkflow(fm)
}

// enterM3UForm drives the type selector to the M3U form.
func enterM3UForm(t *testing.T, wf WorkflowModel) WorkflowModel {
	t.Helper()
	wf, _ = wf.Update(keyPress(tea.KeyDown)) // onto the M3U option
	wf, cmd := wf.Update(keyPress(tea.KeyEnter))
	_ = cmd // spinner tick
	require.Equal(t, StepM3UForm, wf.Step)
	return wf
}

func TestWorkflowOpensAtTypeSelection(t *testing.T) {
	fm, wf := newTestWorkflow(t)

	assert.Equal(t, StepTypeSelect, wf.Step)
	require.NotNil(t, fm.Current())
	assert.Equal(t, focusKeyTypeXtream, fm.Current().Key)

	view := wf.View()
	assert.Contains(t, view, "Xtream Codes")
	assert.Contains(t, view, "M3U playlist")
}

func TestWorkflowEnterOpensChosenForm(t *testing.T) {
	_, wf := newTestWorkflow(t)

	wf, cmd := wf.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, StepXtreamForm, wf.Step)
	assert.Contains(t, wf.View(), "Add Xtream source")
}

func TestWorkflowModalWidthVariesByStep(t *testing.T) {
	_, wf := newTestWorkflow(t)
	require.Equal(t, TypeSelectModalWidth, wf.ModalWidth())

	wf = enterM3UForm(t, wf)
	assert.Equal(t, FormModalWidth, wf.ModalWidth())
	assert.NotEqual(t, TypeSelectModalWidth, FormModalWidth,
		"the type selector and the forms have distinct widths")
}

func TestWorkflowClampsModalToNarrowTerminal(t *testing.T) {
	_, wf := newTestWorkflow(t)

	wf.SetWidth(48)
	assert.Equal(t, 44, wf.ModalWidth(),
		"the modal leaves room for the backdrop margin")

	wf = enterM3UForm(t, wf)
	assert.Equal(t, 44, wf.m3u.FrameWidth)

	// Back at a comfortable width the forms get their natural size.
	wf.SetWidth(120)
	assert.Equal(t, FormModalWidth, wf.m3u.FrameWidth)
	assert.Equal(t, FormModalWidth, wf.ModalWidth())
}

func TestWorkflowBackFromFormDiscardsDraft(t *testing.T) {
	_, wf := newTestWorkflow(t)
	wf = enterM3UForm(t, wf)

	// Type into the name field, then back out.
	wf, _ = wf.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("draftname")})
	require.Contains(t, wf.View(), "draftname")

	wf, _ = wf.Update(FormCancelledMsg{})
	assert.Equal(t, StepTypeSelect, wf.Step)

	// Re-entering the form shows empty fields, not the old draft.
	wf = enterM3UForm(t, wf)
	assert.NotContains(t, wf.View(), "draftname")
}

func TestWorkflowEscOnFormReturnsToTypeSelection(t *testing.T) {
	_, wf := newTestWorkflow(t)
	wf = enterM3UForm(t, wf)

	// The form's esc emits FormCancelledMsg; feed it back the way the
	// runtime would.
	wf2, cmd := wf.Update(keyPress(tea.KeyEsc))
	msg := runMsg(t, cmd)
	wf2, _ = wf2.Update(msg)
	assert.Equal(t, StepTypeSelect, wf2.Step)
}

func TestWorkflowEscOnTypeSelectionCloses(t *testing.T) {
	_, wf := newTestWorkflow(t)

	_, cmd := wf.Update(keyPress(tea.KeyEsc))
	msg := runMsg(t, cmd)
	assert.IsType(t, WorkflowClosedMsg{}, msg)
}

func TestWorkflowSubmitPassesPayloadUpward(t *testing.T) {
	_, wf := newTestWorkflow(t)
	wf = enterM3UForm(t, wf)

	data := source.M3UData{
		Name:        "My playlist",
		PlaylistURL: "https://example.com/list.m3u",
	}
	_, cmd := wf.Update(M3USubmittedMsg{Data: data})
	msg := runMsg(t, cmd)

	sub, ok := msg.(WorkflowSubmitMsg)
	require.True(t, ok)
	assert.Equal(t, source.TypeM3U, sub.Type)
	assert.Equal(t, data, sub.M3U)
}

func TestWorkflowLoadingSuppressesCancelAndSubmit(t *testing.T) {
	_, wf := newTestWorkflow(t)
	wf = enterM3UForm(t, wf)
	wf.SetLoading(true)

	_, cmd := wf.Update(keyPress(tea.KeyEsc))
	assert.Nil(t, cmd, "cancel must not fire while a save is in flight")

	wf2, cmd := wf.Update(keyPress(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, StepM3UForm, wf2.Step, "the workflow stays open until the save resolves")
}

func TestFreshWorkflowResetsState(t *testing.T) {
	fm, wf := newTestWorkflow(t)
	wf = enterM3UForm(t, wf)
	wf, _ = wf.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("stale")})

	// Close and reopen, as the coordinator does.
	wf.Close()
	wf2 := NewWorkflow(fm)

	assert.Equal(t, StepTypeSelect, wf2.Step)
	assert.NotContains(t, wf2.View(), "stale")
}
