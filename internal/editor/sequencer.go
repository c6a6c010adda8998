package editor

import (
	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/store"
)

// Step binds a wizard step label to its section editor.
type Step struct {
	Label  string
	Editor SectionEditor
}

// Sequencer orders the six section editors into a linear wizard with a
// single zero-based active index. Transitions are no-ops at either
// boundary and the sequence is freely revisitable; switching steps never
// saves implicitly.
type Sequencer struct {
	steps  []Step
	active int
}

// NewSequencer builds the wizard in the fixed section order
// Personal → Summary → Education → Experience → Projects → Skills and
// wires each editor's navigation callbacks. The first editor gets no
// back control and the last gets no next control.
func NewSequencer(st *store.Store, gw gateway.Gateway, resumeID string, notify Notifier) *Sequencer {
	seq := &Sequencer{}

	personal := NewPersonalEditor(st, gw, resumeID, notify)
	summary := NewSummaryEditor(st, gw, resumeID, notify)
	education := NewEducationEditor(st, gw, resumeID, notify)
	experience := NewExperienceEditor(st, gw, resumeID, notify)
	projects := NewProjectsEditor(st, gw, resumeID, notify)
	skills := NewSkillsEditor(st, gw, resumeID, notify)

	personal.SetNavigation(nil, seq.Next)
	summary.SetNavigation(seq.Previous, seq.Next)
	education.SetNavigation(seq.Previous, seq.Next)
	experience.SetNavigation(seq.Previous, seq.Next)
	projects.SetNavigation(seq.Previous, seq.Next)
	skills.SetNavigation(seq.Previous, nil)

	seq.steps = []Step{
		{Label: "Personal", Editor: personal},
		{Label: "Summary", Editor: summary},
		{Label: "Education", Editor: education},
		{Label: "Experience", Editor: experience},
		{Label: "Projects", Editor: projects},
		{Label: "Skills", Editor: skills},
	}
	return seq
}

// Steps returns the ordered steps.
func (s *Sequencer) Steps() []Step { return s.steps }

// Editors returns the section editors in step order.
func (s *Sequencer) Editors() []SectionEditor {
	out := make([]SectionEditor, len(s.steps))
	for i, step := range s.steps {
		out[i] = step.Editor
	}
	return out
}

// ActiveIndex returns the zero-based index of the active step.
func (s *Sequencer) ActiveIndex() int { return s.active }

// Active returns the active step. The active editor always reads the
// live document from the store, so switching steps never shows stale
// data.
func (s *Sequencer) Active() Step {
	step := s.steps[s.active]
	step.Editor.Sync()
	return step
}

// Next advances the wizard; a no-op at the last step.
func (s *Sequencer) Next() {
	if s.active < len(s.steps)-1 {
		s.active++
	}
}

// Previous moves the wizard back; a no-op at the first step.
func (s *Sequencer) Previous() {
	if s.active > 0 {
		s.active--
	}
}
