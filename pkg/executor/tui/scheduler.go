package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scheduledTaskMsg carries a deferred form task back onto the event loop.
type scheduledTaskMsg struct {
	run func()
}

// teaScheduler implements form.Scheduler with tea.Tick. Tasks are queued as
// commands and handed to Bubble Tea by the model after each update, so they
// always run inside Update.
type teaScheduler struct {
	pending []tea.Cmd
}

func (s *teaScheduler) Schedule(delay time.Duration, task func()) {
	s.pending = append(s.pending, tea.Tick(delay, func(time.Time) tea.Msg {
		return scheduledTaskMsg{run: task}
	}))
}

// drain returns the queued timers as one command and empties the queue.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
