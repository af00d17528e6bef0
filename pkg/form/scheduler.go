package form

import "time"

// Scheduler runs one-shot tasks after a delay on the host's event loop.
// Scheduled tasks cannot be cancelled.
type Scheduler interface {
	Schedule(delay time.Duration, task func())
}

// ManualScheduler is a Scheduler driven by virtual time.
// Nothing runs until Advance is called, which makes timer behaviour
// testable without sleeping.
type ManualScheduler struct {
	now   time.Duration
	seq   int
	tasks []scheduledTask
}

type scheduledTask struct {
	due  time.Duration
	seq  int
	task func()
}

// NewManualScheduler creates a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule queues task to run once the virtual clock reaches now+delay.
func (s *ManualScheduler) Schedule(delay time.Duration, task func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.tasks = append(s.tasks, scheduledTask{due: s.now + delay, seq: s.seq, task: task})
}

// Advance moves the clock forward by d and runs every task that became due,
// ordered by due time then submission order. Tasks scheduled while advancing
// run too if they fall inside the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		idx := s.nextDue(target)
		if idx < 0 {
			break
		}
		next := s.tasks[idx]
		s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
		s.now = next.due
		next.task()
	}
	s.now = target
}

// Now returns the elapsed virtual time.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of tasks that have not run yet.
func (s *ManualScheduler) Pending() int {
	return len(s.tasks)
}

func (s *ManualScheduler) nextDue(target time.Duration) int {
	best := -1
	for i, t := range s.tasks {
		if t.due > target {
			continue
		}
		if best < 0 || t.due < s.tasks[best].due || (t.due == s.tasks[best].due && t.seq < s.tasks[best].seq) {
			best = i
		}
	}
	return best
}
