// Package schedule runs delayed and periodic continuations against the
// simulated clock. It stands in for coroutine waits: every pending wait is a
// Task that can be cancelled before it fires.
package schedule

import (
	"sort"
	"time"
)

// Task is a cancellation token for one scheduled continuation.
type Task struct {
	s        *Scheduler
	due      time.Duration
	interval time.Duration // 0 = one-shot
	seq      uint64
	fn       func()
	done     bool
}

// Cancel stops the task and drops it from the scheduler. Safe to call more
// than once, from inside the task itself, or on a nil task.
func (t *Task) Cancel() {
	if t == nil || t.done {
		return
	}
	t.done = true
	t.s.remove(t)
}

// Pending reports whether the task will still fire.
func (t *Task) Pending() bool { return t != nil && !t.done }

// Due returns the next fire time on the scheduler clock.
func (t *Task) Due() time.Duration { return t.due }

// Scheduler holds pending tasks. Game-loop goroutine only.
type Scheduler struct {
	now   time.Duration
	tasks []*Task
	seq   uint64
}

func New() *Scheduler {
	return &Scheduler{tasks: make([]*Task, 0, 8)}
}

// Now returns the time of the last Advance.
func (s *Scheduler) Now() time.Duration { return s.now }

// After schedules fn once, d after the current time.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	return s.add(d, 0, fn)
}

// Every schedules fn every interval, first firing one interval from now.
// Callers that want an immediate first run call fn themselves, the way a
// "do, then wait" loop would.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	return s.add(interval, interval, fn)
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int { return len(s.tasks) }

// Advance moves the clock to now and runs every task due at or before it, in
// due order (ties by scheduling order). A periodic task fires at most once
// per Advance and is rescheduled from now, like a wait resumed on a frame
// boundary. Tasks scheduled from inside a callback are not run until a later
// Advance.
func (s *Scheduler) Advance(now time.Duration) {
	if now > s.now {
		s.now = now
	}
	due := s.dueTasks()
	for _, t := range due {
		if t.done {
			continue // cancelled by an earlier callback this round
		}
		if t.interval > 0 {
			t.due = s.now + t.interval
		} else {
			t.done = true
			s.remove(t)
		}
		t.fn()
	}
}

func (s *Scheduler) dueTasks() []*Task {
	var due []*Task
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	return due
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{
		s:        s,
		due:      s.now + delay,
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *Scheduler) remove(t *Task) {
	for i, p := range s.tasks {
		if p == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}
