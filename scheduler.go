package reassemble

// Task is a timed behavior advanced once per tick. Update receives the elapsed
// time in seconds since the previous tick and reports whether the task is done.
// Done tasks are dropped by the Scheduler and never updated again.
type Task interface {
	Update(dt float64) (done bool)
}

// TaskFunc adapts a function to Task.
type TaskFunc func(dt float64) bool

// Update calls f(dt).
func (f TaskFunc) Update(dt float64) bool { return f(dt) }

type scheduledTask struct {
	task      Task
	cancelled bool
}

// Scheduler holds the list of running tasks. It is polled once per tick from
// the game loop; there is no background goroutine.
//
// Tasks added while the scheduler is updating start on the next tick.
type Scheduler struct {
	tasks    []*scheduledTask
	pending  []*scheduledTask
	updating bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// TaskHandle refers to a scheduled task.
type TaskHandle struct {
	st *scheduledTask
}

// Cancel stops the task before its next update. Cancelling a finished task is
// a no-op.
func (h TaskHandle) Cancel() {
	if h.st != nil {
		h.st.cancelled = true
	}
}

// Add schedules t and returns a handle to it.
func (s *Scheduler) Add(t Task) TaskHandle {
	st := &scheduledTask{task: t}
	if s.updating {
		s.pending = append(s.pending, st)
	} else {
		s.tasks = append(s.tasks, st)
	}
	return TaskHandle{st: st}
}

// After schedules fn to run once, delay seconds from now.
func (s *Scheduler) After(delay float64, fn func()) TaskHandle {
	return s.Add(&delayTask{delay: delay, fn: fn})
}

// Len returns the number of live tasks, including ones pending start.
func (s *Scheduler) Len() int {
	return len(s.tasks) + len(s.pending)
}

// Update advances every live task by dt seconds, in insertion order, and drops
// finished or cancelled ones.
func (s *Scheduler) Update(dt float64) {
	s.updating = true
	kept := s.tasks[:0]
	for _, st := range s.tasks {
		if st.cancelled {
			continue
		}
		if st.task.Update(dt) {
			st.cancelled = true
			continue
		}
		kept = append(kept, st)
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
	s.updating = false

	if len(s.pending) > 0 {
		s.tasks = append(s.tasks, s.pending...)
		for i := range s.pending {
			s.pending[i] = nil
		}
		s.pending = s.pending[:0]
	}
}

// delayTask waits for its delay to elapse, then runs fn once.
type delayTask struct {
	elapsed float64
	delay   float64
	fn      func()
}

func (d *delayTask) Update(dt float64) bool {
	d.elapsed += dt
	if d.elapsed < d.delay {
		return false
	}
	if d.fn != nil {
		d.fn()
	}
	return true
}
