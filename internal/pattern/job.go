package pattern

import "context"

// Job runs a Pattern on its own goroutine. The owner must Close (or Wait
// for) a job before touching the pattern again.
type Job struct {
	pattern   *Pattern
	generated chan struct{}
	done      chan struct{}
	err       error
}

// Start begins generating p in the background.
func Start(ctx context.Context, p *Pattern) *Job {
	j := &Job{
		pattern:   p,
		generated: make(chan struct{}),
		done:      make(chan struct{}),
	}
	go func() {
		defer close(j.done)
		j.err = p.Run(ctx)
		if j.err == nil {
			close(j.generated)
		}
	}()
	return j
}

// Generated is closed once, when the pattern finishes successfully. It is
// never closed for a job that fails or is cancelled.
func (j *Job) Generated() <-chan struct{} { return j.generated }

// Done is closed when the worker goroutine has returned.
func (j *Job) Done() <-chan struct{} { return j.done }

func (j *Job) Pattern() *Pattern { return j.pattern }

// Cancel asks the worker to stop. It does not wait.
func (j *Job) Cancel() {
	j.pattern.Cancel()
}

// Wait blocks until the worker returns and reports its result.
func (j *Job) Wait() error {
	<-j.done
	return j.err
}

// Close cancels the job if it is still running and waits for the worker to
// stop.
func (j *Job) Close() error {
	select {
	case <-j.done:
	default:
		j.Cancel()
	}
	return j.Wait()
}
