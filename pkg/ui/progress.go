package ui

import (
	"fmt"
	"time"
)

// StepTracker prints numbered pipeline steps
type StepTracker struct {
	Total     int
	Current   int
	StartTime time.Time
}

// NewStepTracker creates a tracker for total steps
func NewStepTracker(total int) *StepTracker {
	return &StepTracker{
		Total:     total,
		StartTime: time.Now(),
	}
}

// Next advances to the next step and prints its label
func (st *StepTracker) Next(label string) {
	if st.Current < st.Total {
		st.Current++
	}
	if quietMode {
		return
	}
	fmt.Fprintf(out, "%s %s\n", Magenta(st.Prefix()), label)
}

// Prefix returns the "[current/total]" marker
func (st *StepTracker) Prefix() string {
	return fmt.Sprintf("[%d/%d]", st.Current, st.Total)
}

// Done reports whether every step has started
func (st *StepTracker) Done() bool {
	return st.Current >= st.Total
}

// GetElapsedTime returns the elapsed time since tracking started
func (st *StepTracker) GetElapsedTime() time.Duration {
	return time.Since(st.StartTime)
}

// PrintElapsed prints the total run time
func (st *StepTracker) PrintElapsed() {
	if quietMode {
		return
	}
	fmt.Fprintf(out, "%s %s\n", Dim("elapsed"), Dim(st.GetElapsedTime().Round(time.Millisecond).String()))
}
