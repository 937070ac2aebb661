package domain

import "time"

// WithClock pins the time source and report ids of a workflow built by
// NewWorkflow.
func WithClock(wf Workflow, now func() time.Time, newID func() string) Workflow {
	w := wf.(*workflow)
	w.now = now
	w.newID = newID

	return w
}
