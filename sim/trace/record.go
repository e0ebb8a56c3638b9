// Package trace provides execution-trace recording for scheduling analysis.
// This package has no dependencies on sim/ — it stores pure data types that
// the display layer renders however it chooses.
package trace

// EventKind identifies a single scheduling event in the execution trace.
type EventKind string

const (
	// EventArrived marks a process entering the ready queue.
	EventArrived EventKind = "arrived"
	// EventStarted marks a process's first-ever dispatch.
	EventStarted EventKind = "started"
	// EventPreempted marks a running process forced back to ready.
	EventPreempted EventKind = "preempted"
	// EventResumed marks a dispatch after a previous preemption.
	EventResumed EventKind = "resumed"
	// EventCompleted marks a process reaching zero remaining time.
	EventCompleted EventKind = "completed"
)

// Record captures a single scheduling event.
type Record struct {
	Time    int64     // Simulation tick at which the event occurred
	PID     int       // Process the event concerns
	Event   EventKind // What happened
	Process string    // Process name, carried for human-readable rendering
}
