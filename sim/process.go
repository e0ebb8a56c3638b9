// Defines the Process struct that models an individual schedulable unit in the simulation.
// Tracks arrival time, burst time, priority, and the timing metrics that evolve during a run.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNew        ProcessState = "new"
	StateReady      ProcessState = "ready"
	StateRunning    ProcessState = "running"
	StateTerminated ProcessState = "terminated"
)

// Priority is the urgency tier of a process. Lower numeric values are
// more urgent, matching the convention of classic priority scheduling.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// String returns the tier name for a Priority value.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// ParsePriority converts a tier name into a Priority value.
// Empty string defaults to medium.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "high":
		return PriorityHigh, nil
	case "", "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return 0, fmt.Errorf("unknown priority %q (want high, medium, or low)", s)
	}
}

// Process models a single process's lifecycle in the simulation.
// Each process has:
// - immutable inputs: name, arrival time, burst time, priority
// - lifecycle state tracking (new → ready → running → terminated)
// - remaining execution time, decremented one unit per executed tick
// - timing metrics: waiting, turnaround, and response time
type Process struct {
	PID int // Unique identifier, assigned at creation and never reused

	Name        string   // Human-readable label
	ArrivalTime int64    // Tick at which the process becomes schedulable
	BurstTime   int64    // Total CPU time required to finish
	Priority    Priority // Urgency tier (lower value = more urgent)

	State         ProcessState // new, ready, running, terminated
	RemainingTime int64        // Execution time still owed; BurstTime at creation, 0 at termination

	HasStarted     bool  // Tracks whether the first dispatch has happened
	StartTime      int64 // Tick of first dispatch
	WaitingTime    int64 // Cumulative ticks spent in the ready state
	TurnaroundTime int64 // Completion tick minus arrival tick, set at termination
	ResponseTime   int64 // First dispatch tick minus arrival tick
}

// NewProcess constructs a process in the new state with its PID drawn
// from gen. Invalid numeric input is corrected in place rather than
// rejected: a negative arrival clamps to 0 and a non-positive burst
// clamps to 1, each with a warning.
func NewProcess(gen *IDGenerator, name string, arrival, burst int64, priority Priority) *Process {
	if arrival < 0 {
		logrus.Warnf("process %q: negative arrival time %d clamped to 0", name, arrival)
		arrival = 0
	}
	if burst <= 0 {
		logrus.Warnf("process %q: non-positive burst time %d clamped to 1", name, burst)
		burst = 1
	}
	return &Process{
		PID:           gen.Next(),
		Name:          name,
		ArrivalTime:   arrival,
		BurstTime:     burst,
		Priority:      priority,
		State:         StateNew,
		RemainingTime: burst,
	}
}

// Reset restores the process to its initial pre-run state so the same
// process set can be replayed under a different policy. Identity and
// the immutable inputs are untouched; all derived metrics are cleared.
func (p *Process) Reset() {
	p.State = StateNew
	p.RemainingTime = p.BurstTime
	p.HasStarted = false
	p.StartTime = 0
	p.WaitingTime = 0
	p.TurnaroundTime = 0
	p.ResponseTime = 0
}

// RecordCompletion finalizes the process's metrics at the given
// completion tick and freezes it in the terminated state.
//
// Waiting time is accrued incrementally while the process sits in the
// ready queue; the closed form turnaround − burst must agree with the
// accrued value for well-formed input. A mismatch means the engine loop
// and the metric bookkeeping have diverged, which is a defect, so it
// panics rather than silently preferring one formula.
func (p *Process) RecordCompletion(completionTime int64) {
	p.TurnaroundTime = completionTime - p.ArrivalTime
	derivedWaiting := p.TurnaroundTime - p.BurstTime
	if derivedWaiting < 0 {
		derivedWaiting = 0
	}
	if p.HasStarted && derivedWaiting != p.WaitingTime {
		panic(fmt.Sprintf("process %d: accrued waiting %d disagrees with turnaround-burst %d",
			p.PID, p.WaitingTime, derivedWaiting))
	}
	p.WaitingTime = derivedWaiting
	if !p.HasStarted {
		// Defensive: a process cannot complete without dispatching, but if
		// metrics are finalized out of band the response time is still derived.
		p.StartTime = completionTime - p.BurstTime
		p.ResponseTime = derivedWaiting
		p.HasStarted = true
	}
	p.State = StateTerminated
	p.RemainingTime = 0
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, Name: %s, State: %s, Remaining: %d, Arrival: %d)",
		p.PID, p.Name, p.State, p.RemainingTime, p.ArrivalTime)
}
