package sim

import (
	"fmt"
	"sort"
)

// DefaultQuantum is the round-robin time slice used when no quantum is configured.
const DefaultQuantum int64 = 4

// SchedulingPolicy decides which ready process runs next at each dispatch
// point. Policies are stateless with respect to process identity: they
// receive the ready set and return a choice, never holding ownership.
//
// Prepare is called once per run before the loop starts; only FCFS uses
// it, to pin the process set to strict arrival order. SelectNext receives
// the ready queue contents in FIFO order and MUST NOT modify the slice;
// returning nil means no dispatch this tick.
type SchedulingPolicy interface {
	Name() string
	Preemptive() bool
	// Quantum returns the time slice granted per dispatch, or 0 for
	// policies that run a process until completion.
	Quantum() int64
	Prepare(processes []*Process)
	SelectNext(ready []*Process, quantumExpired bool) *Process
}

// FCFSPolicy dispatches strictly in arrival order. The process set is
// pre-sorted by arrival time before the loop so that completion order
// equals arrival order even when registration order differs.
type FCFSPolicy struct{}

func (f *FCFSPolicy) Name() string { return "fcfs" }
func (f *FCFSPolicy) Preemptive() bool { return false }
func (f *FCFSPolicy) Quantum() int64 { return 0 }

func (f *FCFSPolicy) Prepare(processes []*Process) {
	// Stable sort keeps registration order for equal arrival times.
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})
}

func (f *FCFSPolicy) SelectNext(ready []*Process, _ bool) *Process {
	if len(ready) == 0 {
		return nil
	}
	return ready[0]
}

// SJFPolicy picks the ready process with the minimum burst time and runs
// it to completion uninterrupted. Ties resolve to the first process
// reaching the minimum during the scan, which is ready-queue order.
// Warning: SJF can starve long processes under sustained load.
type SJFPolicy struct{}

func (s *SJFPolicy) Name() string { return "sjf" }
func (s *SJFPolicy) Preemptive() bool { return false }
func (s *SJFPolicy) Quantum() int64 { return 0 }
func (s *SJFPolicy) Prepare(_ []*Process) {}

func (s *SJFPolicy) SelectNext(ready []*Process, _ bool) *Process {
	var shortest *Process
	for _, p := range ready {
		if shortest == nil || p.BurstTime < shortest.BurstTime {
			shortest = p
		}
	}
	return shortest
}

// RoundRobinPolicy dispatches strictly FIFO and grants each dispatch a
// fixed quantum. The engine preempts the running process exactly when
// its quantum is exhausted with work remaining, re-enqueueing it at the
// tail before the next pick.
type RoundRobinPolicy struct {
	quantum int64
}

// NewRoundRobinPolicy creates a round-robin policy with the given time
// slice. A non-positive quantum falls back to DefaultQuantum.
func NewRoundRobinPolicy(quantum int64) *RoundRobinPolicy {
	if quantum <= 0 {
		quantum = DefaultQuantum
	}
	return &RoundRobinPolicy{quantum: quantum}
}

func (r *RoundRobinPolicy) Name() string { return "round-robin" }
func (r *RoundRobinPolicy) Preemptive() bool { return true }
func (r *RoundRobinPolicy) Quantum() int64 { return r.quantum }
func (r *RoundRobinPolicy) Prepare(_ []*Process) {}

func (r *RoundRobinPolicy) SelectNext(ready []*Process, _ bool) *Process {
	if len(ready) == 0 {
		return nil
	}
	return ready[0]
}

// PriorityPolicy picks the ready process with the minimum priority value
// (lower number = more urgent) and runs it to completion uninterrupted.
// Ties resolve to the first process reaching the minimum during the scan.
type PriorityPolicy struct{}

func (p *PriorityPolicy) Name() string { return "priority" }
func (p *PriorityPolicy) Preemptive() bool { return false }
func (p *PriorityPolicy) Quantum() int64 { return 0 }
func (p *PriorityPolicy) Prepare(_ []*Process) {}

func (p *PriorityPolicy) SelectNext(ready []*Process, _ bool) *Process {
	var urgent *Process
	for _, proc := range ready {
		if urgent == nil || proc.Priority < urgent.Priority {
			urgent = proc
		}
	}
	return urgent
}

// ValidPolicies is the set of recognized scheduling policy names.
// Shared by scenario validation and NewPolicy to avoid duplication.
var ValidPolicies = map[string]bool{"": true, "fcfs": true, "sjf": true, "round-robin": true, "priority": true}

// IsValidPolicy returns true if name is a recognized scheduling policy.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// PolicyNames lists the concrete policy names in canonical comparison order.
var PolicyNames = []string{"fcfs", "sjf", "round-robin", "priority"}

// NewPolicy creates a SchedulingPolicy by name. The quantum parameter
// only applies to round-robin; non-positive values use DefaultQuantum.
// Empty string defaults to FCFS (for CLI flag default compatibility).
// Panics on unrecognized names; callers validate with IsValidPolicy first.
func NewPolicy(name string, quantum int64) SchedulingPolicy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown scheduling policy %q", name))
	}
	switch name {
	case "", "fcfs":
		return &FCFSPolicy{}
	case "sjf":
		return &SJFPolicy{}
	case "round-robin":
		return NewRoundRobinPolicy(quantum)
	case "priority":
		return &PriorityPolicy{}
	default:
		panic(fmt.Sprintf("unhandled scheduling policy %q", name))
	}
}
