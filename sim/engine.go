// sim/engine.go
package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sched-sim/sched-sim/sim/trace"
)

// Run precondition failures. All are recoverable: the engine mutates no
// state before validation passes.
var (
	// ErrEmptyProcessSet is returned when Run is invoked with no registered processes.
	ErrEmptyProcessSet = errors.New("no processes registered")
	// ErrInvalidProcess is returned when a registered process fails validation.
	ErrInvalidProcess = errors.New("invalid process in set")
	// ErrNilPolicy is returned when Run is invoked without a policy.
	ErrNilPolicy = errors.New("nil scheduling policy")
)

// Engine is the core object that owns the process set, the ready queue,
// the simulation clock, and the time-stepped loop. One Engine simulates
// one processor executing one process per time unit.
//
// The engine exclusively owns its registered processes for the duration
// of a run; the ready queue and the current process hold non-owning
// references into that set. Runs are single-threaded and deterministic.
type Engine struct {
	// processes holds the registered set in registration order, which is
	// preserved for reporting across all policies.
	processes []*Process
	// admissionOrder is the traversal order for arrival admission. It is
	// a shallow copy of processes that the active policy may pre-sort
	// (FCFS pins it to strict arrival order) without disturbing the
	// registration order used in reports.
	admissionOrder []*Process
	readyQueue     *ReadyQueue
	current        *Process
	clock          int64
	// quantumLeft counts down the running process's time slice. Only
	// meaningful when the active policy grants a quantum.
	quantumLeft int64
	metrics     *Metrics
	traceLog    *trace.Log
	// completionOrder records PIDs in the order processes terminated.
	completionOrder []int
	// lastPolicy and lastQuantum describe the most recent run for Summary.
	lastPolicy  string
	lastQuantum int64
}

// NewEngine creates an engine with an empty process set.
func NewEngine(traceConfig trace.Config) *Engine {
	return &Engine{
		readyQueue: &ReadyQueue{},
		metrics:    NewMetrics(),
		traceLog:   trace.NewLog(traceConfig),
	}
}

// AddProcess registers a process with the engine. It returns false,
// leaving the set unchanged, if p is nil or a process with the same PID
// is already registered.
func (e *Engine) AddProcess(p *Process) bool {
	if p == nil {
		logrus.Warn("cannot add nil process to engine")
		return false
	}
	for _, existing := range e.processes {
		if existing.PID == p.PID {
			logrus.Warnf("process with PID %d already registered", p.PID)
			return false
		}
	}
	e.processes = append(e.processes, p)
	logrus.Debugf("registered %s", p)
	return true
}

// AddProcesses registers each process in order and returns how many were accepted.
func (e *Engine) AddProcesses(ps []*Process) int {
	added := 0
	for _, p := range ps {
		if e.AddProcess(p) {
			added++
		}
	}
	return added
}

// ProcessCount returns the number of registered processes.
func (e *Engine) ProcessCount() int {
	return len(e.processes)
}

// Processes returns the registered set in registration order. Callers
// must not mutate the processes while a run is in progress.
func (e *Engine) Processes() []*Process {
	return e.processes
}

// Metrics returns the aggregates of the most recent run.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

// Trace returns the execution trace of the most recent run as data.
// Empty when tracing is disabled.
func (e *Engine) Trace() []trace.Record {
	return e.traceLog.Records
}

// CompletionOrder returns PIDs in the order they terminated during the
// most recent run.
func (e *Engine) CompletionOrder() []int {
	return e.completionOrder
}

// ElapsedTime returns the final clock value of the most recent run.
func (e *Engine) ElapsedTime() int64 {
	return e.metrics.ElapsedTime
}

// validate checks the registered set before a run starts. No simulation
// state is mutated when validation fails.
func (e *Engine) validate() error {
	if len(e.processes) == 0 {
		return ErrEmptyProcessSet
	}
	for i, p := range e.processes {
		if p == nil {
			return fmt.Errorf("%w: nil process at index %d", ErrInvalidProcess, i)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d has non-positive burst time %d", ErrInvalidProcess, p.PID, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d has negative arrival time %d", ErrInvalidProcess, p.PID, p.ArrivalTime)
		}
	}
	return nil
}

// Run executes the time-stepped simulation loop under the given policy
// until every registered process terminates. All process state, metrics,
// the clock, and the trace are reset first, so repeated runs against the
// same process set compare policies from identical initial conditions.
func (e *Engine) Run(policy SchedulingPolicy) error {
	if policy == nil {
		return ErrNilPolicy
	}
	if err := e.validate(); err != nil {
		return err
	}

	e.reset(policy)
	logrus.Infof("starting %s run with %d processes (quantum=%d)",
		policy.Name(), len(e.processes), policy.Quantum())

	for {
		e.admitArrivals()
		e.dispatchDecision(policy)
		e.executeTick(policy)
		e.ageReadyProcesses()
		e.clock++

		if e.allTerminated() {
			break
		}
	}

	e.metrics.ElapsedTime = e.clock
	logrus.Infof("[tick %07d] %s run ended, %d processes completed",
		e.clock, policy.Name(), e.metrics.CompletedProcesses)
	return nil
}

// reset prepares the engine for a fresh run under the given policy.
func (e *Engine) reset(policy SchedulingPolicy) {
	for _, p := range e.processes {
		p.Reset()
	}
	e.readyQueue.Clear()
	e.current = nil
	e.clock = 0
	e.metrics.Reset()
	e.metrics.RegisteredProcesses = len(e.processes)
	e.traceLog.Reset()
	e.completionOrder = e.completionOrder[:0]

	e.admissionOrder = make([]*Process, len(e.processes))
	copy(e.admissionOrder, e.processes)
	policy.Prepare(e.admissionOrder)

	e.quantumLeft = policy.Quantum()
	e.lastPolicy = policy.Name()
	e.lastQuantum = policy.Quantum()
}

// admitArrivals moves every new process whose arrival time has been
// reached into the ready queue, in admission-order traversal. The order
// is stable for equal arrival times.
func (e *Engine) admitArrivals() {
	for _, p := range e.admissionOrder {
		if p.State == StateNew && p.ArrivalTime <= e.clock {
			p.State = StateReady
			e.readyQueue.Enqueue(p)
			e.traceLog.Append(trace.Record{Time: e.clock, PID: p.PID, Event: trace.EventArrived, Process: p.Name})
			logrus.Debugf("[tick %07d] process %d (%s) arrived", e.clock, p.PID, p.Name)
		}
	}
}

// dispatchDecision asks the policy for the next process when the CPU is
// idle or the running process's quantum is exhausted. A preempted
// process re-enters the ready queue at the tail before the new pick.
func (e *Engine) dispatchDecision(policy SchedulingPolicy) {
	quantum := policy.Quantum()
	quantumExpired := quantum > 0 && e.current != nil && e.quantumLeft <= 0

	if e.current != nil && !quantumExpired {
		return
	}

	if e.readyQueue.Len() == 0 {
		if quantumExpired {
			// No contender: the running process gets a fresh slice.
			e.quantumLeft = quantum
		}
		return
	}

	if quantumExpired && e.current.RemainingTime > 0 {
		preempted := e.current
		preempted.State = StateReady
		e.readyQueue.Enqueue(preempted)
		e.current = nil
		e.traceLog.Append(trace.Record{Time: e.clock, PID: preempted.PID, Event: trace.EventPreempted, Process: preempted.Name})
		logrus.Debugf("[tick %07d] process %d (%s) preempted", e.clock, preempted.PID, preempted.Name)
	}

	next := policy.SelectNext(e.readyQueue.Items(), quantumExpired)
	if next == nil {
		return
	}
	e.readyQueue.Remove(next)
	e.dispatch(next, quantum)
}

// dispatch transitions the chosen process to running and fixes its start
// and response time on first-ever dispatch.
func (e *Engine) dispatch(p *Process, quantum int64) {
	p.State = StateRunning
	e.current = p
	e.quantumLeft = quantum

	if !p.HasStarted {
		p.StartTime = e.clock
		p.ResponseTime = e.clock - p.ArrivalTime
		p.HasStarted = true
		e.traceLog.Append(trace.Record{Time: e.clock, PID: p.PID, Event: trace.EventStarted, Process: p.Name})
		logrus.Debugf("[tick %07d] process %d (%s) started", e.clock, p.PID, p.Name)
	} else {
		e.traceLog.Append(trace.Record{Time: e.clock, PID: p.PID, Event: trace.EventResumed, Process: p.Name})
		logrus.Debugf("[tick %07d] process %d (%s) resumed", e.clock, p.PID, p.Name)
	}
}

// executeTick runs the current process for exactly one time unit and
// finalizes it if its remaining time reaches zero. Completion is stamped
// at clock+1, the tick boundary inclusive of this unit.
func (e *Engine) executeTick(policy SchedulingPolicy) {
	if e.current == nil {
		return
	}

	e.current.RemainingTime--
	e.metrics.BusyTime++
	if policy.Quantum() > 0 {
		e.quantumLeft--
	}

	if e.current.RemainingTime < 0 {
		panic(fmt.Sprintf("process %d: remaining time went negative", e.current.PID))
	}

	if e.current.RemainingTime == 0 {
		completed := e.current
		completionTime := e.clock + 1
		completed.RecordCompletion(completionTime)
		e.metrics.recordCompletion(completed)
		e.completionOrder = append(e.completionOrder, completed.PID)
		e.traceLog.Append(trace.Record{Time: completionTime, PID: completed.PID, Event: trace.EventCompleted, Process: completed.Name})
		logrus.Debugf("[tick %07d] process %d (%s) completed", completionTime, completed.PID, completed.Name)
		e.current = nil
		e.quantumLeft = policy.Quantum()
	}
}

// ageReadyProcesses accrues one unit of waiting time for every process
// still in the ready state. This is the sole mechanism by which waiting
// time accumulates during a run.
func (e *Engine) ageReadyProcesses() {
	for _, p := range e.processes {
		if p.State == StateReady {
			p.WaitingTime++
		}
	}
}

// allTerminated reports whether every registered process has completed.
func (e *Engine) allTerminated() bool {
	for _, p := range e.processes {
		if p.State != StateTerminated {
			return false
		}
	}
	return true
}
