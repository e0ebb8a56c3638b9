// Package sim provides the core discrete-time CPU scheduling simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (new → ready → running → terminated) and metrics
//   - policy.go: The four interchangeable scheduling policies (FCFS, SJF, round-robin, priority)
//   - engine.go: The time-stepped loop, dispatch, preemption, and aging
//
// # Architecture
//
// The engine owns the registered process set; the ready queue and the
// current process are non-owning references into it. Policies are
// stateless selection strategies behind the SchedulingPolicy interface —
// they receive the ready set and return a choice. One Engine simulates
// one processor executing one process per time unit, fully
// deterministically and single-threaded.
//
// Execution traces are recorded as pure data in the sim/trace
// sub-package; rendering is left entirely to callers. Scenario files
// (config.go) and synthetic workload generation (workload.go, rng.go)
// feed process sets into the engine; Summary (summary.go) is the result
// surface after a run.
package sim
