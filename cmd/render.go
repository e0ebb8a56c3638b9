// Console rendering of run summaries and execution traces. Kept out of
// the sim package so the engine stays free of output side effects.

package cmd

import (
	"fmt"
	"io"

	sim "github.com/sched-sim/sched-sim/sim"
	"github.com/sched-sim/sched-sim/sim/trace"
)

// RenderSummary writes the per-process metrics table and run-level
// aggregates for one completed run.
func RenderSummary(w io.Writer, s *sim.RunSummary) {
	header := fmt.Sprintf("=== %s Scheduling Results ===", s.Policy)
	if s.Quantum > 0 {
		header = fmt.Sprintf("=== %s Scheduling Results (quantum=%d) ===", s.Policy, s.Quantum)
	}
	fmt.Fprintln(w, header)

	fmt.Fprintf(w, "%5s %-12s %8s %8s %8s %8s %10s %12s %10s\n",
		"PID", "Name", "Priority", "Arrival", "Burst", "Start", "Waiting", "Turnaround", "Response")
	for _, p := range s.Processes {
		fmt.Fprintf(w, "%5d %-12s %8s %8d %8d %8d %10d %12d %10d\n",
			p.PID, p.Name, p.Priority, p.ArrivalTime, p.BurstTime, p.StartTime,
			p.WaitingTime, p.TurnaroundTime, p.ResponseTime)
	}

	fmt.Fprintf(w, "Average Waiting Time    : %.2f ticks\n", s.AverageWaitingTime)
	fmt.Fprintf(w, "Average Turnaround Time : %.2f ticks\n", s.AverageTurnaroundTime)
	fmt.Fprintf(w, "Average Response Time   : %.2f ticks\n", s.AverageResponseTime)
	fmt.Fprintf(w, "Total Elapsed Time      : %d ticks\n", s.ElapsedTime)
	fmt.Fprintf(w, "CPU Utilization         : %.2f%%\n", s.CPUUtilization*100)
	fmt.Fprintf(w, "Throughput              : %.4f processes/tick\n", s.Throughput)

	if len(s.CompletionOrder) > 0 {
		fmt.Fprintf(w, "Completion Order        : ")
		for i, pid := range s.CompletionOrder {
			if i > 0 {
				fmt.Fprintf(w, " -> ")
			}
			fmt.Fprintf(w, "%d", pid)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// RenderTrace writes the execution trace as one line per event.
func RenderTrace(w io.Writer, records []trace.Record) {
	fmt.Fprintln(w, "=== Execution Trace ===")
	for _, r := range records {
		fmt.Fprintf(w, "Time %4d: process %d (%s) %s\n", r.Time, r.PID, r.Process, r.Event)
	}
	fmt.Fprintln(w)
}

// RenderComparison writes a side-by-side aggregate table for a set of
// runs over the same process set.
func RenderComparison(w io.Writer, summaries []*sim.RunSummary) {
	fmt.Fprintln(w, "=== Policy Comparison ===")
	fmt.Fprintf(w, "%-14s %12s %14s %12s %10s\n",
		"Policy", "Avg Waiting", "Avg Turnaround", "Avg Response", "Elapsed")
	for _, s := range summaries {
		fmt.Fprintf(w, "%-14s %12.2f %14.2f %12.2f %10d\n",
			s.Policy, s.AverageWaitingTime, s.AverageTurnaroundTime, s.AverageResponseTime, s.ElapsedTime)
	}
	fmt.Fprintln(w)
}
