package sim

import "github.com/sched-sim/sched-sim/sim/trace"

// ProcessReport is the per-process metrics row exposed to the display
// layer after a run.
type ProcessReport struct {
	PID            int
	Name           string
	Priority       Priority
	ArrivalTime    int64
	BurstTime      int64
	StartTime      int64
	WaitingTime    int64
	TurnaroundTime int64
	ResponseTime   int64
	State          ProcessState
}

// RunSummary captures everything a caller needs to render a completed
// run: the per-process metrics table in registration order, run-level
// aggregates, the completion order, and the execution trace.
type RunSummary struct {
	Policy  string
	Quantum int64 // 0 for policies without time slicing

	ElapsedTime           int64
	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	AverageResponseTime   float64
	CPUUtilization        float64
	Throughput            float64

	Processes       []ProcessReport
	CompletionOrder []int
	Trace           []trace.Record
}

// Summary assembles a RunSummary from the engine's most recent run.
// The trace slice is copied so the summary stays valid across later runs.
func (e *Engine) Summary() *RunSummary {
	reports := make([]ProcessReport, len(e.processes))
	for i, p := range e.processes {
		reports[i] = ProcessReport{
			PID:            p.PID,
			Name:           p.Name,
			Priority:       p.Priority,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			StartTime:      p.StartTime,
			WaitingTime:    p.WaitingTime,
			TurnaroundTime: p.TurnaroundTime,
			ResponseTime:   p.ResponseTime,
			State:          p.State,
		}
	}

	completionOrder := make([]int, len(e.completionOrder))
	copy(completionOrder, e.completionOrder)
	traceRecords := make([]trace.Record, len(e.traceLog.Records))
	copy(traceRecords, e.traceLog.Records)

	return &RunSummary{
		Policy:                e.lastPolicy,
		Quantum:               e.lastQuantum,
		ElapsedTime:           e.metrics.ElapsedTime,
		AverageWaitingTime:    e.metrics.AverageWaitingTime(),
		AverageTurnaroundTime: e.metrics.AverageTurnaroundTime(),
		AverageResponseTime:   e.metrics.AverageResponseTime(),
		CPUUtilization:        e.metrics.CPUUtilization(),
		Throughput:            e.metrics.Throughput(),
		Processes:             reports,
		CompletionOrder:       completionOrder,
		Trace:                 traceRecords,
	}
}

// Compare runs each policy in turn against the engine's process set and
// collects one summary per policy. Run resets all process state between
// policies, so every policy sees identical initial conditions.
func (e *Engine) Compare(policies ...SchedulingPolicy) ([]*RunSummary, error) {
	summaries := make([]*RunSummary, 0, len(policies))
	for _, policy := range policies {
		if err := e.Run(policy); err != nil {
			return nil, err
		}
		summaries = append(summaries, e.Summary())
	}
	return summaries, nil
}
