// Tracks run-wide scheduling metrics such as total waiting, turnaround,
// and response time, CPU busy time, and completion counts.

package sim

// Metrics aggregates statistics about a single simulation run for final
// reporting. Sums accumulate as processes terminate; averages divide by
// the registered process count.
type Metrics struct {
	RegisteredProcesses int   // Number of processes in the run
	CompletedProcesses  int   // Number of processes that reached termination
	TotalWaitingTime    int64 // Sum of per-process waiting times
	TotalTurnaroundTime int64 // Sum of per-process turnaround times
	TotalResponseTime   int64 // Sum of per-process response times
	BusyTime            int64 // Ticks during which the CPU executed a process
	ElapsedTime         int64 // Final clock value of the run
}

// NewMetrics creates an empty Metrics ready for accumulation.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Reset clears all accumulated values for a fresh run.
func (m *Metrics) Reset() {
	*m = Metrics{}
}

// recordCompletion folds a terminated process into the run sums.
func (m *Metrics) recordCompletion(p *Process) {
	m.CompletedProcesses++
	m.TotalWaitingTime += p.WaitingTime
	m.TotalTurnaroundTime += p.TurnaroundTime
	m.TotalResponseTime += p.ResponseTime
}

// AverageWaitingTime returns the arithmetic mean waiting time across all
// registered processes, or 0 for an empty run.
func (m *Metrics) AverageWaitingTime() float64 {
	if m.RegisteredProcesses == 0 {
		return 0
	}
	return float64(m.TotalWaitingTime) / float64(m.RegisteredProcesses)
}

// AverageTurnaroundTime returns the mean turnaround time across all
// registered processes, or 0 for an empty run.
func (m *Metrics) AverageTurnaroundTime() float64 {
	if m.RegisteredProcesses == 0 {
		return 0
	}
	return float64(m.TotalTurnaroundTime) / float64(m.RegisteredProcesses)
}

// AverageResponseTime returns the mean response time across all
// registered processes, or 0 for an empty run.
func (m *Metrics) AverageResponseTime() float64 {
	if m.RegisteredProcesses == 0 {
		return 0
	}
	return float64(m.TotalResponseTime) / float64(m.RegisteredProcesses)
}

// CPUUtilization returns the fraction of elapsed time the CPU spent
// executing a process (0 when nothing ran).
func (m *Metrics) CPUUtilization() float64 {
	if m.ElapsedTime == 0 {
		return 0
	}
	return float64(m.BusyTime) / float64(m.ElapsedTime)
}

// Throughput returns completed processes per time unit.
func (m *Metrics) Throughput() float64 {
	if m.ElapsedTime == 0 {
		return 0
	}
	return float64(m.CompletedProcesses) / float64(m.ElapsedTime)
}
