package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sched-sim/sched-sim/sim/trace"
)

// ProcessSpec is one process descriptor in a scenario file.
type ProcessSpec struct {
	Name     string `yaml:"name"`
	Arrival  int64  `yaml:"arrival"`
	Burst    int64  `yaml:"burst"`
	Priority string `yaml:"priority"` // high, medium (default), or low
}

// Scenario holds a complete simulation setup, loadable from a YAML file:
// the policy selection, its parameters, and the process set, either as
// explicit descriptors or as a synthetic generation spec (or both).
type Scenario struct {
	Policy    string           `yaml:"policy"`
	Quantum   int64            `yaml:"quantum"` // round-robin only; 0 = DefaultQuantum
	Trace     string           `yaml:"trace"`   // "events" (default) or "none"
	Processes []ProcessSpec    `yaml:"processes"`
	Synthetic *SyntheticConfig `yaml:"synthetic,omitempty"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &scenario, nil
}

// Validate checks that all names and parameter ranges in the scenario are valid.
func (s *Scenario) Validate() error {
	if !IsValidPolicy(s.Policy) {
		return fmt.Errorf("unknown scheduling policy %q", s.Policy)
	}
	if !trace.IsValidLevel(s.Trace) {
		return fmt.Errorf("unknown trace level %q", s.Trace)
	}
	if s.Quantum < 0 {
		return fmt.Errorf("quantum must be non-negative, got %d", s.Quantum)
	}
	if len(s.Processes) == 0 && s.Synthetic == nil {
		return fmt.Errorf("scenario defines no processes and no synthetic workload")
	}
	for i, spec := range s.Processes {
		if _, err := ParsePriority(spec.Priority); err != nil {
			return fmt.Errorf("process %d (%q): %w", i, spec.Name, err)
		}
	}
	if s.Synthetic != nil {
		if err := s.Synthetic.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TraceConfig returns the trace configuration the scenario asks for.
// Empty level defaults to events.
func (s *Scenario) TraceConfig() trace.Config {
	level := trace.Level(s.Trace)
	if level == "" {
		level = trace.LevelEvents
	}
	return trace.Config{Level: level}
}

// BuildProcesses constructs the scenario's process set: explicit
// descriptors first, in file order, then any synthetic processes.
// PIDs are drawn from gen in that order.
func (s *Scenario) BuildProcesses(gen *IDGenerator) ([]*Process, error) {
	processes := make([]*Process, 0, len(s.Processes))
	for i, spec := range s.Processes {
		priority, err := ParsePriority(spec.Priority)
		if err != nil {
			return nil, fmt.Errorf("process %d (%q): %w", i, spec.Name, err)
		}
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("P%d", i+1)
		}
		processes = append(processes, NewProcess(gen, name, spec.Arrival, spec.Burst, priority))
	}
	if s.Synthetic != nil {
		generated, err := GenerateProcesses(s.Synthetic, gen)
		if err != nil {
			return nil, err
		}
		processes = append(processes, generated...)
	}
	return processes, nil
}
