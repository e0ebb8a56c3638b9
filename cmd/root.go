package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/sched-sim/sched-sim/sim"
	"github.com/sched-sim/sched-sim/sim/trace"
)

var (
	// CLI flags shared by the run and compare subcommands
	logLevel     string // Log verbosity level
	scenarioPath string // YAML scenario file (overrides the synthetic workload flags)
	policyName   string // Scheduling policy name
	quantum      int64  // Round-robin time slice
	traceLevel   string // Trace collection level (none, events)
	showTrace    bool   // Render the execution trace after the run

	// CLI flags for synthetic workload generation
	seed       int64 // Seed for random process generation
	numProcs   int   // Number of synthetic processes
	maxArrival int64 // Upper bound for generated arrival times
	minBurst   int64 // Lower bound for generated burst times
	maxBurst   int64 // Upper bound for generated burst times
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sched-sim",
	Short: "Discrete-time simulator for single-CPU process scheduling",
}

// setupLogging parses and applies the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// buildEngine assembles an engine and its process set from either the
// scenario file or the synthetic workload flags.
func buildEngine() (*sim.Engine, *sim.Scenario) {
	if !trace.IsValidLevel(traceLevel) {
		logrus.Fatalf("Invalid trace level: %s", traceLevel)
	}

	var scenario *sim.Scenario
	if scenarioPath != "" {
		loaded, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("unable to read scenario: %v", err)
		}
		if err := loaded.Validate(); err != nil {
			logrus.Fatalf("invalid scenario: %v", err)
		}
		scenario = loaded
	} else {
		scenario = &sim.Scenario{
			Policy:  policyName,
			Quantum: quantum,
			Trace:   traceLevel,
			Synthetic: &sim.SyntheticConfig{
				Count:      numProcs,
				MaxArrival: maxArrival,
				MinBurst:   minBurst,
				MaxBurst:   maxBurst,
				Seed:       seed,
			},
		}
		if err := scenario.Validate(); err != nil {
			logrus.Fatalf("invalid workload flags: %v", err)
		}
	}

	gen := sim.NewIDGenerator()
	processes, err := scenario.BuildProcesses(gen)
	if err != nil {
		logrus.Fatalf("unable to build process set: %v", err)
	}

	engine := sim.NewEngine(scenario.TraceConfig())
	added := engine.AddProcesses(processes)
	if added != len(processes) {
		logrus.Fatalf("only %d of %d processes registered", added, len(processes))
	}
	return engine, scenario
}

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation under one policy",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		engine, scenario := buildEngine()
		if !sim.IsValidPolicy(scenario.Policy) {
			logrus.Fatalf("unknown scheduling policy %q", scenario.Policy)
		}
		policy := sim.NewPolicy(scenario.Policy, scenario.Quantum)

		logrus.Infof("Starting %s simulation with %d processes", policy.Name(), engine.ProcessCount())
		if err := engine.Run(policy); err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		summary := engine.Summary()
		RenderSummary(os.Stdout, summary)
		if showTrace {
			RenderTrace(os.Stdout, summary.Trace)
		}

		logrus.Info("Simulation complete.")
	},
}

// compareCmd runs all four policies against the same process set
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all scheduling policies on one process set",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		engine, scenario := buildEngine()
		policies := make([]sim.SchedulingPolicy, 0, len(sim.PolicyNames))
		for _, name := range sim.PolicyNames {
			policies = append(policies, sim.NewPolicy(name, scenario.Quantum))
		}

		summaries, err := engine.Compare(policies...)
		if err != nil {
			logrus.Fatalf("comparison failed: %v", err)
		}

		for _, summary := range summaries {
			RenderSummary(os.Stdout, summary)
		}
		RenderComparison(os.Stdout, summaries)

		logrus.Info("Comparison complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, cmd := range []*cobra.Command{runCmd, compareCmd} {
		cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		cmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (overrides synthetic workload flags)")
		cmd.Flags().Int64Var(&quantum, "quantum", sim.DefaultQuantum, "Round-robin time slice")
		cmd.Flags().StringVar(&traceLevel, "trace", "events", "Trace collection level (none, events)")
		cmd.Flags().BoolVar(&showTrace, "show-trace", false, "Render the execution trace after each run")

		// Synthetic workload configuration
		cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random process generation")
		cmd.Flags().IntVar(&numProcs, "processes", 5, "Number of synthetic processes")
		cmd.Flags().Int64Var(&maxArrival, "max-arrival", 10, "Upper bound for generated arrival times")
		cmd.Flags().Int64Var(&minBurst, "min-burst", 1, "Lower bound for generated burst times")
		cmd.Flags().Int64Var(&maxBurst, "max-burst", 10, "Upper bound for generated burst times")
	}
	runCmd.Flags().StringVar(&policyName, "policy", "fcfs", "Scheduling policy (fcfs, sjf, round-robin, priority)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
