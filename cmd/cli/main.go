package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path"
	"slices"

	"github.com/ducleh/Huy-Duc-Le-SAT/pkg/cover"
	"github.com/ducleh/Huy-Duc-Le-SAT/pkg/graph"
	"github.com/ducleh/Huy-Duc-Le-SAT/pkg/sat"
	"github.com/plan-systems/klog"
	"github.com/samber/lo"
)

const (
	exitUnknown            = 0
	exitSatisfiable        = 10
	exitVerificationFailed = 15
	exitUnsatisfiable      = 20
)

func main() {
	klog.InitFlags(flag.CommandLine)
	flag.Set("logtostderr", "true")
	// Define arguments
	cliquesPtr := flag.Int("k", 0, "Number of cliques for the clique cover problem (required)")
	inputPtr := flag.String("input", "input.in", "The instance file: one edge \"u v\" per line, '#' starts a comment")
	outputPtr := flag.String("output", "formula.cnf", "Output file for the DIMACS format (i.e. the CNF formula)")
	solverPtr := flag.String("solver", "./glucose", fmt.Sprintf("The SAT solver to be used: an executable path, a preset name from the config file or %q for the embedded solver", sat.GophersatName))
	modelFlagPtr := flag.String("model-flag", sat.DefaultModelFlag, "Flag passed to an external solver to request the model; empty for none")
	verbosePtr := flag.Int("verbose", 0, "Verbosity of the output: 1 echoes the solver's statistics")
	configPtr := flag.String("config", "", "JSON file with solver presets; defaults to config.json next to the executable when present")
	verticesPtr := flag.Int("vertices", 0, "Declare vertices 1..n, so that vertices without edges are covered as well")
	jsonPtr := flag.String("json", "", "Path to a file where the cliques will be written as JSON")
	verifyPtr := flag.Bool("verify", false, "Check that the cliques found are a clique cover of the graph")
	flag.Parse()
	defer klog.Flush()

	// Validate arguments
	if !flagsSet()["k"] {
		klog.Exitf("the number of cliques must be specified with -k")
	} else if *cliquesPtr < 1 {
		klog.Exitf("the number of cliques must be a positive integer: %v", *cliquesPtr)
	} else if *verbosePtr != 0 && *verbosePtr != 1 {
		klog.Exitf("verbosity must be 0 or 1: %v", *verbosePtr)
	} else if *verticesPtr < 0 {
		klog.Exitf("the number of declared vertices cannot be negative: %v", *verticesPtr)
	}

	// Load the input instance
	g, err := graph.LoadFile(*inputPtr)
	if err != nil {
		klog.Exitf("cannot load input instance: %v", err)
	}
	for vertex := 1; vertex <= *verticesPtr; vertex++ {
		g.AddVertex(vertex)
	}

	// Initialize engines
	config := loadSolverConfig(*configPtr)
	solver := sat.NewSATSolver(config.Runner(*solverPtr, *modelFlagPtr))
	coverer := cover.NewCliqueCoverer(solver)

	// Encode, solve and decode
	result, err := coverer.Build(g, *cliquesPtr, *outputPtr)
	if err != nil {
		klog.Exitf("an error occurred while solving the clique cover: %v", err)
	}
	klog.V(1).Infof("variables: %v, clauses: %v", result.Variables, result.Clauses)

	if *verbosePtr == 1 {
		for _, line := range result.Statistics {
			fmt.Println(line)
		}
	}

	switch result.Status {
	case sat.Unsatisfiable:
		fmt.Println("UNSATISFIABLE: No solution exists for the given instance")
		exit(exitUnsatisfiable)
	case sat.Unknown:
		fmt.Println("UNKNOWN: The solver did not report a result")
		exit(exitUnknown)
	}

	fmt.Println("SATISFIABLE: Solution found")
	printCliques(result.Partition)

	if *jsonPtr != "" {
		writeJson(*jsonPtr, result.Partition)
	}

	// Verify clique cover correctness
	if *verifyPtr && !coverer.Verify(g, result.Partition) {
		fmt.Println("VERIFICATION FAILED: The cliques are not a clique cover of the graph")
		exit(exitVerificationFailed)
	}
	exit(exitSatisfiable)
}

func printCliques(partition cover.Partition) {
	cliques := lo.Keys(partition)
	slices.Sort(cliques)
	for _, clique := range cliques {
		fmt.Printf("Clique %v: %v\n", clique, partition[clique])
	}
}

func writeJson(file string, partition cover.Partition) {
	partitionJson, err := json.Marshal(partition)
	if err != nil {
		klog.Exitf("an error occurred while building output json: %v", err)
	}
	if err := os.WriteFile(file, partitionJson, 0666); err != nil {
		klog.Exitf("an error occurred while writing to the json file: %v", err)
	}
}

func loadSolverConfig(file string) sat.Config {
	if file == "" {
		execPath, err := os.Executable()
		if err != nil {
			return sat.Config{}
		}
		file = path.Join(path.Dir(execPath), "config.json")
		if _, err := os.Stat(file); err != nil {
			return sat.Config{}
		}
	}

	config, err := sat.LoadConfig(file)
	if err != nil {
		klog.Exitf("cannot load solver config: %v", err)
	}
	return config
}

func flagsSet() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func exit(code int) {
	klog.Flush()
	os.Exit(code)
}
