package sat

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Runner runs a SAT solver on a DIMACS file and returns the solver's standard output
type Runner interface {
	Run(formulaPath string) (string, error)
}

type SATSolver interface {
	// Writes the instance to formulaPath in DIMACS format, runs the solver on it and parses its output.
	// Unsatisfiable and unknown results are valid outcomes where error shall be nil
	Solve(sat SAT, formulaPath string) (Outcome, error)
}

func NewSATSolver(runner Runner) SATSolver {
	return &gatewaySolver{
		runner: runner,
	}
}

type gatewaySolver struct {
	runner Runner
}

func (solver *gatewaySolver) Solve(sat SAT, formulaPath string) (Outcome, error) {
	// The file must be complete and closed before the solver opens it
	if err := sat.WriteDIMACS(formulaPath); err != nil {
		return Outcome{}, err
	}
	klog.V(2).Infof("wrote %d variables and %d clauses to %s", sat.Variables, len(sat.Clauses), formulaPath)

	output, err := solver.runner.Run(formulaPath)
	if err != nil {
		return Outcome{}, errors.Wrap(err, "solver run failed")
	}

	outcome := ParseOutput(output)
	klog.V(2).Infof("solver reported %v with %d model values", outcome.Status, len(outcome.Model))
	return outcome, nil
}
