package sat

import (
	"fmt"
	"os"
	"strings"

	"github.com/crillab/gophersat/solver"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// GophersatName is the preset name of the embedded solver
const GophersatName = "gophersat"

type gophersatRunner struct{}

// NewGophersatRunner solves in-process with gophersat. It reads the formula back from disk and answers
// with the same textual conventions as an external solver, so its output goes through ParseOutput as well
func NewGophersatRunner() Runner {
	return &gophersatRunner{}
}

func (runner *gophersatRunner) Run(formulaPath string) (string, error) {
	file, err := os.Open(formulaPath)
	if err != nil {
		return "", errors.Wrapf(err, "cannot open CNF file %q", formulaPath)
	}
	defer file.Close()

	instance, err := ReadDIMACS(file)
	if err != nil {
		return "", errors.Wrapf(err, "cannot parse CNF file %q", formulaPath)
	}

	var builder strings.Builder
	builder.WriteString("c gophersat embedded solver\n")
	fmt.Fprintf(&builder, "c variables: %d\n", instance.Variables)
	fmt.Fprintf(&builder, "c clauses: %d\n", len(instance.Clauses))

	// Nothing to search for, any assignment is a model
	if len(instance.Clauses) == 0 {
		builder.WriteString("s SATISFIABLE\n")
		writeValues(&builder, make([]bool, instance.Variables))
		return builder.String(), nil
	}

	problem := solver.ParseSlice(lo.Map(instance.Clauses, func(clause []int64, _ int) []int {
		return lo.Map(clause, func(literal int64, _ int) int { return int(literal) })
	}))
	s := solver.New(problem)
	status := s.Solve()

	fmt.Fprintf(&builder, "c conflicts: %d\n", s.Stats.NbConflicts)
	fmt.Fprintf(&builder, "c decisions: %d\n", s.Stats.NbDecisions)
	fmt.Fprintf(&builder, "c restarts: %d\n", s.Stats.NbRestarts)

	switch status {
	case solver.Sat:
		builder.WriteString("s SATISFIABLE\n")
		// Variables absent from every clause are unconstrained, report them as false
		values := make([]bool, max(instance.Variables, uint64(problem.NbVars)))
		copy(values, s.Model())
		writeValues(&builder, values)
	case solver.Unsat:
		builder.WriteString("s UNSATISFIABLE\n")
	default:
		builder.WriteString("s UNKNOWN\n")
	}
	return builder.String(), nil
}

func writeValues(builder *strings.Builder, values []bool) {
	builder.WriteString("v")
	for i, value := range values {
		literal := i + 1
		if !value {
			literal = -literal
		}
		fmt.Fprintf(builder, " %d", literal)
	}
	builder.WriteString(" 0\n")
}
