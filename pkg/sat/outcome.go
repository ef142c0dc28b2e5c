package sat

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	commentPrefix = "c "
	statusPrefix  = "s "
	valuesPrefix  = "v "
)

type Status int

const (
	Unknown Status = iota
	Satisfiable
	Unsatisfiable
)

func (status Status) String() string {
	switch status {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Outcome is what a solver run reported. Model is nil unless Status is Satisfiable and the solver printed
// at least one value line; it may cover only part of the variables
type Outcome struct {
	Status     Status
	Model      SATSolution
	Statistics []string
}

// ParseOutput reads a solver's standard output in the DIMACS output convention:
// "c " lines are statistics, an "s " line is the status and "v " lines carry the model.
// Value lines are merged in order, zero terminators are dropped and, for a repeated variable, the last value wins.
// A value line containing anything other than integers is ignored, as is any line with an unknown prefix
func ParseOutput(solverOutput string) Outcome {
	outcome := Outcome{
		Status:     Unknown,
		Statistics: make([]string, 0),
	}

	statusFound, modelFound := false, false
	values := make([]int64, 0)
	for _, line := range strings.Split(solverOutput, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, commentPrefix):
			outcome.Statistics = append(outcome.Statistics, line[len(commentPrefix):])
		case strings.HasPrefix(line, statusPrefix):
			outcome.Status = parseStatus(line)
			statusFound = true
		case strings.HasPrefix(line, valuesPrefix):
			literals, ok := parseValues(line[len(valuesPrefix):])
			if !ok {
				continue
			}
			values = append(values, literals...)
			modelFound = true
		}
	}

	// A model without status line still means the solver found one
	if !statusFound && modelFound {
		outcome.Status = Satisfiable
	}
	if outcome.Status == Satisfiable && modelFound {
		outcome.Model = lastValuePerVariable(values)
	}
	return outcome
}

func parseStatus(line string) Status {
	keyword := strings.ToUpper(line[len(statusPrefix):])
	switch {
	case strings.Contains(keyword, "UNSATISFIABLE"):
		return Unsatisfiable
	case strings.Contains(keyword, "UNKNOWN"), strings.Contains(keyword, "INDETERMINATE"):
		return Unknown
	default:
		return Satisfiable
	}
}

func parseValues(line string) ([]int64, bool) {
	fields := strings.Fields(line)
	literals := make([]int64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, false
		}
		literals = append(literals, value)
	}
	return lo.Filter(literals, func(literal int64, _ int) bool { return literal != 0 }), true
}

func lastValuePerVariable(values []int64) SATSolution {
	positions := make(map[int64]int)
	model := make(SATSolution, 0, len(values))
	for _, literal := range values {
		variable := max(literal, -literal)
		if position, ok := positions[variable]; ok {
			model[position] = literal
			continue
		}
		positions[variable] = len(model)
		model = append(model, literal)
	}
	return model
}
