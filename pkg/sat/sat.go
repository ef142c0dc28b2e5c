package sat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SATSolution is a model given as signed literals, at most one per variable
type SATSolution []int64

// SAT is a CNF formula. The clause count is len(Clauses)
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// WriteDIMACS writes the formula to file and closes it before returning, so the file is complete once
// the call succeeds. The file is left on disk
func (s SAT) WriteDIMACS(file string) error {
	f, err := os.Create(file)
	if err != nil {
		return errors.Wrapf(err, "cannot create CNF file %q", file)
	}

	if _, err := f.WriteString(s.ToDIMACS()); err != nil {
		f.Close()
		return errors.Wrapf(err, "cannot write CNF file %q", file)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "cannot close CNF file %q", file)
	}
	return nil
}

// ReadDIMACS parses a DIMACS CNF text. Comment lines and the "%" end marker some benchmarks carry are skipped
func ReadDIMACS(reader io.Reader) (SAT, error) {
	var sat SAT
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	clause := make([]int64, 0)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip comments
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "%") {
			continue
		}
		// Problem line
		if strings.HasPrefix(line, "p cnf") {
			parts := strings.Fields(line)
			if len(parts) != 4 {
				return SAT{}, fmt.Errorf("invalid problem line: %s", line)
			}
			vars, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid variable count: %w", err)
			}
			sat.Variables = vars
			continue
		}
		// Clause line, a clause may span several lines and ends at 0
		for _, litStr := range strings.Fields(line) {
			lit, err := strconv.ParseInt(litStr, 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid literal '%s': %w", litStr, err)
			}
			if lit == 0 {
				sat.Clauses = append(sat.Clauses, clause)
				clause = make([]int64, 0)
				continue
			}
			if uint64(max(lit, -lit)) > sat.Variables {
				return SAT{}, fmt.Errorf("literal %d exceeds declared variable count %d", lit, sat.Variables)
			}
			clause = append(clause, lit)
		}
	}

	if err := scanner.Err(); err != nil {
		return SAT{}, fmt.Errorf("error reading DIMACS: %w", err)
	} else if len(clause) > 0 {
		return SAT{}, fmt.Errorf("unterminated clause at end of input")
	}
	return sat, nil
}
