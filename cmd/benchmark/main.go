package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ducleh/Huy-Duc-Le-SAT/pkg/graph"

	"github.com/samber/lo"
)

const (
	executablePath         = "../../bin/cliquecover"
	instancesDirectory     = "../../test/instances/"
	MB             float32 = 1024 * 1024
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	unknown
	verificationFailed
)

var resultTypes = map[ResultType]string{
	solved:             "solved",
	unsatisfiable:      "unsatisfiable",
	unknown:            "unknown",
	verificationFailed: "verification failed",
}

type TestMetadata struct {
	Name     string
	Vertices int
	Edges    int
}

type BenchmarkResult struct {
	Solver        string
	Cliques       int
	Test          TestMetadata
	Variables     int64
	Clauses       int64
	Duration      int64
	Memory        float32
	CpuPercentage int64
	Result        ResultType
}

func main() {
	tests := getTests()
	solvers := getSolvers()
	results := make([]BenchmarkResult, 0)

	for _, test := range tests {
		for _, cliques := range getCliques(test) {
			for _, solver := range solvers {
				fmt.Printf("Benchmarking test \"%v\" with %v cliques and solver \"%v\"\n", test.Name, cliques, solver)

				result := measure(solver, cliques, test.Name)
				result.Test = test
				results = append(results, result)
			}
		}
	}

	toCsv(results)
}

func getTests() []TestMetadata {
	testFiles, err := os.ReadDir(instancesDirectory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	return lo.Map(testFiles, func(file os.DirEntry, _ int) TestMetadata {
		filename := instancesDirectory + file.Name()
		g, err := graph.LoadFile(filename)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
		return TestMetadata{
			Name:     filename,
			Vertices: g.Order(),
			Edges:    len(g.Edges()),
		}
	})
}

func getSolvers() []string {
	return []string{"gophersat", "glucose", "kissat", "cadical"}
}

// Every k from 1 up to the number of vertices, capped so that large instances stay tractable
func getCliques(test TestMetadata) []int {
	return lo.RangeFrom(1, min(test.Vertices, 8))
}

func measure(solver string, cliques int, testFile string) BenchmarkResult {
	formula := filepath.Join(os.TempDir(), "benchmark-formula.cnf")
	cmd := exec.Command("/usr/bin/time", "-v", executablePath, "-k", fmt.Sprint(cliques), "-solver", solver, "-input", testFile, "-output", formula, "-verify", "-v", "1")

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()
	result := BenchmarkResult{Solver: solver, Cliques: cliques}
	resultType, ok := resultFromExitCode(cmd.ProcessState.ExitCode())
	if !ok {
		log.Fatalf("an error occurred during the execution of \"cliquecover\" at test \"%v\" using solver \"%v\" and %v cliques: %v\n", testFile, solver, cliques, stdErr.String())
	}
	result.Result = resultType

	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	result.Variables, result.Clauses = parseSizeLine(getLine("variables:"))
	result.Duration = parseDurationLine(getLine("wall clock"))
	result.Memory = parseMemoryLine(getLine("maximum resident set size"))
	result.CpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))
	return result
}

// Exit-codes of the CLI: 10 satisfiable, 20 unsatisfiable, 15 failed verification and 0 unknown
func resultFromExitCode(exitCode int) (ResultType, bool) {
	switch exitCode {
	case 10:
		return solved, true
	case 20:
		return unsatisfiable, true
	case 15:
		return verificationFailed, true
	case 0:
		return unknown, true
	default:
		return unknown, false
	}
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Solver", "Cliques", "Test", "Vertices", "Edges", "Variables", "Clauses", "Duration(ms)", "Memory(MB)", "CPU(%)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			result.Solver,
			fmt.Sprintf("%d", result.Cliques),
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Vertices),
			fmt.Sprintf("%d", result.Test.Edges),
			fmt.Sprintf("%d", result.Variables),
			fmt.Sprintf("%d", result.Clauses),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			fmt.Sprintf("%d", result.CpuPercentage),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

// The CLI logs "variables: <n>, clauses: <m>" at verbosity 1
func parseSizeLine(line string) (variables int64, clauses int64) {
	line = line[strings.Index(line, "variables:"):]
	_, err := fmt.Sscanf(line, "variables: %d, clauses: %d", &variables, &clauses)
	if err != nil {
		log.Fatalf("unexpected size format: %v", line)
	}
	return variables, clauses
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

func parseMemoryLine(line string) float32 {
	memoryStr := strings.Split(line, ":")[1][1:]
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) * 1024 / MB
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.Split(line, ":")[1][1:]
	percentageStr = percentageStr[:len(percentageStr)-1]
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
