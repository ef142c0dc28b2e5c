package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, int64(60*1000+1000+120), parseDuration("00:01:01.12"))
	assert.Equal(t, int64(60*60*1000+60*1000+1000+120), parseDuration("01:01:01.12"))
	assert.Equal(t, int64(60*1000+1000+120), parseDuration("1:01.12"))
	assert.Equal(t, int64(120), parseDuration("0:00.12"))
	assert.Equal(t, int64(120), parseDuration("00:00:00.12"))
}

func TestParseSizeLine(t *testing.T) {
	variables, clauses := parseSizeLine("I1018 10:00:00.000000   42 main.go:71] variables: 12, clauses: 40")

	assert.Equal(t, int64(12), variables)
	assert.Equal(t, int64(40), clauses)
}

func TestParseMemoryLine(t *testing.T) {
	assert.Equal(t, float32(2), parseMemoryLine("\tMaximum resident set size (kbytes): 2048"))
}

func TestParseCpuPercentageLine(t *testing.T) {
	assert.Equal(t, int64(97), parseCpuPercentageLine("\tPercent of CPU this job got: 97%"))
}

func TestGetCliques(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, getCliques(TestMetadata{Vertices: 3}))
	assert.Len(t, getCliques(TestMetadata{Vertices: 50}), 8)
}

func TestResultFromExitCode(t *testing.T) {
	for exitCode, expected := range map[int]ResultType{10: solved, 20: unsatisfiable, 15: verificationFailed, 0: unknown} {
		result, ok := resultFromExitCode(exitCode)
		assert.True(t, ok)
		assert.Equal(t, expected, result)
	}

	_, ok := resultFromExitCode(1)
	assert.False(t, ok)
}
