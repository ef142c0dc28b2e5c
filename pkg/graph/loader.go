package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

const commentMarker = "#"

var errNonPositiveVertex = errors.New("vertex ids must be positive")

// edgeLine is the grammar of a single non-comment input line: exactly two decimal integers.
// Values are captured as text and converted in base 10, so "010" is vertex 10
type edgeLine struct {
	U string `parser:"@Int"`
	V string `parser:"@Int"`
}

// Only digits and blanks are tokens, anything else (signs, prefixes, separators, comments) fails to lex
var edgeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var parseEdgeLine = participle.MustBuild[edgeLine](
	participle.Lexer(edgeLexer),
	participle.Elide("Whitespace"),
)

// ParseError reports an input line that is not made of exactly two positive integers
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (err ParseError) Error() string {
	return fmt.Sprintf("line %d: cannot parse edge %q: %v", err.Line, err.Text, err.Err)
}

func (err ParseError) Unwrap() error {
	return err.Err
}

// LoadFile reads an edge list from the given file
func LoadFile(file string) (*Graph, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads an edge list, one "u v" pair per line. Blank lines and lines starting with '#' are skipped
func Load(reader io.Reader) (*Graph, error) {
	g := New()
	scanner := bufio.NewScanner(reader)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}

		u, v, err := parseEdge(line)
		if err != nil {
			return nil, ParseError{Line: lineNumber, Text: line, Err: err}
		}

		g.AddEdge(u, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return g, nil
}

func parseEdge(line string) (u, v int, err error) {
	edge, err := parseEdgeLine.ParseString("", line)
	if err != nil {
		return 0, 0, err
	}
	if u, err = strconv.Atoi(edge.U); err != nil {
		return 0, 0, err
	}
	if v, err = strconv.Atoi(edge.V); err != nil {
		return 0, 0, err
	}
	if u < 1 || v < 1 {
		return 0, 0, errNonPositiveVertex
	}
	return u, v, nil
}
