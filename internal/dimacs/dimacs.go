// Package dimacs reads CNF formulas in the DIMACS format into the raw
// clause matrix consumed by rules.New. gini ships its own DIMACS
// reader, but it parses straight into a solver handle; the facade
// needs the clauses themselves so it can assert them one at a time
// and report which one contradicts the rest.
package dimacs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Problem is a CNF formula read from a DIMACS stream.
type Problem struct {
	// Variables is the variable count declared by the problem
	// header. Clauses may reference fewer.
	Variables int
	Clauses   [][]int
}

// Parse reads a DIMACS CNF problem: 'c' comment lines, one
// 'p cnf <variables> <clauses>' header, then zero-terminated clauses
// which may span lines. A trailing '%' section is tolerated. The
// declared clause count is not enforced; the header's variable count
// is reported as-is.
func Parse(r io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var problem *Problem
	var clause []int
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		switch {
		case text == "" || strings.HasPrefix(text, "c"):
			continue
		case strings.HasPrefix(text, "%"):
			// Some generators emit a '%' trailer followed by
			// a lone zero.
			if problem == nil {
				return nil, errors.Errorf("line %d: missing problem header", line)
			}
			if len(clause) != 0 {
				return nil, errors.Errorf("line %d: unterminated clause", line)
			}
			return problem, nil
		case strings.HasPrefix(text, "p"):
			if problem != nil {
				return nil, errors.Errorf("line %d: duplicate problem header", line)
			}
			fields := strings.Fields(text)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, errors.Errorf("line %d: malformed problem header %q", line, text)
			}
			variables, err := strconv.Atoi(fields[2])
			if err != nil || variables < 0 {
				return nil, errors.Errorf("line %d: bad variable count %q", line, fields[2])
			}
			nclauses, err := strconv.Atoi(fields[3])
			if err != nil || nclauses < 0 {
				return nil, errors.Errorf("line %d: bad clause count %q", line, fields[3])
			}
			problem = &Problem{
				Variables: variables,
				Clauses:   make([][]int, 0, nclauses),
			}
		default:
			if problem == nil {
				return nil, errors.Errorf("line %d: clause before problem header", line)
			}
			for _, field := range strings.Fields(text) {
				lit, err := strconv.Atoi(field)
				if err != nil {
					return nil, errors.Wrapf(err, "line %d: literal %q", line, field)
				}
				if lit == 0 {
					if len(clause) == 0 {
						return nil, errors.Errorf("line %d: empty clause", line)
					}
					problem.Clauses = append(problem.Clauses, clause)
					clause = nil
					continue
				}
				clause = append(clause, lit)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading dimacs input")
	}
	if problem == nil {
		return nil, errors.New("missing problem header")
	}
	if len(clause) != 0 {
		return nil, errors.New("unterminated clause at end of input")
	}
	return problem, nil
}
