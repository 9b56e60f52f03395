package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/operator-framework/entail/internal/dimacs"
	"github.com/operator-framework/entail/pkg/entail"
	"github.com/operator-framework/entail/pkg/rules"
)

// config flags defined globally so that they appear on the test binary as well
var (
	input = pflag.StringP(
		"file", "f", "", "DIMACS CNF file holding the rule set; reads stdin if unset")

	determined = pflag.Bool(
		"determined", false, "report every variable already pinned to a fixed value by the rules")

	equal = pflag.Bool(
		"equal", false, "report every pair of variables forced to always share a truth value")

	model = pflag.Bool(
		"model", false, "report one witness model of the rule set")

	timeout = pflag.Duration(
		"timeout", 10*time.Second, "per-query solver budget, 0 to disable")

	debug = pflag.Bool(
		"debug", false, "use debug log level")
)

func main() {
	pflag.Parse()

	logger := logrus.New()
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := run(logger, os.Stdout); err != nil {
		logger.WithError(err).Fatal("entail failed")
	}
}

func run(logger *logrus.Logger, out io.Writer) error {
	var in io.Reader = os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			return errors.Wrap(err, "opening rule set")
		}
		defer f.Close()
		in = f
	}

	problem, err := dimacs.Parse(in)
	if err != nil {
		return errors.Wrap(err, "parsing rule set")
	}
	logger.WithFields(logrus.Fields{
		"variables": problem.Variables,
		"clauses":   len(problem.Clauses),
	}).Debug("rule set loaded")

	r, err := rules.New(problem.Clauses, rules.WithTimeout(*timeout))
	if err != nil {
		return errors.Wrap(err, "building rule set")
	}

	// With no report selected, behave like a plain consistency
	// checker and emit everything except the model.
	wantDetermined, wantEqual := *determined, *equal
	if !wantDetermined && !wantEqual && !*model {
		wantDetermined, wantEqual = true, true
	}

	if wantDetermined {
		lits, err := entail.DeterminedVars(r)
		if err != nil {
			return errors.Wrap(err, "finding determined variables")
		}
		for _, lit := range lits {
			fmt.Fprintf(out, "determined %d\n", lit)
		}
	}

	if wantEqual {
		pairs, err := entail.EqualVars(r)
		if err != nil {
			return errors.Wrap(err, "finding equivalent variables")
		}
		for _, pair := range pairs {
			fmt.Fprintf(out, "equal %d %d\n", pair[0], pair[1])
		}
	}

	if *model {
		m, ok, err := r.Model()
		if err != nil {
			return errors.Wrap(err, "finding model")
		}
		if !ok {
			return errors.New("no model found")
		}
		fmt.Fprintf(out, "model %s\n", formatModel(m))
	}

	return nil
}

func formatModel(model []int) string {
	s := make([]string, len(model))
	for i, lit := range model {
		s[i] = fmt.Sprintf("%d", lit)
	}
	return strings.Join(s, " ")
}
