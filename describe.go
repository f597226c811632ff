package verdict

import (
	"strings"
)

// HelpArg is one structured argument of an expectation description: a type
// name, a list of type names, an exact message, or predicate help text. The
// set of implementations is closed; describeExpectation renders each kind
// with its own styling.
type HelpArg interface {
	isHelpArg()
}

// TypeName names a single error kind.
type TypeName struct {
	Name string
}

func (TypeName) isHelpArg() {}

// TypeNameList names a non-empty set of error kinds, rendered joined with the
// localized "or" connector.
type TypeNameList struct {
	Names []string
}

func (TypeNameList) isHelpArg() {}

// ExactMessage is an exact expected error message, rendered quoted.
type ExactMessage struct {
	Text string
}

func (ExactMessage) isHelpArg() {}

// PredicateHelp is the prose description of a message predicate.
type PredicateHelp struct {
	Text string
}

func (PredicateHelp) isHelpArg() {}

func newTypeNameList(names []string) TypeNameList {
	if len(names) == 0 {
		panic("verdict: type name list must not be empty")
	}
	for _, n := range names {
		if n == "" {
			panic("verdict: type name list must not contain empty names")
		}
	}
	return TypeNameList{Names: names}
}

// describeExpectation renders one expectation sentence: the catalog template
// for key applied to the rendered args, type information green, exact
// messages quoted.
func describeExpectation(cfg *Config, key string, args ...HelpArg) string {
	rendered := make([]any, 0, len(args))
	for _, a := range args {
		switch arg := a.(type) {
		case TypeName:
			rendered = append(rendered, cfg.green(arg.Name))
		case TypeNameList:
			colored := make([]string, len(arg.Names))
			for i, n := range arg.Names {
				colored[i] = cfg.green(n)
			}
			rendered = append(rendered, strings.Join(colored, cfg.msg("connector.or")))
		case ExactMessage:
			rendered = append(rendered, cfg.green(quoted(arg.Text)))
		case PredicateHelp:
			rendered = append(rendered, cfg.green(arg.Text))
		}
	}
	return cfg.msg(key, rendered...)
}
