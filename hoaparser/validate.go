package hoaparser

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the document violates the format.
	Error Severity = iota
	// Warning means the document parses but downstream tools may misbehave.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "dangling_successor")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	State    int      // related state index, -1 when not applicable
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.State >= 0 {
		fmt.Fprintf(&b, " (state: %d)", d.State)
	}
	return b.String()
}

// LintRule is the interface for a single validation rule.
type LintRule interface {
	Name() string
	Apply(doc *Document) []Diagnostic
}

// ValidationError is returned by ValidateOrError when error-severity
// diagnostics exist.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs all built-in rules (and any extra rules) against a parsed
// document. Returns all diagnostics regardless of severity. Parsing itself
// never applies these checks; callers opt in.
func Validate(doc *Document, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(doc)...)
	}
	return diagnostics
}

// ValidateOrError runs Validate and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func ValidateOrError(doc *Document, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(doc, extraRules...)

	var errors []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errors = append(errors, d)
		}
	}
	if len(errors) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errors}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		duplicateStateRule{},
		danglingSuccessorRule{},
		stateCountRule{},
		singletonHeaderRule{},
	}
}

// duplicate_state: no two state records may carry the same index.
type duplicateStateRule struct{}

func (duplicateStateRule) Name() string { return "duplicate_state" }

func (duplicateStateRule) Apply(doc *Document) []Diagnostic {
	seen := make(map[int]bool, len(doc.States))
	var diags []Diagnostic
	for _, st := range doc.States {
		if seen[st.Index] {
			diags = append(diags, Diagnostic{
				Rule:     "duplicate_state",
				Severity: Error,
				Message:  fmt.Sprintf("state %d has more than one record", st.Index),
				State:    st.Index,
			})
		}
		seen[st.Index] = true
	}
	return diags
}

// dangling_successor: edge successors should reference a state record.
// The parser deliberately allows these, so this is a warning.
type danglingSuccessorRule struct{}

func (danglingSuccessorRule) Name() string { return "dangling_successor" }

func (danglingSuccessorRule) Apply(doc *Document) []Diagnostic {
	declared := make(map[int]bool, len(doc.States))
	for _, st := range doc.States {
		declared[st.Index] = true
	}

	var diags []Diagnostic
	for _, st := range doc.States {
		for _, e := range st.Edges {
			for _, succ := range e.Successors {
				if !declared[succ] {
					diags = append(diags, Diagnostic{
						Rule:     "dangling_successor",
						Severity: Warning,
						Message:  fmt.Sprintf("edge references successor %d with no state record", succ),
						State:    st.Index,
					})
				}
			}
		}
	}
	return diags
}

// state_count: state record and start indices should lie below the declared
// States: count.
type stateCountRule struct{}

func (stateCountRule) Name() string { return "state_count" }

func (stateCountRule) Apply(doc *Document) []Diagnostic {
	count, ok := doc.NumStates()
	if !ok {
		return nil
	}

	var diags []Diagnostic
	for _, st := range doc.States {
		if st.Index >= count {
			diags = append(diags, Diagnostic{
				Rule:     "state_count",
				Severity: Warning,
				Message:  fmt.Sprintf("state record %d exceeds declared state count %d", st.Index, count),
				State:    st.Index,
			})
		}
	}
	for _, s := range doc.StartStates() {
		if s >= count {
			diags = append(diags, Diagnostic{
				Rule:     "state_count",
				Severity: Warning,
				Message:  fmt.Sprintf("start state %d exceeds declared state count %d", s, count),
				State:    s,
			})
		}
	}
	return diags
}

// singleton_header: States:, AP:, and Acceptance: are meaningful at most
// once. Repeats parse (later AP counts reset validation state) but almost
// always indicate a generator bug.
type singletonHeaderRule struct{}

func (singletonHeaderRule) Name() string { return "singleton_header" }

func (singletonHeaderRule) Apply(doc *Document) []Diagnostic {
	counts := make(map[string]int)
	for _, item := range doc.Header {
		switch item.(type) {
		case HeaderStates:
			counts["States"]++
		case HeaderAP:
			counts["AP"]++
		case HeaderAcceptance:
			counts["Acceptance"]++
		}
	}

	var diags []Diagnostic
	for _, name := range []string{"States", "AP", "Acceptance"} {
		if counts[name] > 1 {
			diags = append(diags, Diagnostic{
				Rule:     "singleton_header",
				Severity: Warning,
				Message:  fmt.Sprintf("header %s: appears %d times; expected at most once", name, counts[name]),
				State:    -1,
			})
		}
	}
	return diags
}
