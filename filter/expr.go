package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/s0up4200/fffdata/fff"
)

// Filter is a compiled boolean expression bound to one entity kind.
// A Filter is safe for concurrent use.
type Filter struct {
	expression string
	kind       Kind
	program    *vm.Program
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if cache, err := lru.New[string, *Filter](size); err == nil {
			c.cache = cache
		}
	}
}

// Compiler compiles expressions into filters
type Compiler struct {
	cache *lru.Cache[string, *Filter]
}

// NewCompiler creates a new expr-based filter compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles an expression for the given entity kind.
//
// The expression must evaluate to a boolean. Unknown identifiers and type
// mismatches are reported here, not at evaluation time.
func (c *Compiler) Compile(kind Kind, expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Kind:       kind,
			Reason:     "empty expression",
		}
	}

	key := kind.String() + "\x00" + expression
	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(envFor(kind, nil)),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Kind:       kind,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{
		expression: expression,
		kind:       kind,
		program:    program,
	}

	if c.cache != nil {
		c.cache.Add(key, f)
	}

	return f, nil
}

// Compile compiles an expression without caching
func Compile(kind Kind, expression string) (*Filter, error) {
	return NewCompiler().Compile(kind, expression)
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Kind returns the entity kind the filter was compiled for
func (f *Filter) Kind() Kind {
	return f.kind
}

// Match evaluates the filter against a match
func (f *Filter) Match(m *fff.Match) (bool, error) {
	if f.kind != KindMatch {
		return false, &EvaluationError{Expression: f.expression, Subject: "match", Reason: "filter compiled for " + f.kind.String()}
	}
	return f.run(matchEnv(m), m.String())
}

// Club evaluates the filter against a club
func (f *Filter) Club(c *fff.Club) (bool, error) {
	if f.kind != KindClub {
		return false, &EvaluationError{Expression: f.expression, Subject: "club", Reason: "filter compiled for " + f.kind.String()}
	}
	return f.run(clubEnv(c), c.String())
}

func (f *Filter) run(env map[string]any, subject string) (bool, error) {
	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Subject:    subject,
			Reason:     "failed to run expression",
			Err:        err,
		}
	}

	b, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Subject:    subject,
			Reason:     fmt.Sprintf("expression returned %T, not bool", result),
		}
	}
	return b, nil
}

// SelectMatches returns the matches the filter accepts, in order. Nil
// entries are skipped.
func (f *Filter) SelectMatches(matches []*fff.Match) ([]*fff.Match, error) {
	out := make([]*fff.Match, 0, len(matches))
	for _, m := range matches {
		if m == nil {
			continue
		}
		ok, err := f.Match(m)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// SelectClubs returns the clubs the filter accepts, in order. Nil entries
// are skipped.
func (f *Filter) SelectClubs(clubs []*fff.Club) ([]*fff.Club, error) {
	out := make([]*fff.Club, 0, len(clubs))
	for _, c := range clubs {
		if c == nil {
			continue
		}
		ok, err := f.Club(c)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}
