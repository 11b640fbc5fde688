package filter

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Manager holds named filter expressions, typically loaded from the
// configuration file, and compiles them on demand for a given kind.
// Names are case-insensitive and stored lowercased, the way viper reports
// map keys.
type Manager struct {
	compiler *Compiler
	filters  map[string]string
	mu       sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler *Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler: NewCompiler(WithCache(100)),
		filters:  make(map[string]string),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterFilter registers a new filter or updates an existing one. The
// expression must compile for at least one entity kind.
func (m *Manager) RegisterFilter(name, expression string) error {
	return m.RegisterFilters(map[string]string{name: expression})
}

// RegisterFilters registers multiple filters at once. Nothing is registered
// if any expression fails to compile.
func (m *Manager) RegisterFilters(filters map[string]string) error {
	for name, expression := range filters {
		if err := m.check(expression); err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
	}

	m.mu.Lock()
	for name, expression := range filters {
		m.filters[normalize(name)] = expression
	}
	m.mu.Unlock()

	return nil
}

func (m *Manager) check(expression string) error {
	var errs []error
	for _, kind := range Kinds {
		_, err := m.compiler.Compile(kind, expression)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Expression returns the source of the named filter
func (m *Manager) Expression(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	expression, ok := m.filters[normalize(name)]
	return expression, ok
}

// Get returns the named filter compiled for kind
func (m *Manager) Get(name string, kind Kind) (*Filter, error) {
	expression, ok := m.Expression(name)
	if !ok {
		return nil, fmt.Errorf("filter '%s' not found", name)
	}

	f, err := m.compiler.Compile(kind, expression)
	if err != nil {
		return nil, fmt.Errorf("filter '%s' does not apply to %s: %w", name, kind, err)
	}
	return f, nil
}

// Compile compiles an ad-hoc expression with the manager's compiler
func (m *Manager) Compile(kind Kind, expression string) (*Filter, error) {
	return m.compiler.Compile(kind, expression)
}

// Names returns all registered filter names, sorted
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.filters))
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
