package params

// Store holds the committed parameters alongside the values used at start-up
// and on reset. Only the Gate commits.
type Store struct {
	committed Config
	defaults  Config
	reset     Config
}

// NewStore returns a store committed to initial, with the package defaults as
// its start-up and reset values.
func NewStore(initial Config) *Store {
	return &Store{committed: initial, defaults: DefaultConfig(), reset: ResetConfig()}
}

// Config returns the committed parameters.
func (s *Store) Config() Config { return s.committed }

// Defaults returns the start-up parameters.
func (s *Store) Defaults() Config { return s.defaults }

// ResetValues returns the parameters restored by a reset.
func (s *Store) ResetValues() Config { return s.reset }

func (s *Store) commit(c Config) { s.committed = c }
