package catalog

import "fmt"

// ConfigError is a hard configuration failure raised while building the
// catalog index. It carries enough context to point at the offending entry.
// Configuration errors are never recoverable at runtime: a silently skipped
// bad pattern would produce confident-looking wrong matches downstream.
type ConfigError struct {
	File    string
	Section string
	Brand   string
	Model   string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("catalog config error in %s [%s] %s / %s: %v",
		e.File, e.Section, e.Brand, e.Model, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
