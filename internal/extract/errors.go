package extract

import "fmt"

// LoadError indicates an input document that could not be read or parsed.
// Callers are expected to isolate it per file and keep processing siblings.
type LoadError struct {
	FileName string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.FileName, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
