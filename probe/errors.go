package probe

import "fmt"

// ProbeError represents a failure to read or probe a media file.
type ProbeError struct {
	Message  string
	Original error
}

func (e *ProbeError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("Probe error: %s: %v", e.Message, e.Original)
	}
	return fmt.Sprintf("Probe error: %s", e.Message)
}

func (e *ProbeError) Unwrap() error {
	return e.Original
}

// UnsupportedFormatError is returned when no known tag container is
// recognized in the file. It is recoverable: callers report it and move on.
type UnsupportedFormatError struct {
	Path     string
	Original error
}

func (e *UnsupportedFormatError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("Unsupported file format: %s: %v", e.Path, e.Original)
	}
	return fmt.Sprintf("Unsupported file format: %s", e.Path)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return e.Original
}
