package health

import "fmt"

// Status is the health verdict for a folder.
type Status int

const (
	StatusOK Status = iota
	StatusNonExistant
	StatusReadOnly
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNonExistant:
		return "NonExistant"
	case StatusReadOnly:
		return "ReadOnly"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText renders the status name for JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
