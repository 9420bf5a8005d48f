package domain

import (
	"fmt"
	"strings"
)

// Status is the visit state of a restaurant. The zero value is not a valid status.
type Status uint8

const (
	StatusWantToGo Status = iota + 1
	StatusBeenThere
)

const (
	statusWantToGoText  = "want_to_go"
	statusBeenThereText = "been_there"
)

// ParseStatus accepts only the two wire values; anything else is ErrInvalidStatus.
func ParseStatus(value string) (Status, error) {
	switch strings.TrimSpace(value) {
	case statusWantToGoText:
		return StatusWantToGo, nil
	case statusBeenThereText:
		return StatusBeenThere, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, value)
}

// Valid reports whether s is one of the two known states.
func (s Status) Valid() bool {
	return s == StatusWantToGo || s == StatusBeenThere
}

// Toggle flips WantToGo and BeenThere. Invalid statuses are returned unchanged.
func (s Status) Toggle() Status {
	switch s {
	case StatusWantToGo:
		return StatusBeenThere
	case StatusBeenThere:
		return StatusWantToGo
	}
	return s
}

func (s Status) String() string {
	switch s {
	case StatusWantToGo:
		return statusWantToGoText
	case StatusBeenThere:
		return statusBeenThereText
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// MarshalText renders the wire value and refuses to encode an invalid status.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText parses the wire value.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
