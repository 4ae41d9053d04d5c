package timezone

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

var (
	ErrEmptyZone = errors.New("timezone is empty")
	ErrHostZone  = errors.New("timezone Local is not a zone name")
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock of the host.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Validation is the outcome of checking a zone name. Location is set only
// when the name is valid.
type Validation struct {
	Name     string
	Location *time.Location
	Err      error
}

func (v Validation) Valid() bool {
	return v.Err == nil && v.Location != nil
}

// Validate resolves name against the zone database.
func Validate(name string) Validation {
	switch {
	case name == "":
		return Validation{Name: name, Err: ErrEmptyZone}
	case strings.EqualFold(name, "local"):
		return Validation{Name: name, Err: ErrHostZone}
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return Validation{Name: name, Err: fmt.Errorf("loading location %q: %w", name, err)}
	}

	return Validation{Name: name, Location: loc}
}

// Format renders the current time of clock in zone name using layout.
// The second result is false when the zone cannot be resolved.
func Format(clock Clock, name, layout string) (string, bool) {
	v := Validate(name)
	if !v.Valid() {
		return "", false
	}

	return clock.Now().In(v.Location).Format(layout), true
}

func NewSystemClock() Clock {
	return SystemClock{}
}
