package training

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrUnknownType matches any *UnknownTypeError.
	ErrUnknownType = errors.New("unknown training type")
	// ErrInvalidParams matches any *ArityError or *CountError.
	ErrInvalidParams = errors.New("invalid training parameters")
)

// UnknownTypeError reports a type code missing from the registry.
type UnknownTypeError struct {
	Code string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown training type %q", e.Code)
}

func (e *UnknownTypeError) Unwrap() error { return ErrUnknownType }

// ArityError reports a parameter list of the wrong length for its type code.
type ArityError struct {
	Code string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("training type %s takes %d parameters, got %d", e.Code, e.Want, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrInvalidParams }

// CountError reports a step, stroke or lap count that is not a
// non-negative whole number.
type CountError struct {
	Code  string
	Index int // position in the parameter list
	Value float64
}

func (e *CountError) Error() string {
	return fmt.Sprintf("training type %s: parameter %d must be a non-negative whole number, got %v",
		e.Code, e.Index, e.Value)
}

func (e *CountError) Unwrap() error { return ErrInvalidParams }

// Reading is a raw sensor package: a type code and its positional parameters.
type Reading struct {
	Type string    `yaml:"type" json:"type"`
	Data []float64 `yaml:"data" json:"data"`
}

type constructor struct {
	arity  int
	counts []int // positions holding integer counts
	build  func(d []float64) Workout
}

// registry maps a type code to its workout constructor.
var registry = map[string]constructor{
	"SWM": {5, []int{0, 4}, func(d []float64) Workout {
		return NewSwimming(int(d[0]), d[1], d[2], d[3], int(d[4]))
	}},
	"RUN": {3, []int{0}, func(d []float64) Workout {
		return NewRunning(int(d[0]), d[1], d[2])
	}},
	"WLK": {4, []int{0}, func(d []float64) Workout {
		return NewSportsWalking(int(d[0]), d[1], d[2], d[3])
	}},
}

// maxCount bounds counts so that int conversion is exact on every platform.
const maxCount = 1 << 31

func isCount(v float64) bool {
	return v >= 0 && v < maxCount && v == math.Trunc(v)
}

// ReadPackage builds the workout described by a type code and its data.
// Counts (steps, strokes, laps) must be non-negative whole numbers.
// Duration is not checked: zero or negative values produce Inf/NaN speeds.
func ReadPackage(code string, data []float64) (Workout, error) {
	c, ok := registry[code]
	if !ok {
		return nil, &UnknownTypeError{Code: code}
	}
	if len(data) != c.arity {
		return nil, &ArityError{Code: code, Want: c.arity, Got: len(data)}
	}
	for _, i := range c.counts {
		if !isCount(data[i]) {
			return nil, &CountError{Code: code, Index: i, Value: data[i]}
		}
	}
	return c.build(data), nil
}

// Read is ReadPackage for a Reading.
func Read(r Reading) (Workout, error) {
	return ReadPackage(r.Type, r.Data)
}

// Kinds returns the registered type codes, sorted.
func Kinds() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
