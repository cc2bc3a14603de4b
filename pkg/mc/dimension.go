package mc

import (
	"fmt"
	"strings"
)

// Dimension is one of the independently generated world layers.
type Dimension int32

const (
	Nether    Dimension = -1
	Overworld Dimension = 0
	End       Dimension = 1
)

func (d Dimension) String() string {
	switch d {
	case Nether:
		return "nether"
	case Overworld:
		return "overworld"
	case End:
		return "end"
	}
	return fmt.Sprintf("Dimension(%d)", int32(d))
}

// Valid reports whether d is one of Nether, Overworld or End.
func (d Dimension) Valid() bool {
	return d >= Nether && d <= End
}

// ParseDimension accepts "overworld", "nether" and "end" (plus "the_nether", "the_end").
func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "overworld", "0":
		return Overworld, nil
	case "nether", "the_nether", "-1":
		return Nether, nil
	case "end", "the_end", "1":
		return End, nil
	}
	return 0, fmt.Errorf("unknown dimension %q", s)
}
