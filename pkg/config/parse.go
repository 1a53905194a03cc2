package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePair parses "a,b" into two floats. It is used for complex values and
// ranges given on the command line.
func ParsePair(s string) ([2]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]float64{}, fmt.Errorf("%q: want two comma-separated numbers", s)
	}

	var out [2]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [2]float64{}, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
