package sensor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrorToken is what the sensor sends when it has no echo.
const ErrorToken = "ERR"

const unitSuffix = "cm"

// Distance is a measured distance in centimeters, or Absent.
type Distance struct {
	CM    float64
	Valid bool
}

// Absent is the distance of an empty, malformed or ERR line.
var Absent = Distance{}

// Measured wraps a present reading.
func Measured(cm float64) Distance {
	return Distance{CM: cm, Valid: true}
}

// String returns the label shown in the distance region.
func (d Distance) String() string {
	if !d.Valid {
		return ErrorToken
	}
	return fmt.Sprintf("%.1f cm", d.CM)
}

// ParseLine converts one raw sensor line into a Distance.
// Only "ERR" (any case) and "<number>cm" are recognised, with optional
// spaces before the unit; every other line, including a bare number, is
// Absent.
func ParseLine(raw string) Distance {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Absent
	}
	if strings.ToUpper(line) == ErrorToken {
		return Absent
	}

	num, ok := strings.CutSuffix(line, unitSuffix)
	if !ok {
		return Absent
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Absent
	}
	return Measured(v)
}
