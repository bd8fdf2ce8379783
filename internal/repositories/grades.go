package repositories

import (
	"fmt"
	"strconv"
	"strings"
)

const gradesSeparator = ","

// EncodeGrades joins grades into the comma-separated text stored in the grades column.
//
// Values use the shortest representation that parses back to the same float64.
func EncodeGrades(grades []float64) string {
	parts := make([]string, len(grades))
	for i, g := range grades {
		parts[i] = strconv.FormatFloat(g, 'f', -1, 64)
	}
	return strings.Join(parts, gradesSeparator)
}

// DecodeGrades parses the grades column back into a slice.
func DecodeGrades(text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return []float64{}, nil
	}

	parts := strings.Split(text, gradesSeparator)
	grades := make([]float64, len(parts))
	for i, p := range parts {
		g, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode grade %q: %w", p, err)
		}
		grades[i] = g
	}
	return grades, nil
}
