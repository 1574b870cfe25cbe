package polynomial

import (
	"strconv"
	"strings"

	"github.com/tuneinsight/polyalg/utils"
)

// String returns a human-readable representation of p in ascending order of
// powers, for example "1 - 2x + x^2". Coefficients within Epsilon of zero are
// omitted and the zero polynomial is "0".
func (p Polynomial) String() string {

	var terms []string
	for i, c := range p.coefficients() {
		if utils.IsNegligible(c, Epsilon) {
			continue
		}
		terms = append(terms, formatTerm(c, i))
	}

	if len(terms) == 0 {
		return "0"
	}

	var sb strings.Builder
	sb.WriteString(terms[0])
	for _, term := range terms[1:] {
		if term[0] == '-' {
			sb.WriteString(" - ")
			sb.WriteString(term[1:])
		} else {
			sb.WriteString(" + ")
			sb.WriteString(term)
		}
	}

	return sb.String()
}

func formatTerm(c float64, i int) string {

	if i == 0 {
		return formatCoefficient(c)
	}

	var monomial = "x"
	if i > 1 {
		monomial += "^" + strconv.Itoa(i)
	}

	switch {
	case utils.IsNegligible(c-1, Epsilon):
		return monomial
	case utils.IsNegligible(c+1, Epsilon):
		return "-" + monomial
	default:
		return formatCoefficient(c) + monomial
	}
}

// formatCoefficient formats c with 6 significant digits, dropping trailing zeros.
func formatCoefficient(c float64) string {
	return strconv.FormatFloat(c, 'g', 6, 64)
}
