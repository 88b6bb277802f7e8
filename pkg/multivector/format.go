package multivector

import (
	"math/bits"
	"sort"
	"strconv"
	"strings"
)

// String renders the multivector in a canonical order: blades sorted
// by grade, then by bitmap. The zero multivector renders as "0".
func (m *MV) String() string {
	type term struct {
		blade int
		coef  float64
	}
	terms := make([]term, 0, 4)
	for blade, c := range m.coef {
		if c != 0 {
			terms = append(terms, term{blade: blade, coef: c})
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	sort.Slice(terms, func(i, j int) bool {
		gi, gj := bits.OnesCount(uint(terms[i].blade)), bits.OnesCount(uint(terms[j].blade))
		if gi != gj {
			return gi < gj
		}
		return terms[i].blade < terms[j].blade
	})

	var sb strings.Builder
	for i, t := range terms {
		c := t.coef
		switch {
		case i == 0 && c < 0:
			sb.WriteString("-")
			c = -c
		case i > 0 && c < 0:
			sb.WriteString(" - ")
			c = -c
		case i > 0:
			sb.WriteString(" + ")
		}
		name := bladeName(t.blade)
		if name == "" || c != 1 {
			sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}
		sb.WriteString(name)
	}
	return sb.String()
}

// bladeName names a blade by its 1-based basis indices: "e1", "e12",
// "e134". Indices past 9 are comma-separated inside braces to stay
// unambiguous: "e{2,11}". The scalar blade has no name.
func bladeName(blade int) string {
	if blade == 0 {
		return ""
	}
	indices := make([]int, 0, bits.OnesCount(uint(blade)))
	for rest := blade; rest != 0; rest &= rest - 1 {
		indices = append(indices, bits.TrailingZeros(uint(rest))+1)
	}
	var sb strings.Builder
	sb.WriteString("e")
	if indices[len(indices)-1] > 9 {
		sb.WriteString("{")
		for i, idx := range indices {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(strconv.Itoa(idx))
		}
		sb.WriteString("}")
		return sb.String()
	}
	for _, idx := range indices {
		sb.WriteString(strconv.Itoa(idx))
	}
	return sb.String()
}
