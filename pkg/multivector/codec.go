package multivector

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/funvibe/funalg/pkg/space"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2) so the same
// multivector always produces identical bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("multivector: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("multivector: CBOR decoder initialization failed: " + err.Error())
	}
}

// wireValue is the sparse wire layout: the signature header plus one
// (blade bitmap, coefficient) pair per nonzero term, blades ascending.
type wireValue struct {
	P      uint8     `cbor:"p"`
	Q      uint8     `cbor:"q,omitempty"`
	R      uint8     `cbor:"r,omitempty"`
	Dual   bool      `cbor:"dual,omitempty"`
	Blades []uint32  `cbor:"blades"`
	Coefs  []float64 `cbor:"coefs"`
}

// Encode serializes the multivector to deterministic CBOR.
func (m *MV) Encode() ([]byte, error) {
	w := wireValue{P: m.tag.P, Q: m.tag.Q, R: m.tag.R, Dual: m.tag.Dual}
	for blade, c := range m.coef {
		if c != 0 {
			w.Blades = append(w.Blades, uint32(blade))
			w.Coefs = append(w.Coefs, c)
		}
	}
	return encMode.Marshal(&w)
}

// Decode deserializes a multivector produced by Encode.
func Decode(data []byte) (*MV, error) {
	var w wireValue
	if err := decMode.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("multivector: decode: %w", err)
	}
	if len(w.Blades) != len(w.Coefs) {
		return nil, fmt.Errorf("multivector: decode: %d blades for %d coefficients", len(w.Blades), len(w.Coefs))
	}
	// Encode only ever sees tags whose components the space
	// constructors capped; anything larger is a corrupt payload.
	if w.P > space.MaxDim || w.Q > space.MaxDim || w.R > space.MaxDim {
		return nil, fmt.Errorf("multivector: decode: signature (%d,%d,%d) out of range", w.P, w.Q, w.R)
	}
	tag := space.Tag{P: w.P, Q: w.Q, R: w.R, Dual: w.Dual}
	m := New(tag)
	for i, blade := range w.Blades {
		if int(blade) >= len(m.coef) {
			return nil, fmt.Errorf("multivector: decode: blade %#x out of range for %s", blade, tag)
		}
		m.coef[blade] = w.Coefs[i]
	}
	return m, nil
}
