package multivector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/funalg/pkg/space"
)

func TestCodecRoundTrip(t *testing.T) {
	tag := space.Cl(2, 1, 0)
	m := FromScalar(tag, 1.5).
		addScaled(basis(t, tag, 1), -2).
		addScaled(basis(t, tag, 1, 3), 0.25)

	data, err := m.Encode()
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, tag, back.Space())
	assert.True(t, m.Equal(back), "decoded value differs: %s vs %s", m, back)
}

func TestCodecDeterministic(t *testing.T) {
	tag := space.Euclidean(3)
	m := basis(t, tag, 1, 2).addScaled(FromScalar(tag, 4), 1)

	first, err := m.Encode()
	require.NoError(t, err)
	second, err := m.Encode()
	require.NoError(t, err)
	assert.Equal(t, first, second, "same value must encode to identical bytes")
}

func TestCodecZeroSkipsTerms(t *testing.T) {
	zero := New(space.Euclidean(4))
	data, err := zero.Encode()
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, zero.Equal(back))
}

func TestDecodeRejectsCorruptPayloads(t *testing.T) {
	_, err := Decode([]byte{0xff, 0x00})
	assert.Error(t, err)

	// Blade bitmap outside the declared space.
	w := wireValue{P: 1, Blades: []uint32{9}, Coefs: []float64{1}}
	raw, err := encMode.Marshal(&w)
	require.NoError(t, err)
	_, err = Decode(raw)
	assert.Error(t, err)

	// Mismatched blade and coefficient counts.
	w = wireValue{P: 1, Blades: []uint32{1}, Coefs: nil}
	raw, err = encMode.Marshal(&w)
	require.NoError(t, err)
	_, err = Decode(raw)
	assert.Error(t, err)

	// A signature beyond the space constructors' cap must be rejected
	// before any coefficient slice is sized from it.
	w = wireValue{P: 255, Q: 255, R: 255}
	raw, err = encMode.Marshal(&w)
	require.NoError(t, err)
	_, err = Decode(raw)
	assert.Error(t, err)
}
