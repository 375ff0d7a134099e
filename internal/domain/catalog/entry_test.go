package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind("municipalities")
	require.NoError(t, err)
	assert.Equal(t, KindMunicipality, k)

	_, err = ParseKind("states")
	assert.Error(t, err)
}

func TestNewEntry(t *testing.T) {
	e, err := NewEntry(KindMunicipality, " San-Luis-Potosi ", "San Luis Potosí")
	require.NoError(t, err)
	assert.Equal(t, "san-luis-potosi", e.Key())
	assert.Equal(t, "San Luis Potosí", e.Name())
	assert.True(t, e.IsActive())

	_, err = NewEntry(KindLevel, "has space", "x")
	assert.Error(t, err)
	_, err = NewEntry(KindLevel, "primaria", " ")
	assert.Error(t, err)
	_, err = NewEntry(Kind("other"), "primaria", "Primaria")
	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	e, err := NewEntry(KindSubject, "inscripcion", "Inscripción")
	require.NoError(t, err)

	require.NoError(t, e.Update("Inscripciones", false))
	assert.Equal(t, "Inscripciones", e.Name())
	assert.False(t, e.IsActive())
	assert.Equal(t, "inscripcion", e.Key())

	assert.Error(t, e.Update("", true))
}
