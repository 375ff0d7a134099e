package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "v1.2.3", Normalize("1.2.3"))
	assert.Equal(t, "v1.2.3", Normalize(" v1.2.3 "))
	assert.Empty(t, Normalize(""))
}

func TestString(t *testing.T) {
	orig := Current
	t.Cleanup(func() { Current = orig })

	Current = "dev"
	assert.Equal(t, "dev", String())

	Current = "1.4"
	assert.Equal(t, "v1.4.0", String())
}
