package textbuf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueEmpty(t *testing.T) {
	var b Buffer
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Len())
}

func TestSetReplacesContents(t *testing.T) {
	b := New("v0.1.0")
	b.Set("v10.10.100")
	assert.Equal(t, "v10.10.100", b.String())
	b.Set("v1")
	assert.Equal(t, "v1", b.String())
	assert.Equal(t, 2, b.Len())
}

func TestSetBytesCopies(t *testing.T) {
	src := []byte("v0.1.0")
	var b Buffer
	b.SetBytes(src)
	src[1] = '9'
	assert.Equal(t, "v0.1.0", b.String())
}

func TestGrowsPastInitialSize(t *testing.T) {
	long := strings.Repeat("和平", 500)
	b := New("short")
	b.Set(long)
	assert.Equal(t, long, b.String())
}

func TestReleaseEmptiesAndAllowsReuse(t *testing.T) {
	b := New("node")
	b.Release()
	assert.Equal(t, "", b.String())
	b.Release()
	b.Set("again")
	assert.Equal(t, "again", b.String())
}
