package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	K         int         `json:"k"`
	WCSS      float64     `json:"wcss"`
	Centroids [][]float64 `json:"centroids"`
}

func TestCodecs(t *testing.T) {
	in := payload{
		K:         2,
		WCSS:      12.5,
		Centroids: [][]float64{{0.5, 0.5}, {10.5, 10.5}},
	}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		data, err := c.Marshal(in)
		require.NoError(t, err, c.Name())

		var out payload
		require.NoError(t, c.Unmarshal(data, &out), c.Name())
		assert.Equal(t, in, out, c.Name())
	}
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "go-json", Default.Name())
}

func TestMustMarshal_NilUsesDefault(t *testing.T) {
	assert.NotEmpty(t, MustMarshal(nil, payload{K: 1}))
}
