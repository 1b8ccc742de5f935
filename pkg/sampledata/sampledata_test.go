package sampledata

import(
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abworrall/imgplot/pkg/errs"
)

func TestLoadText(t *testing.T) {
	fg, err := LoadText(strings.NewReader("x y z\n1 2 3\n\n4 5.5 -6e-1\n"), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, fg.Dx())
	assert.Equal(t, 2, fg.Dy())
	assert.Equal(t, 3.0, fg.Get(2, 0))
	assert.Equal(t, -0.6, fg.Get(2, 1))
}

func TestLoadTextErrors(t *testing.T) {
	for _, text := range []string{
		"1 2 3\n4 5\n",
		"1 2\nthree 4\n",
		"header only\n",
		"",
	} {
		_, err := LoadText(strings.NewReader(text), 0)
		if text == "header only\n" {
			_, err = LoadText(strings.NewReader(text), 1)
		}
		assert.True(t, errors.Is(err, errs.ErrValue), "%q", text)
	}
}

func TestLoadPolymer(t *testing.T) {
	raw, err := LoadText(bytes.NewReader(polymerText), 1)
	require.NoError(t, err)

	fg, err := LoadImage("polymer")
	require.NoError(t, err)
	require.Equal(t, raw.Dx(), fg.Dx())
	require.Equal(t, raw.Dy(), fg.Dy())
	assert.InDelta(t, raw.Get(3, 5) * 1e9, fg.Get(3, 5), 1e-9)

	min, max := fg.MinMax()
	assert.Greater(t, min, -5.0, "values are nanometres")
	assert.Less(t, max, 25.0)
}

func TestLoadPolymerOutliers(t *testing.T) {
	plain, err := LoadImage("polymer")
	require.NoError(t, err)
	fg, err := LoadImage("polymer outliers")
	require.NoError(t, err)

	assert.Equal(t, 80.0, fg.Get(0, 0))
	assert.Equal(t, plain.Get(1, 0), fg.Get(1, 0))

	again, err := LoadImage("polymer")
	require.NoError(t, err)
	assert.True(t, plain.Equal(again), "each load is a fresh copy")
}

func TestLoadImageUnknown(t *testing.T) {
	_, err := LoadImage("coins")
	assert.True(t, errors.Is(err, errs.ErrValue))
	assert.Equal(t, []string{"polymer", "polymer outliers"}, Names())
}
