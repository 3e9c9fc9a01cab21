package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lottiebuilder/lottie-go"
)

const doc = `{"w": 100, "h": 100, "assets": [{"id": "c", "layers": []}], "layers": [
	{"ty": 4, "nm": "bg_fill", "ind": 0, "ks": {"o": {"a": 0, "k": 30}, "p": {"a": 0, "k": [10, 10]}}},
	{"ty": 5, "nm": "Title", "ind": 1, "hd": true},
	{"ty": 5, "nm": "Subtitle", "ind": 2},
	{"ty": 0, "nm": "Pre", "ind": 3, "refId": "c", "tm": {"a": 0, "k": 0}, "w": 50, "h": 40}
]}`

func names(ls []lottie.Layer) []string {
	var out []string
	for _, l := range ls {
		out = append(out, l.Name())
	}
	return out
}

func TestSelect(t *testing.T) {
	c, err := lottie.Parse([]byte(doc))
	require.NoError(t, err)

	tests := []struct {
		expr string
		want []string
	}{
		{expr: `type == "text" && !hidden`, want: []string{"Subtitle"}},
		{expr: `opacity < 50 || name startsWith "Sub"`, want: []string{"bg_fill", "Subtitle"}},
		{expr: `refId != "" && hasKey(layer, "tm")`, want: []string{"Pre"}},
		{expr: `ty == 5`, want: []string{"Title", "Subtitle"}},
		{expr: `index >= 2 && width > 0`, want: []string{"Pre"}},
		{expr: `x == 10 && y == 10 && scale == 100`, want: []string{"bg_fill"}},
		{expr: `false`, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, f.String())

			got, err := f.Select(c.Layers())
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	for _, src := range []string{`name ==`, `unknownVar > 1`, `name + 1`, `opacity`} {
		_, err := Compile(src)
		assert.Error(t, err, src)
	}
	assert.Panics(t, func() { MustCompile(`(`) })
}

func TestEnv(t *testing.T) {
	c, err := lottie.Parse([]byte(doc))
	require.NoError(t, err)
	env := Env(c.GetLayer("Pre"))
	assert.Equal(t, "precomposition", env["type"])
	assert.Equal(t, 3, env["index"])
	assert.Equal(t, 50.0, env["width"])
	assert.Equal(t, 100.0, env["opacity"])
	assert.Len(t, env, len(sampleEnv))
}
