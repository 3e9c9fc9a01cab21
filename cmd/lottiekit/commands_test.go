package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestLineDiff(t *testing.T) {
	color.NoColor = true
	got := lineDiff("a\nb\nc\n", "a\nB\nc\n")
	assert.Equal(t, "  a\n- b\n+ B\n  c\n", got)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var out bytes.Buffer
	app := &cli.App{
		Name:           "lottiekit",
		Writer:         &out,
		ExitErrHandler: func(*cli.Context, error) {},
		Flags:          []cli.Flag{&cli.StringFlag{Name: "config"}, &cli.StringFlag{Name: "log-level"}, &cli.BoolFlag{Name: "no-color"}},
		Before:         setup,
		Commands:       []*cli.Command{infoCommand, layersCommand, exportCommand, importCommand, patchCommand, diffCommand, validateCommand},
	}
	err := app.Run(append([]string{"lottiekit", "--no-color", "--log-level", "error"}, args...))
	return out.String(), err
}

const sample = `{"v": "5.7.4", "nm": "Sample", "w": 100, "h": 50, "assets": [{"id": "img", "p": "a.png"}], "layers": [
	{"ty": 2, "nm": "Pic", "ind": 0, "refId": "img", "hd": true},
	{"ty": 5, "nm": "Caption", "ind": 1}
]}`

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "sample.json", sample)

	out, err := run(t, "info", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Sample")
	assert.Contains(t, out, "100x50")

	out, err = run(t, "layers", "--where", `type == "text"`, src)
	require.NoError(t, err)
	assert.Contains(t, out, "Caption")
	assert.NotContains(t, out, "Pic")

	out, err = run(t, "export", src)
	require.NoError(t, err)
	assert.NotContains(t, out, "Pic")
	assert.NotContains(t, out, "a.png")

	patch := writeFile(t, dir, "patch.json", `[{"op": "replace", "path": "/nm", "value": "Patched"}]`)
	patched := filepath.Join(dir, "patched.json")
	_, err = run(t, "patch", "-o", patched, src, patch)
	require.NoError(t, err)

	out, err = run(t, "diff", src, patched)
	require.NoError(t, err)
	assert.Contains(t, out, `"nm":"Patched"`)

	out, err = run(t, "validate", src, patched)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	broken := writeFile(t, dir, "broken.json", `{"layers": [{"ty": 0, "refId": "nope"}]}`)
	out, err = run(t, "validate", broken)
	require.Error(t, err)
	assert.Contains(t, out, `unknown asset "nope"`)
}
