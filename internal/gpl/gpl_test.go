package gpl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/palettes/internal/declare"
	"github.com/opencode-ai/palettes/pkg/color"
	"github.com/opencode-ai/palettes/pkg/palette"
)

const sample = `GIMP Palette
Name: Sample
Columns: 4
# a comment
 20  12  28	Black Night
255   0   0	Untitled
  0 255   0 128 Half Green
  0   0 255 999 Blue Thing
255 255 255	ffffff
 20  12  28	Black Night
300   0   0	Too Bright
  1   2   3	8-bit Gray
  4   5
`

func TestParse(t *testing.T) {
	colors, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	want := []Color{
		{Name: "black_night", Value: color.New(20, 12, 28, 255)},
		{Name: "color_ff0000ff", Value: color.New(255, 0, 0, 255)},
		{Name: "half_green", Value: color.New(0, 255, 0, 128)},
		{Name: "color_999_blue_thing", Value: color.New(0, 0, 255, 255)},
		{Name: "color_ffffff", Value: color.New(255, 255, 255, 255)},
		{Name: "color_8_bit_gray", Value: color.New(1, 2, 3, 255)},
	}
	assert.Equal(t, want, colors)
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Light Blue (2)": "light_blue_2",
		"  --Dark--Red ": "dark_red",
		"already_snake":  "already_snake",
		"Crème":          "cr_me",
		"":               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, SnakeCase(in), in)
	}
}

func TestPaletteName(t *testing.T) {
	assert.Equal(t, "Dawnbringer16", PaletteName("dawnbringer-16"))
	assert.Equal(t, "NannerPancakes", PaletteName("nanner pancakes"))
	assert.Equal(t, "Resurrect64", PaletteName("RESURRECT_64"))
}

func TestWriteDeclarationRoundTrip(t *testing.T) {
	colors, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	def := Definition("Sample", "sample.gpl", colors)

	var buf bytes.Buffer
	require.NoError(t, WriteDeclarations(&buf, []palette.Definition{def}))

	parsed, err := declare.ParseSource("sample.palette", buf.Bytes())
	require.NoError(t, err, buf.String())
	require.Len(t, parsed, 1)
	require.Len(t, parsed[0].Entries, len(colors))
	for i, c := range colors {
		assert.Equal(t, c.Name, parsed[0].Entries[i].Name)
		assert.Equal(t, c.Value, parsed[0].Entries[i].Value)
	}
}

func TestImportDir(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "lospec")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(nested, "warm-tones.gpl"), []byte("GIMP Palette\n255 64 0 Ember\n"), 0644); err != nil {
		t.Fatalf("write gpl: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "empty.gpl"), []byte("GIMP Palette\nName: Empty\n"), 0644); err != nil {
		t.Fatalf("write gpl: %v", err)
	}

	defs, err := ImportDir(root)
	if err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	require.Len(t, defs, 1)
	assert.Equal(t, "WarmTones", defs[0].Name)
	assert.Equal(t, "ember", defs[0].Entries[0].Name)
	assert.Equal(t, color.New(255, 64, 0, 255), defs[0].Entries[0].Value)
}
