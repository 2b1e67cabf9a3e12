package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const warmSource = `Warm {
	"ember": "#ff4000",
	"ash": (0.5, 0.5, 0.5),
}
`

// setupCLI isolates the config and catalog search paths and returns the
// project directory, which is also the working directory.
func setupCLI(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("PALETTES_NO_PROGRESS", "1")

	project := t.TempDir()
	t.Chdir(project)
	return project
}

func resetFlags() {
	configFile = ""
	projectDir = ""
	jsonOutput = false
	jsonlOutput = false
	logLevel = ""
	nonInteractive = false
	noProgress = false
	appConfig = nil

	genOut = ""
	genPackage = ""
	genBuiltin = false
	genDryRun = false
	importOut = ""
	initForce = false
	nearestCount = 5
	nearestPalettes = nil
	browseTheme = ""
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeProjectFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestListIncludesProjectAndBuiltins(t *testing.T) {
	project := setupCLI(t)
	writeProjectFile(t, filepath.Join(project, ".palettes", "warm.palette"), warmSource)

	out, err := runCLI(t, "list", "--json")
	require.NoError(t, err)

	var summaries []paletteSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))

	byName := map[string]paletteSummary{}
	for _, s := range summaries {
		byName[s.Name] = s
	}
	require.Contains(t, byName, "Warm")
	assert.False(t, byName["Warm"].Builtin)
	assert.Equal(t, 2, byName["Warm"].Colors)
	require.Contains(t, byName, "Common")
	assert.True(t, byName["Common"].Builtin)
	assert.Equal(t, 10, byName["Common"].Colors)
}

func TestListTable(t *testing.T) {
	setupCLI(t)
	out, err := runCLI(t, "list")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "NAME"), out)
	assert.Contains(t, out, "Dawnbringer16")
}

func TestGetIgnoresCaseAndPunctuation(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "get", "common", "RED")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000ff\n", out)

	out, err = runCLI(t, "get", "Common", "transparentWhite")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff00\n", out)

	_, err = runCLI(t, "get", "Common", "mauve")
	var pre *PreflightError
	require.True(t, errors.As(err, &pre), "got %v", err)
	assert.Equal(t, "palettes show Common", pre.NextStep)
}

func TestShowJSON(t *testing.T) {
	project := setupCLI(t)
	writeProjectFile(t, filepath.Join(project, ".palettes", "warm.palette"), warmSource)

	out, err := runCLI(t, "show", "warm", "--json")
	require.NoError(t, err)

	var details []colorDetail
	require.NoError(t, json.Unmarshal([]byte(out), &details))
	require.Len(t, details, 2)
	assert.Equal(t, "ember", details[0].Name)
	assert.Equal(t, "EMBER", details[0].Constant)
	assert.Equal(t, "Ember", details[0].Accessor)
	assert.Equal(t, "#ff4000ff", details[0].Hex)
	assert.Equal(t, uint8(127), details[1].R)

	_, err = runCLI(t, "show", "nope")
	var pre *PreflightError
	require.True(t, errors.As(err, &pre))
	assert.Equal(t, "palettes list", pre.NextStep)
}

func TestNearestJSON(t *testing.T) {
	setupCLI(t)
	out, err := runCLI(t, "nearest", "#fe0101", "-n", "1", "--palette", "Common", "--json")
	require.NoError(t, err)

	var matches []struct {
		Palette string `json:"palette"`
		Name    string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "Common", matches[0].Palette)
	assert.Equal(t, "red", matches[0].Name)

	_, err = runCLI(t, "nearest", "orange")
	var pre *PreflightError
	require.True(t, errors.As(err, &pre))
}

func TestGenWritesPackages(t *testing.T) {
	project := setupCLI(t)
	src := filepath.Join(project, "art", "warm.palette")
	writeProjectFile(t, src, warmSource)
	outDir := filepath.Join(project, "gen")

	out, err := runCLI(t, "gen", src, "--out", outDir, "--json")
	require.NoError(t, err)

	var results []genResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.True(t, results[0].Changed)

	data, err := os.ReadFile(filepath.Join(outDir, "warm", "warm.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package warm")
	assert.Contains(t, string(data), "func (Warm) Ember() color.Color")

	out, err = runCLI(t, "gen", src, "--out", outDir, "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.False(t, results[0].Changed, "unchanged output is not rewritten")
}

func TestGenUsesConfiguredSources(t *testing.T) {
	project := setupCLI(t)
	writeProjectFile(t, filepath.Join(project, "art", "warm.palette"), warmSource)
	writeProjectFile(t, filepath.Join(project, ".palettes", "config.yaml"),
		"generate:\n  output: out\n  sources:\n    - art\n")

	out, err := runCLI(t, "gen")
	require.NoError(t, err)
	assert.Contains(t, out, "written")

	_, err = os.Stat(filepath.Join(project, "out", "warm", "warm.go"))
	require.NoError(t, err)
}

func TestGenDryRunWritesNothing(t *testing.T) {
	project := setupCLI(t)
	outDir := filepath.Join(project, "gen")

	out, err := runCLI(t, "gen", "--builtin", "--dry-run", "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "common/common.go")
	assert.Contains(t, out, "would write")

	_, err = os.Stat(outDir)
	assert.True(t, os.IsNotExist(err))
}

func TestGenErrors(t *testing.T) {
	project := setupCLI(t)

	_, err := runCLI(t, "gen")
	var pre *PreflightError
	require.True(t, errors.As(err, &pre), "got %v", err)
	assert.Contains(t, pre.Message, "no palette sources")

	bad := filepath.Join(project, "bad.palette")
	writeProjectFile(t, bad, `Bad { "light-blue": "#add8e6" }`)
	_, err = runCLI(t, "gen", bad)
	require.True(t, errors.As(err, &pre), "got %v", err)
	assert.Contains(t, pre.Message, "light-blue")
	assert.Equal(t, "palettes check", pre.NextStep)

	syntax := filepath.Join(project, "syntax.palette")
	writeProjectFile(t, syntax, `Broken { "a" "#fff" }`)
	_, err = runCLI(t, "gen", syntax)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax.palette:1:")
}

func TestCheck(t *testing.T) {
	project := setupCLI(t)
	good := filepath.Join(project, "warm.palette")
	writeProjectFile(t, good, warmSource)

	out, err := runCLI(t, "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	bad := filepath.Join(project, "bad.palette")
	writeProjectFile(t, bad, "Bad {\n\t\"light-blue\": \"#add8e6\",\n\t\"dark_blue\": \"#000064\",\n\t\"darkblue\": \"#0000fa\",\n}\n")
	out, err = runCLI(t, "check", bad)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "bad.palette:2:2")
	assert.Contains(t, out, "warning:")
}

func TestCheckCatalog(t *testing.T) {
	setupCLI(t)
	out, err := runCLI(t, "check", "--json")
	require.NoError(t, err, out)

	var results []checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.True(t, r.OK, "%s: %v", r.Palette, r.Problems)
	}
}

func TestImportGPL(t *testing.T) {
	project := setupCLI(t)
	gplPath := filepath.Join(project, "sunset-glow.gpl")
	writeProjectFile(t, gplPath, "GIMP Palette\nName: Sunset\nColumns: 4\n#\n255 128   0 Deep Orange\n 10  20  30\n")

	out, err := runCLI(t, "import-gpl", gplPath)
	require.NoError(t, err)
	assert.Contains(t, out, "SunsetGlow {")
	assert.Contains(t, out, `"deep_orange"`)

	dest := filepath.Join(project, ".palettes", "sunset.palette")
	require.NoError(t, os.MkdirAll(filepath.Dir(dest), 0o755))
	_, err = runCLI(t, "import-gpl", gplPath, "--out", dest)
	require.NoError(t, err)

	out, err = runCLI(t, "get", "sunsetglow", "Deep Orange")
	require.NoError(t, err)
	assert.Equal(t, "#ff8000ff\n", out)
}

func TestBrowseRequiresTerminal(t *testing.T) {
	setupCLI(t)
	_, err := runCLI(t, "browse", "--non-interactive")
	var pre *PreflightError
	require.True(t, errors.As(err, &pre), "got %v", err)
}

func TestInitCommand(t *testing.T) {
	project := setupCLI(t)

	out, err := runCLI(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "[ok] Config file")
	assert.Contains(t, out, "[ok] Project palettes")

	_, err = os.Stat(filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "palettes", "config.yaml"))
	require.NoError(t, err)

	out, err = runCLI(t, "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Example"`)
	assert.DirExists(t, filepath.Join(project, ".palettes"))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, &PreflightError{Message: "boom", Hint: "try again", NextStep: "palettes list"})
	assert.Equal(t, "Error: boom\nHint: try again\nNext: palettes list\n", buf.String())

	buf.Reset()
	printError(&buf, errors.New("plain"))
	assert.Equal(t, "Error: plain\n", buf.String())
}

func TestWriteOutputJSONL(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)
	jsonlOutput = true

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, []genResult{{Path: "a"}, {Path: "b", Changed: true}}))
	assert.Equal(t, "{\"path\":\"a\",\"changed\":false}\n{\"path\":\"b\",\"changed\":true}\n", buf.String())
}
