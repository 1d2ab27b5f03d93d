package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/swatch/internal/colorspace"
	"github.com/alexisbeaulieu97/swatch/internal/palette"
)

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	cmd.SetArgs(args)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRootPrintsTableWhenNotInteractive(t *testing.T) {
	original := isInteractive
	t.Cleanup(func() { isInteractive = original })
	isInteractive = func() bool { return false }

	out, err := executeCommand(newRootCmd(), "--color", "#FF0000")
	require.NoError(t, err)
	require.Contains(t, out, "ROLE")
	require.Contains(t, out, "#00FFFF")
	require.Contains(t, out, "Triadic")
}

func TestPaletteTable(t *testing.T) {
	out, err := executeCommand(newRootCmd(), "palette", "#2196F3")
	require.NoError(t, err)

	for _, entry := range palette.Generate("#2196F3") {
		require.Contains(t, out, entry.Hex)
		require.Contains(t, out, entry.Role)
	}
	require.Contains(t, out, "rgb(33, 150, 243)")
}

func TestPaletteJSON(t *testing.T) {
	out, err := executeCommand(newRootCmd(), "palette", "ff0000", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Base    string `json:"base"`
		Policy  string `json:"policy"`
		Entries []struct {
			Hex  string `json:"hex"`
			Role string `json:"role"`
			RGB  string `json:"rgb"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, "#FF0000", doc.Base)
	require.Equal(t, "harmonious", doc.Policy)
	require.Len(t, doc.Entries, 5)
	require.Equal(t, "Complementary", doc.Entries[1].Role)
	require.Equal(t, "#00FFFF", doc.Entries[1].Hex)
	require.Equal(t, "rgb(0, 255, 255)", doc.Entries[1].RGB)
}

func TestPaletteYAMLWithShadesPolicy(t *testing.T) {
	out, err := executeCommand(newRootCmd(), "palette", "#2196F3", "--format", "yaml", "--policy", "shades")
	require.NoError(t, err)

	var doc struct {
		Policy  string `yaml:"policy"`
		Entries []struct {
			Hex  string `yaml:"hex"`
			Role string `yaml:"role"`
		} `yaml:"entries"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Equal(t, "shades", doc.Policy)
	require.Len(t, doc.Entries, 5)
	require.Equal(t, "Very Light", doc.Entries[1].Role)
	require.InDelta(t, 90, colorspace.HexToHSL(doc.Entries[1].Hex).L, 1)
}

func TestPaletteRejectsInvalidInput(t *testing.T) {
	_, err := executeCommand(newRootCmd(), "palette", "#GGGGGG")
	require.Error(t, err)
	require.ErrorIs(t, err, colorspace.ErrInvalidHex)
	require.Contains(t, err.Error(), "Suggestion:")

	_, err = executeCommand(newRootCmd(), "palette", "#2196F3", "--format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "xml")

	_, err = executeCommand(newRootCmd(), "palette", "#2196F3", "--policy", "rainbow")
	require.ErrorIs(t, err, palette.ErrUnknownPolicy)
}

func TestPaletteUsesConfigFile(t *testing.T) {
	path := writeConfig(t, "version: \"1.0\"\nbase_color: \"#4CAF50\"\npolicy: shades\n")

	out, err := executeCommand(newRootCmd(), "--config", path, "palette")
	require.NoError(t, err)
	require.Contains(t, out, "#4CAF50")
	require.Contains(t, out, "Very Dark")
}

func TestInvalidConfigFile(t *testing.T) {
	path := writeConfig(t, "version: \"1.0\"\nbase_color: \"blue\"\n")

	_, err := executeCommand(newRootCmd(), "-c", path, "palette")
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading configuration")
	require.Contains(t, err.Error(), "base_color")
}

func TestConvert(t *testing.T) {
	out, err := executeCommand(newRootCmd(), "convert", "2196f3")
	require.NoError(t, err)
	require.Contains(t, out, "#2196F3")
	require.Contains(t, out, "rgb(33, 150, 243)")
	require.Contains(t, out, "hsl(207, 90%, 54%)")
	require.Contains(t, out, "#000000")
	require.NotContains(t, out, "contrast")

	out, err = executeCommand(newRootCmd(), "convert", "#000000", "--compare", "#FFFFFF")
	require.NoError(t, err)
	require.Contains(t, out, "21.00:1")

	_, err = executeCommand(newRootCmd(), "convert", "#000000", "--compare", "white")
	require.ErrorIs(t, err, colorspace.ErrInvalidHex)
}
