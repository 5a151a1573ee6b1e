package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/energyexe/dashboard/internal/prefs"
)

func TestRoot_AppliesPaletteOnReflect(t *testing.T) {
	t.Cleanup(func() { ApplyPalette(DefaultPalette()) })

	root := NewRoot(false)
	c := prefs.New(prefs.NewStore(prefs.NewMemoryKV(nil), nil), root)

	assert.Equal(t, prefs.DefaultState(), root.State())
	assert.Equal(t, "obsidian-dark", ActivePalette().Name)
	assert.Equal(t, obsidianDark.Primary, Primary)

	c.ToggleMode()
	assert.Equal(t, prefs.ModeLight, root.State().Mode)
	assert.Equal(t, "obsidian-light", ActivePalette().Name)
	assert.Equal(t, obsidianLight.Primary, Primary)
}

func TestRoot_NoColor(t *testing.T) {
	t.Cleanup(func() { ApplyPalette(DefaultPalette()) })

	root := NewRoot(true)
	prefs.Reflect(root, prefs.DefaultState())

	assert.True(t, ActivePalette().Disabled)
	assert.Equal(t, lipgloss.Color(""), Primary)

	root.SetNoColor(false)
	assert.False(t, ActivePalette().Disabled)
	assert.Equal(t, obsidianDark.Primary, Primary)
}

func TestRoot_Classes(t *testing.T) {
	t.Cleanup(func() { ApplyPalette(DefaultPalette()) })

	root := NewRoot(false)
	prefs.Reflect(root, prefs.State{Theme: prefs.ThemeObsidian, Mode: prefs.ModeDark})
	prefs.Reflect(root, prefs.State{Theme: prefs.ThemeObsidian, Mode: prefs.ModeDark})

	assert.Equal(t, []string{"theme-obsidian", "dark"}, root.Classes())
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, "obsidian-dark", DefaultPalette().Name)
	assert.Equal(t, "obsidian-light", PaletteFor(prefs.State{Theme: prefs.ThemeObsidian, Mode: prefs.ModeLight}).Name)
}

func TestCardGrid(t *testing.T) {
	cards := []string{Card("Capacity", "1.2 GW", ""), Card("Farms", "42", "3 offline"), SkeletonCard("Output")}

	oneRow := CardGrid(200, cards...)
	stacked := CardGrid(10, cards...)

	require.NotEmpty(t, oneRow)
	assert.Greater(t, strings.Count(stacked, "\n"), strings.Count(oneRow, "\n"))
	assert.Empty(t, CardGrid(80))
}

func TestTable(t *testing.T) {
	out := Table([]string{"Name", "Capacity"}, [][]string{{"Hornsea", "1218 MW"}, {"Walney"}})

	assert.Contains(t, out, "Hornsea")
	assert.Contains(t, out, "1218 MW")
	assert.Contains(t, out, "Walney")
}
