package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflect(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		state   State
		want    []string
	}{
		{
			name:  "dark on empty root",
			state: State{Theme: ThemeObsidian, Mode: ModeDark},
			want:  []string{"theme-obsidian", "dark"},
		},
		{
			name:    "light drops dark",
			initial: []string{"dark", "theme-obsidian"},
			state:   State{Theme: ThemeObsidian, Mode: ModeLight},
			want:    []string{"theme-obsidian"},
		},
		{
			name:    "stale theme classes removed",
			initial: []string{"theme-aurora", "layout", "theme-ember"},
			state:   State{Theme: ThemeObsidian, Mode: ModeLight},
			want:    []string{"layout", "theme-obsidian"},
		},
		{
			name:    "unrelated classes kept",
			initial: []string{"dense"},
			state:   State{Theme: ThemeObsidian, Mode: ModeDark},
			want:    []string{"dense", "theme-obsidian", "dark"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewClassList(tt.initial...)
			Reflect(root, tt.state)
			assert.Equal(t, tt.want, root.Classes())
		})
	}
}

func TestReflect_Idempotent(t *testing.T) {
	for _, mode := range Modes() {
		once := NewClassList("theme-ember")
		Reflect(once, State{Theme: ThemeObsidian, Mode: mode})

		twice := NewClassList("theme-ember")
		Reflect(twice, State{Theme: ThemeObsidian, Mode: mode})
		Reflect(twice, State{Theme: ThemeObsidian, Mode: mode})

		assert.Equal(t, once.Classes(), twice.Classes(), "mode %s", mode)
	}
}

func TestReflect_NilRoot(t *testing.T) {
	assert.NotPanics(t, func() { Reflect(nil, DefaultState()) })
}

func TestClassList(t *testing.T) {
	l := NewClassList("a", "b", "a", "")
	assert.Equal(t, []string{"a", "b"}, l.Classes())
	assert.Equal(t, "a b", l.String())

	l.Remove("a")
	assert.False(t, l.Contains("a"))

	classes := l.Classes()
	classes[0] = "mutated"
	assert.Equal(t, []string{"b"}, l.Classes())
}

func TestParse(t *testing.T) {
	_, ok := ParseMode("sepia")
	assert.False(t, ok)
	_, ok = ParseMode("Dark")
	assert.False(t, ok)

	m, ok := ParseMode("light")
	assert.True(t, ok)
	assert.Equal(t, ModeLight, m)

	th, ok := ParseTheme("obsidian")
	assert.True(t, ok)
	assert.Equal(t, ThemeObsidian, th)

	_, ok = ParseTheme("")
	assert.False(t, ok)
}
