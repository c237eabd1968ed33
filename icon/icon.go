// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/shua-cli/shua/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every icon style identifier.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon names a status symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Progress
	Search
	Play
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:     {emoji: "💀", nerd: "", plain: "✖", kaomoji: "(×_×)", squares: "🟥"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", kaomoji: "(・_・;)", squares: "🟨"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", kaomoji: "(・・ )?", squares: "🟦"},
	Search:   {emoji: "🔍", nerd: "", plain: "?", kaomoji: "(°ロ°)", squares: "🟪"},
	Play:     {emoji: "📺", nerd: "", plain: "▶", kaomoji: "(╯✧▽✧)╯", squares: "🟧"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered symbol of i.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}
