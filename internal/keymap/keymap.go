package keymap

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/andyrewlee/snapscroll/internal/config"
)

// Action identifies a configurable keybinding.
type Action string

const (
	ActionNext      Action = "next"
	ActionPrev      Action = "prev"
	ActionPageDown  Action = "page_down"
	ActionPageUp    Action = "page_up"
	ActionTop       Action = "top"
	ActionBottom    Action = "bottom"
	ActionCopyTitle Action = "copy_title"
	ActionHelp      Action = "help"
	ActionQuit      Action = "quit"
)

type bindingDef struct {
	action Action
	keys   []string
	help   string
	desc   string
}

var defaults = []bindingDef{
	{action: ActionNext, keys: []string{"j", "down"}, help: "j/↓", desc: "next"},
	{action: ActionPrev, keys: []string{"k", "up"}, help: "k/↑", desc: "prev"},
	{action: ActionPageDown, keys: []string{"pgdown", "space"}, help: "pgdn", desc: "page down"},
	{action: ActionPageUp, keys: []string{"pgup"}, help: "pgup", desc: "page up"},
	{action: ActionTop, keys: []string{"g", "home"}, help: "g", desc: "top"},
	{action: ActionBottom, keys: []string{"G", "end"}, help: "G", desc: "bottom"},
	{action: ActionCopyTitle, keys: []string{"y"}, help: "y", desc: "copy title"},
	{action: ActionHelp, keys: []string{"?"}, help: "?", desc: "hints"},
	{action: ActionQuit, keys: []string{"q", "ctrl+c"}, help: "q", desc: "quit"},
}

// KeyMap defines all keybindings for the application.
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	PageDown  key.Binding
	PageUp    key.Binding
	Top       key.Binding
	Bottom    key.Binding
	CopyTitle key.Binding
	Help      key.Binding
	Quit      key.Binding

	// Jump holds the digit bindings 1-9, one per section index 0-8.
	Jump []key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return FromConfig(config.KeyMapConfig{})
}

// FromConfig builds the keymap, applying user overrides.
func FromConfig(cfg config.KeyMapConfig) KeyMap {
	var km KeyMap
	for _, def := range defaults {
		keys := def.keys
		help := def.help
		if override, ok := cfg.BindingFor(string(def.action)); ok && len(override) > 0 {
			keys = override
			help = strings.Join(override, "/")
		}
		*km.slot(def.action) = key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, def.desc))
	}
	for i := 1; i <= 9; i++ {
		digit := strconv.Itoa(i)
		km.Jump = append(km.Jump, key.NewBinding(key.WithKeys(digit), key.WithHelp(digit, "jump")))
	}
	return km
}

func (km *KeyMap) slot(action Action) *key.Binding {
	switch action {
	case ActionNext:
		return &km.Next
	case ActionPrev:
		return &km.Prev
	case ActionPageDown:
		return &km.PageDown
	case ActionPageUp:
		return &km.PageUp
	case ActionTop:
		return &km.Top
	case ActionBottom:
		return &km.Bottom
	case ActionCopyTitle:
		return &km.CopyTitle
	case ActionHelp:
		return &km.Help
	default:
		return &km.Quit
	}
}

// HintBindings returns the bindings shown in the status bar, in order.
func (km KeyMap) HintBindings() []key.Binding {
	return []key.Binding{km.Next, km.Prev, km.Top, km.Bottom, km.CopyTitle, km.Help, km.Quit}
}
