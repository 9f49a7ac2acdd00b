// ABOUTME: Keybindings parser and loader for the demo host
// ABOUTME: JSON action-to-chords format with reverse key lookup

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// KeyAction represents an action that can be bound to keys.
type KeyAction string

const (
	ActionNextBuffer     KeyAction = "nextBuffer"
	ActionPrevBuffer     KeyAction = "prevBuffer"
	ActionCloseBuffer    KeyAction = "closeBuffer"
	ActionNewBuffer      KeyAction = "newBuffer"
	ActionPickBuffer     KeyAction = "pickBuffer"
	ActionNextGroup      KeyAction = "nextGroup"
	ActionToggleModified KeyAction = "toggleModified"
	ActionCycleNumbering KeyAction = "cycleNumbering"
	ActionQuit           KeyAction = "quit"
)

// Keybindings maps actions to the key chords that trigger them.
type Keybindings struct {
	Bindings map[KeyAction][]string
}

// rawKeybindings is the JSON file format: action name -> chords.
type rawKeybindings map[string][]string

// NewKeybindings returns the default bindings.
func NewKeybindings() *Keybindings {
	kb := &Keybindings{Bindings: make(map[KeyAction][]string)}
	kb.Bindings[ActionNextBuffer] = []string{"tab", "ctrl+n"}
	kb.Bindings[ActionPrevBuffer] = []string{"shift+tab", "ctrl+p"}
	kb.Bindings[ActionCloseBuffer] = []string{"ctrl+w"}
	kb.Bindings[ActionNewBuffer] = []string{"ctrl+t"}
	kb.Bindings[ActionPickBuffer] = []string{"ctrl+b"}
	kb.Bindings[ActionNextGroup] = []string{"ctrl+g"}
	kb.Bindings[ActionToggleModified] = []string{"ctrl+s"}
	kb.Bindings[ActionCycleNumbering] = []string{"ctrl+o"}
	kb.Bindings[ActionQuit] = []string{"ctrl+c", "q"}
	return kb
}

// LoadKeybindings loads bindings from a JSON file, layered over the
// defaults. Unknown action names are ignored.
func LoadKeybindings(path string) (*Keybindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keybindings %s: %w", path, err)
	}

	var raw rawKeybindings
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing keybindings %s: %w", path, err)
	}

	kb := NewKeybindings()
	for name, keys := range raw {
		action := KeyAction(name)
		if _, ok := kb.Bindings[action]; ok {
			kb.Bindings[action] = keys
		}
	}
	return kb, nil
}

// Lookup resolves a pressed key chord to its bound action.
func (kb *Keybindings) Lookup(key string) (KeyAction, bool) {
	if kb == nil {
		return "", false
	}
	for action, keys := range kb.Bindings {
		for _, k := range keys {
			if k == key {
				return action, true
			}
		}
	}
	return "", false
}

// GetBindings returns the chords bound to an action.
func (kb *Keybindings) GetBindings(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}
