package input

import "github.com/valerio/go-chredit/chredit/input/action"

// DefaultKeyMap provides default key mappings that work across backends.
// Backends can use these mappings as a base and override/extend as needed.
var DefaultKeyMap = map[string]action.Action{
	// Files
	"s": action.SaveCharacter,
	"z": action.SaveSamples,
	"l": action.LoadCharacter,
	"x": action.LoadSamples,

	// Modes
	"1": action.ModeCharacter,
	"2": action.ModeNametable,
	"3": action.ModeAttributeTable,

	// Canvas zoom steps
	"0": action.ZoomIn,
	"9": action.ZoomOut,

	// Tools
	"p": action.ToolPencil,
	"i": action.ToolLine,
	"r": action.ToolRectangle,
	"e": action.ToolEllipse,

	// Editor controls
	"F1":     action.EditorAbout,
	"F12":    action.EditorSnapshot,
	"Escape": action.EditorQuit,
	"q":      action.EditorQuit,

	// Debug controls
	"+": action.DebugLogLevelIncrease,
	"=": action.DebugLogLevelIncrease, // Alternative without shift
	"-": action.DebugLogLevelDecrease,
	"_": action.DebugLogLevelDecrease, // Alternative with shift
}

// DragKey is the key held to pan the canvas in backends with key up events.
const DragKey = "Space"

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
