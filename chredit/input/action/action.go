package action

// Action represents input actions that can be performed in the editor
type Action int

const (
	// File operations
	SaveCharacter Action = iota
	SaveSamples
	LoadCharacter
	LoadSamples

	// Modes
	ModeCharacter
	ModeNametable
	ModeAttributeTable

	// Canvas view
	ZoomIn
	ZoomOut

	// Tools
	ToolPencil
	ToolLine
	ToolRectangle
	ToolEllipse

	// Editor features
	EditorSnapshot
	EditorAbout
	EditorQuit

	// Debug controls
	DebugLogLevelIncrease
	DebugLogLevelDecrease
)

var names = map[Action]string{
	SaveCharacter:         "save character",
	SaveSamples:           "save samples",
	LoadCharacter:         "load character",
	LoadSamples:           "load samples",
	ModeCharacter:         "character mode",
	ModeNametable:         "nametable mode",
	ModeAttributeTable:    "attribute table mode",
	ZoomIn:                "zoom in",
	ZoomOut:               "zoom out",
	ToolPencil:            "pencil tool",
	ToolLine:              "line tool",
	ToolRectangle:         "rectangle tool",
	ToolEllipse:           "ellipse tool",
	EditorSnapshot:        "snapshot",
	EditorAbout:           "about",
	EditorQuit:            "quit",
	DebugLogLevelIncrease: "log level increase",
	DebugLogLevelDecrease: "log level decrease",
}

func (a Action) String() string {
	if name, ok := names[a]; ok {
		return name
	}
	return "unknown"
}
