package gcode

// Profile describes the G-code dialect of a target controller.
type Profile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Units       string `json:"units"`

	// Startup codes
	StartCode []string `json:"start_code"`

	// Motion settings
	RapidMove string `json:"rapid_move"`
	FeedMove  string `json:"feed_move"`

	// End codes; "[SafeZ]" expands to the configured safe height.
	EndCode []string `json:"end_code"`

	// Comment style
	CommentPrefix string `json:"comment_prefix"`
	CommentSuffix string `json:"comment_suffix"`

	// Number formatting
	DecimalPlaces int `json:"decimal_places"`
}

// Built-in profiles
var Profiles = []Profile{
	{
		Name:          "Grbl",
		Description:   "Standard Grbl configuration",
		Units:         "mm",
		StartCode:     []string{"G90", "G21", "G17"},
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M2"},
		CommentPrefix: ";",
		CommentSuffix: "",
		DecimalPlaces: 3,
	},
	{
		Name:          "LinuxCNC",
		Description:   "LinuxCNC / EMC2",
		Units:         "mm",
		StartCode:     []string{"G90", "G21", "G17", "G94"},
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M2"},
		CommentPrefix: "(",
		CommentSuffix: ")",
		DecimalPlaces: 4,
	},
	{
		Name:          "Generic",
		Description:   "Conservative defaults for unknown controllers",
		Units:         "mm",
		StartCode:     []string{"G90", "G21"},
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M2"},
		CommentPrefix: ";",
		CommentSuffix: "",
		DecimalPlaces: 3,
	},
}

// GetProfile returns the profile with the given name, or Generic when the
// name is unknown.
func GetProfile(name string) Profile {
	for _, p := range Profiles {
		if p.Name == name {
			return p
		}
	}
	return Profiles[len(Profiles)-1]
}

// GetProfileNames returns a list of all available profile names.
func GetProfileNames() []string {
	var names []string
	for _, p := range Profiles {
		names = append(names, p.Name)
	}
	return names
}
