package prefs

// Preferences is the persisted per-user state.
type Preferences struct {
	OutputDir string `json:"output_dir"`
}

// Store defines persistence operations for user preferences.
type Store interface {
	Load() (Preferences, error)
	Save(Preferences) error
}
