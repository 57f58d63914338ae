package entities

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings is the single user preferences record. Updates are merged over
// the stored record, absent fields stay untouched.
type Settings struct {
	GoalWeight    *float64 `json:"goalWeight"`
	GoalBodyFat   *float64 `json:"goalBodyFat"`
	Theme         Theme    `json:"theme"`
	DefaultGender Gender   `json:"defaultGender,omitempty"`
	DefaultAge    *int     `json:"defaultAge,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight}
}

// SettingsPatch carries a partial settings update. Nil fields are left as-is.
type SettingsPatch struct {
	GoalWeight    *float64 `json:"goalWeight"`
	GoalBodyFat   *float64 `json:"goalBodyFat"`
	Theme         *Theme   `json:"theme"`
	DefaultGender *Gender  `json:"defaultGender"`
	DefaultAge    *int     `json:"defaultAge"`
}

// Apply merges the patch over s.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.GoalWeight != nil {
		s.GoalWeight = p.GoalWeight
	}
	if p.GoalBodyFat != nil {
		s.GoalBodyFat = p.GoalBodyFat
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.DefaultGender != nil {
		s.DefaultGender = *p.DefaultGender
	}
	if p.DefaultAge != nil {
		s.DefaultAge = p.DefaultAge
	}
	return s
}
