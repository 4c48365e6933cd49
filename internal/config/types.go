package config

// Settings is the resolved runtime configuration.
type Settings struct {
	Log   LogSettings   `mapstructure:"log" validate:"required"`
	Theme ThemeSettings `mapstructure:"theme" validate:"required"`
}

// LogSettings controls the zerolog output.
type LogSettings struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=console json"`
	// File receives log output while the TUI owns the terminal. Empty disables
	// logging for interactive sessions.
	File string `mapstructure:"file" validate:"omitempty,state_path"`
}

// ThemeSettings controls where the theme preference lives and what is used
// when nothing has been stored yet.
type ThemeSettings struct {
	File     string `mapstructure:"file" validate:"required,state_path"`
	Fallback string `mapstructure:"fallback" validate:"required,oneof=system light dark"`
}

// HumanReadable reports whether logs should use the console writer.
func (l LogSettings) HumanReadable() bool {
	return l.Format == "console"
}
