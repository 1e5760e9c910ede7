package constants

const (
	// Settings keys
	SettingDailyEnabled = "daily_enabled"
	SettingNoDayEnabled = "no_day_enabled"
	SettingHour         = "notification_hour"
	SettingMinute       = "notification_minute"
	SettingThemeMode    = "theme_mode"
	SettingFontScale    = "font_scale"
	SettingTimezone     = "timezone"

	// Default Settings Values
	DefaultDailyEnabled = true
	DefaultNoDayEnabled = false
	DefaultHour         = 7
	DefaultMinute       = 30
	DefaultThemeMode    = "system"
	DefaultFontScale    = 1.0
	DefaultTimezone     = "Local" // Use system local timezone by default
)
