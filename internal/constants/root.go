package constants

import "time"

const (
	AppName            = "dagvan"
	DefaultKeyringUser = "api-key"
	DefaultConfigPath  = "~/.config/dagvan/dagvan.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Remote API
	DefaultBaseURL = "https://fijnedagvan.nl/jsonscript.php"
	ImageBaseURL   = "https://fijnedagvan.nl/assets/img/dagen/"
	APIKeyHeader   = "X-API-KEY"
	APIKeyEnvVar   = "DAGVAN_API_KEY"

	// Cache constants
	CacheDirName = "cache"
	LongMaxAge   = 24 * time.Hour
	ShortMaxAge  = 4 * time.Hour

	// Scheduling constants
	DailyJobName      = "daily_dagvan_notification"
	SpecificJobPrefix = "specific_day_"
	DailyRetryDelay   = 15 * time.Minute

	JobKindDaily    = "daily"
	JobKindSpecific = "specific"

	// Notify constants
	NotifierLockfileName   = "dagvan-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "nl.fijnedagvan.dagvan"

	// NoDayNotificationID is the fixed sentinel id for the "no special day"
	// notification, so at most one of them is ever visible.
	NoDayNotificationID = -1

	// Deep link targets carried in notification payloads
	DeepLinkDayPrefix = "dagvan://dag/"
	DeepLinkOverview  = "dagvan://overzicht"
)
