package storage

import "github.com/fijnedagvan/dagvan/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Subscriptions
	AddSubscription(models.Subscription) error
	RemoveSubscription(dayID string) error
	GetSubscriptions() ([]models.Subscription, error)
	HasSubscription(dayID string) (bool, error)

	// Scheduled jobs. SaveJob replaces an existing row of the same name.
	SaveJob(models.Job) error
	DeleteJob(name string) error
	GetJobs() ([]models.Job, error)

	// Utils
	GetConfigPath() string
}
