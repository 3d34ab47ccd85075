package constants

import "time"

const (
	// TaskPageSize is the number of tasks shown per task-list page.
	TaskPageSize = 5

	// MinPage is the lowest valid page number.
	MinPage = 1

	// DashboardRecentTasks is the number of tasks shown on the landing page.
	DashboardRecentTasks = 5

	// DashboardRecentUsers is the number of users shown on the landing page.
	DashboardRecentUsers = 3

	// ViewCacheTTL bounds staleness of cached view models between
	// explicit invalidations.
	ViewCacheTTL = 5 * time.Minute

	// ViewCachePrefix namespaces all view cache keys in Redis.
	ViewCachePrefix = "views:"
)
