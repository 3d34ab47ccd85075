package cache

import "fmt"

// View names a logical server-rendered view. Mutation handlers declare the
// views they invalidate as values of this type rather than hardcoding path
// strings.
type View struct {
	// Pattern matches the cache keys under which the view is stored.
	Pattern string
}

var (
	// ViewDashboard is the landing page with aggregate stats.
	ViewDashboard = View{Pattern: "dashboard"}

	// ViewUserList is the user listing page.
	ViewUserList = View{Pattern: "users"}
)

// ViewTaskList covers every cached page of one user's task list.
func ViewTaskList(userID uint64) View {
	return View{Pattern: fmt.Sprintf("tasks:%d:page:*", userID)}
}

// DashboardKey is the cache key for the landing page view model.
func DashboardKey() string {
	return "dashboard"
}

// UserListKey is the cache key for the user list view model.
func UserListKey() string {
	return "users"
}

// TaskListKey is the cache key for one page of a user's task list.
func TaskListKey(userID uint64, page int) string {
	return fmt.Sprintf("tasks:%d:page:%d", userID, page)
}
