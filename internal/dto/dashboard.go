package dto

import (
	"math"

	"github.com/Twix-Akshat/Todo-Demo/internal/models"
)

// DashboardView is the view model for the landing page.
type DashboardView struct {
	TotalUsers     int64        `json:"total_users"`
	TotalTasks     int64        `json:"total_tasks"`
	CompletedTasks int64        `json:"completed_tasks"`
	PendingTasks   int64        `json:"pending_tasks"`
	CompletionRate int          `json:"completion_rate"`
	RecentTasks    []TaskRowDTO `json:"recent_tasks"`
	RecentUsers    []UserDTO    `json:"recent_users"`
}

// ToDashboardView assembles the landing page stats and recent activity.
func ToDashboardView(totalUsers, totalTasks, completedTasks int64, recentTasks []models.Task, recentUsers []models.User) DashboardView {
	taskRows := make([]TaskRowDTO, len(recentTasks))
	for i, task := range recentTasks {
		taskRows[i] = ToTaskRowDTO(task)
	}

	userRows := make([]UserDTO, len(recentUsers))
	for i, user := range recentUsers {
		userRows[i] = ToUserDTO(user)
	}

	return DashboardView{
		TotalUsers:     totalUsers,
		TotalTasks:     totalTasks,
		CompletedTasks: completedTasks,
		PendingTasks:   totalTasks - completedTasks,
		CompletionRate: CompletionRate(completedTasks, totalTasks),
		RecentTasks:    taskRows,
		RecentUsers:    userRows,
	}
}

// CompletionRate is the percentage of completed tasks, rounded to the
// nearest integer. An empty task table counts as 0, not a division error.
func CompletionRate(done, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
