package models

// Category is a read-only classification label attachable to tasks.
type Category struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	// Relations
	Tasks []Task `gorm:"foreignKey:CategoryID" json:"tasks,omitempty"`
}
