// models/staff.go
package models

import (
	"time"
)

// Staff represents the staff table. The manager relation is
// self-referential and forms the organization chart.
type Staff struct {
	StaffID   int        `gorm:"primaryKey;column:staff_id" json:"staff_id"`
	Name      string     `gorm:"column:name" json:"name"`
	Title     string     `gorm:"column:title" json:"title"`
	Email     string     `gorm:"column:email;unique" json:"email"`
	ManagerID *int       `gorm:"column:manager_id;index" json:"manager_id,omitempty"`
	CreateAt  time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdateAt  time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`

	// Relations
	Manager *Staff  `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Reports []Staff `gorm:"foreignKey:ManagerID" json:"reports,omitempty"`
}

func (Staff) TableName() string {
	return "staff"
}

// StaffCreateRequest is the payload for creating a staff member
type StaffCreateRequest struct {
	Name      string `json:"name" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Email     string `json:"email" binding:"required"`
	ManagerID *int   `json:"manager_id"`
}

// StaffUpdateRequest is the payload for updating a staff member.
// Pointer fields distinguish "not sent" from "set to empty".
type StaffUpdateRequest struct {
	Name      *string `json:"name"`
	Title     *string `json:"title"`
	Email     *string `json:"email"`
	ManagerID *int    `json:"manager_id"`
}

// StaffResponse is the API representation of a staff member
type StaffResponse struct {
	StaffID     int    `json:"staff_id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Email       string `json:"email"`
	ManagerID   *int   `json:"manager_id,omitempty"`
	ManagerName string `json:"manager_name,omitempty"`
}

func (s *Staff) ToResponse() StaffResponse {
	resp := StaffResponse{
		StaffID:   s.StaffID,
		Name:      s.Name,
		Title:     s.Title,
		Email:     s.Email,
		ManagerID: s.ManagerID,
	}
	if s.Manager != nil {
		resp.ManagerName = s.Manager.Name
	}
	return resp
}

// OrgChartNode is one staff member with their direct reports nested
type OrgChartNode struct {
	StaffID int            `json:"staff_id"`
	Name    string         `json:"name"`
	Title   string         `json:"title"`
	Email   string         `json:"email"`
	Reports []OrgChartNode `json:"reports"`
}
