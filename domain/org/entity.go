package org

import "time"

// Department groups teams
type Department struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TeamIDs   []string  `json:"team_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Team has one manager and many members
type Team struct {
	ID           string       `json:"id"`
	DepartmentID string       `json:"department_id"`
	Name         string       `json:"name"`
	ManagerID    string       `json:"manager_id"`
	Members      []TeamMember `json:"members"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// TeamMember links a user to a team
type TeamMember struct {
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}
