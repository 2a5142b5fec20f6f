package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrMembershipNotFound = errors.New("membership not found")

// ProjectID identifies a project. A Membership always carries a ProjectID,
// never a half-resolved project value.
type ProjectID string

// AccessLevel is the tier a member holds within a project.
type AccessLevel int

const (
	AccessDeveloper  AccessLevel = 30
	AccessMaintainer AccessLevel = 40
	AccessOwner      AccessLevel = 50
)

// Valid reports whether the level is one of the enumerated tiers.
func (a AccessLevel) Valid() bool {
	switch a {
	case AccessDeveloper, AccessMaintainer, AccessOwner:
		return true
	}
	return false
}

func (a AccessLevel) String() string {
	switch a {
	case AccessDeveloper:
		return "developer"
	case AccessMaintainer:
		return "maintainer"
	case AccessOwner:
		return "owner"
	}
	return "unknown"
}

// Project is a container for tasks and memberships.
type Project struct {
	ID          ProjectID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Members     []Membership `json:"members,omitempty"`
}

// Membership binds one user to one project at a given access level. The
// OWNER row is created exactly once, synchronously, when the project is
// created; further rows come from explicit invitations.
type Membership struct {
	ID          string      `json:"id"`
	UserID      UserID      `json:"user_id"`
	ProjectID   ProjectID   `json:"project_id"`
	AccessLevel AccessLevel `json:"access_level"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Populated only on eager lookups; nil otherwise.
	User    *User    `json:"user,omitempty"`
	Project *Project `json:"project,omitempty"`
}
