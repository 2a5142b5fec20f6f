package domain

import "time"

// ActivityKind names a security-relevant event recorded in the activity feed.
type ActivityKind string

const (
	ActivityUserRegistered ActivityKind = "user_registered"
	ActivityLoginSucceeded ActivityKind = "login_succeeded"
	ActivityLoginFailed    ActivityKind = "login_failed"
	ActivityLoginThrottled ActivityKind = "login_throttled"
	ActivityProjectCreated ActivityKind = "project_created"
	ActivityMemberInvited  ActivityKind = "member_invited"
)

// ActivityEvent is a single entry in the activity feed. SubjectID is the
// sharding key: events for the same subject are processed in order.
type ActivityEvent struct {
	Kind      ActivityKind `json:"kind"`
	SubjectID string       `json:"subject_id"`
	ProjectID ProjectID    `json:"project_id,omitempty"`
	Detail    string       `json:"detail,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}
