// Package domain defines the persistence models for contact-form
// submissions. These types are mapped with GORM and form the core data
// layer of the service.
package domain

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Submission status values written by the service itself. The status column
// is intentionally unconstrained: administrators may set any label through
// the status-update operation.
const (
	StatusNew     = "new"
	StatusReplied = "replied"
)

// Submission represents one contact-form entry: the caller's payload stored
// verbatim as a document, plus server-added metadata.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Email: lowercased email extracted from the payload; indexed so reply
//     dispatch can locate the matching submission. May be empty when the
//     form carried no email field.
//   - Fields: the submitted payload minus reserved keys, as a JSON document.
//   - SubmittedAt: server-side intake timestamp (UTC).
//   - IPAddress / UserAgent: client metadata captured at intake.
//   - Status: lifecycle label, "new" on intake, "replied" after a reply is
//     delivered, otherwise whatever the status updater last wrote.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker; no exposed operation deletes rows,
//     the column exists for audit tooling.
type Submission struct {
	ID          string         `json:"id"           gorm:"type:char(36);primaryKey"`
	Email       string         `json:"email"        gorm:"type:varchar(255);index:idx_submission_email"`
	Fields      JSONMap        `json:"fields"       gorm:"type:text"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"index:idx_submitted_at"`
	IPAddress   string         `json:"ip_address"   gorm:"type:varchar(64)"`
	UserAgent   string         `json:"user_agent"   gorm:"type:varchar(512)"`
	Status      string         `json:"status"       gorm:"type:varchar(32);not null;default:'new';index:idx_submission_status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"            gorm:"index"`
}

// TableName returns the database table name for Submission.
func (Submission) TableName() string { return "submissions" }

// ReservedKeys lists payload keys that are always overwritten server-side.
// Intake strips them from the caller's payload before persisting.
var ReservedKeys = []string{"id", "submitted_at", "ip_address", "user_agent", "status", "updated_at", "created_at"}

// MarshalJSON flattens the stored document into the response object, so a
// submission serializes the way it was submitted: payload fields at the top
// level with the system metadata alongside them. System fields win on key
// collision; intake strips reserved keys so stored rows cannot collide.
func (s Submission) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Fields)+6)
	for k, v := range s.Fields {
		out[k] = v
	}
	out["id"] = s.ID
	out["submitted_at"] = s.SubmittedAt.UTC().Format(time.RFC3339Nano)
	out["ip_address"] = s.IPAddress
	out["user_agent"] = s.UserAgent
	out["status"] = s.Status
	out["updated_at"] = s.UpdatedAt.UTC().Format(time.RFC3339Nano)
	return json.Marshal(out)
}
