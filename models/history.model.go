package models

import (
	"time"
)

// Participation status lifecycle. The common path is registered -> attended ->
// submitted -> verified, with rejected reachable from verification and a
// rejected record returning to submitted on resubmission.
const (
	StatusRegistered = "registered"
	StatusAttended   = "attended"
	StatusSubmitted  = "submitted"
	StatusVerified   = "verified"
	StatusRejected   = "rejected"
)

type History struct {
	ID                uint       `gorm:"primarykey" json:"id"`
	UserID            uint       `gorm:"not null;uniqueIndex:idx_user_seminar" json:"user_id"`
	SeminarID         uint       `gorm:"not null;uniqueIndex:idx_user_seminar" json:"seminar_id"`
	Status            string     `gorm:"default:'registered'" json:"status"`
	RegistrationDate  time.Time  `json:"registration_date"`
	ProofImage        string     `gorm:"default:''" json:"proof_image"`
	ProofDescription  string     `gorm:"default:''" json:"proof_description"`
	CertificateNumber string     `gorm:"default:''" json:"certificate_number"`
	CertificateDate   *time.Time `json:"certificate_date"`
	CompetencyType    string     `gorm:"default:''" json:"competency_type"`
	TrainingType      string     `gorm:"default:''" json:"training_type"`
	SubmissionDate    *time.Time `json:"submission_date"`
	CertificateFile   string     `gorm:"default:''" json:"certificate_file"`
	RejectReason      string     `gorm:"default:''" json:"reject_reason"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	Seminar *Seminar `gorm:"foreignKey:SeminarID" json:"seminar,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// IsValidHistoryStatus reports whether s is one of the five lifecycle states.
func IsValidHistoryStatus(s string) bool {
	switch s {
	case StatusRegistered, StatusAttended, StatusSubmitted, StatusVerified, StatusRejected:
		return true
	}
	return false
}

// IsVerdict reports whether s is a value the verify operation may set.
func IsVerdict(s string) bool {
	return s == StatusVerified || s == StatusRejected
}

// NextStatusOnAttend returns the status an existing record takes when its
// attendance code is scanned. Only a registered record advances; every other
// state is echoed back unchanged so a re-scan never regresses progress.
func NextStatusOnAttend(current string) (next string, changed bool) {
	if current == StatusRegistered {
		return StatusAttended, true
	}
	return current, false
}

// CountsTowardJP reports whether a record in status s contributes its
// seminar's JP value to the per-user credit-hour totals.
func CountsTowardJP(s string) bool {
	return s == StatusAttended || s == StatusSubmitted || s == StatusVerified
}
