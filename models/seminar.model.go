package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Seminar delivery modes
const (
	SeminarOnline = "online"
	SeminarOnsite = "onsite"
	SeminarHybrid = "hybrid"
)

// Seminar lifecycle status
const (
	SeminarOpened    = "opened"
	SeminarClosed    = "closed"
	SeminarCompleted = "completed"
)

// LinkItem is a labelled URL stored inside the seminar JSON list columns
// (links, materials and shared certificates).
type LinkItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Seminar struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	CreatedBy        uint           `gorm:"index;not null" json:"created_by"`
	Title            string         `gorm:"uniqueIndex;not null" json:"seminar_title"`
	Subtitle         string         `gorm:"default:''" json:"seminar_subtitle"`
	DateStart        time.Time      `json:"seminar_date_start"`
	DateEnd          time.Time      `json:"seminar_date_end"`
	Host             string         `gorm:"default:''" json:"seminar_host"`
	Description      string         `gorm:"default:''" json:"seminar_desc"`
	Type             string         `gorm:"default:'online'" json:"seminar_type"`
	JP               int            `gorm:"default:0" json:"seminar_jp"`
	Image            string         `gorm:"default:''" json:"seminar_img"`
	Location         string         `gorm:"default:''" json:"seminar_location"`
	Status           string         `gorm:"default:'opened'" json:"seminar_status"`
	RegistrationOpen bool           `gorm:"default:true" json:"seminar_registration_open"`
	RegistrationLink string         `gorm:"default:''" json:"seminar_registration_link"`
	Links            datatypes.JSON `json:"seminar_links"`
	Materials        datatypes.JSON `json:"seminar_materials"`
	Certificates     datatypes.JSON `json:"seminar_certificates"`
	Feedback         string         `gorm:"default:''" json:"seminar_feedback"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// IsValidSeminarType reports whether t is one of the known delivery modes.
func IsValidSeminarType(t string) bool {
	return t == SeminarOnline || t == SeminarOnsite || t == SeminarHybrid
}

// IsValidSeminarStatus reports whether s is one of the lifecycle states.
func IsValidSeminarStatus(s string) bool {
	return s == SeminarOpened || s == SeminarClosed || s == SeminarCompleted
}

// AppendLinkItem appends item to the JSON list stored in raw. A nil or empty
// column is treated as an empty list.
func AppendLinkItem(raw datatypes.JSON, item LinkItem) (datatypes.JSON, error) {
	items, err := DecodeLinkItems(raw)
	if err != nil {
		return nil, err
	}
	items = append(items, item)
	out, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}

// DecodeLinkItems unmarshals a JSON list column into its items.
func DecodeLinkItems(raw datatypes.JSON) ([]LinkItem, error) {
	if len(raw) == 0 {
		return []LinkItem{}, nil
	}
	var items []LinkItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// EncodeLinkItems marshals items into a JSON list column value.
func EncodeLinkItems(items []LinkItem) (datatypes.JSON, error) {
	out, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}
