package domain

import (
	"strings"
	"time"
)

// PingType is the classification carried by a ping. "normal" and "refresh"
// are pseudo-kinds; everything else is an open emergency.
type PingType string

const (
	TypeNormal   PingType = "normal"
	TypeRefresh  PingType = "refresh"
	TypeRobbery  PingType = "robbery"
	TypeAccident PingType = "accident"
	TypeFlatTire PingType = "flat-tire"
)

func (t PingType) IsAlert() bool {
	switch t {
	case TypeRobbery, TypeAccident, TypeFlatTire:
		return true
	}
	return false
}

// NormalizeType maps the free-form client hint onto the closed set of known
// kinds. Anything unrecognized degrades to "normal".
func NormalizeType(raw string) PingType {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	switch PingType(s) {
	case TypeNormal, "":
		return TypeNormal
	case TypeRefresh:
		return TypeRefresh
	case TypeRobbery:
		return TypeRobbery
	case TypeAccident:
		return TypeAccident
	case TypeFlatTire, "flattire":
		return TypeFlatTire
	}
	return TypeNormal
}

type Location struct {
	Lat *float64 `json:"lat" validate:"required,finite"`
	Lng *float64 `json:"lng" validate:"required,finite"`
}

// PingRequest is the one ingress write. LastType is an optional client hint
// used as the last fallback when a refresh ping has no established
// classification to carry over. Credential comes from the X-Session-Token
// header, never from the body.
type PingRequest struct {
	RiderID    string    `json:"rider_id" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	Vehicle    string    `json:"vehicle" validate:"required"`
	Color      string    `json:"color" validate:"required"`
	Location   *Location `json:"location" validate:"required"`
	ReportedAt time.Time `json:"reported_at"`
	Type       string    `json:"type"`
	LastType   string    `json:"last_type,omitempty"`
	Cancel     bool      `json:"cancel,omitempty"`
	Credential string    `json:"-"`
}

type PingResult struct {
	Accepted   bool     `json:"accepted"`
	NewAlert   bool     `json:"new_alert"`
	StoredType PingType `json:"stored_type"`
}
