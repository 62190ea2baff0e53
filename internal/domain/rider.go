package domain

import "time"

// RiderPresence is the displayed state of one rider. RiderID is an opaque
// client-supplied identifier, never generated server-side.
//
// Invariant: CurrentType.IsAlert() implies LastAlertType == CurrentType.
type RiderPresence struct {
	RiderID    string
	Name       string
	Vehicle    string
	Color      string
	Lat        float64
	Lng        float64
	ReportedAt time.Time // client-claimed, may be skewed or out of order

	// LastUpdateAt is the server receipt time and is authoritative for
	// expiry; ReportedAt never is.
	LastUpdateAt time.Time

	CurrentType PingType

	// LastAlertType is sticky: the last genuine alert kind ever observed,
	// empty until the first alert, cleared only by an explicit cancel.
	LastAlertType PingType
}

// AlertMemory shields an open emergency from being erased by a routine ping
// for the duration of the grace window. Purged only by an explicit cancel.
type AlertMemory struct {
	Type       PingType
	Name       string
	Vehicle    string
	Color      string
	Lat        float64
	Lng        float64
	ReportedAt time.Time
	CapturedAt time.Time
}

func (m AlertMemory) Valid(now time.Time, grace time.Duration) bool {
	return now.Sub(m.CapturedAt) <= grace
}

// ReceiptRecord exists only for anti-burst deduplication; no view reads it.
type ReceiptRecord struct {
	LastReceivedAt time.Time
	LastReportedAt time.Time
	LastType       PingType
}
