package domain

import "time"

type ActiveRider struct {
	RiderID    string    `json:"rider_id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Type       PingType  `json:"type"`
	Name       string    `json:"name"`
	Vehicle    string    `json:"vehicle"`
	Color      string    `json:"color"`
	ReportedAt time.Time `json:"reported_at"`
}

type ActiveAlert struct {
	RiderID        string    `json:"rider_id"`
	Type           PingType  `json:"type"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	Name           string    `json:"name"`
	Vehicle        string    `json:"vehicle"`
	Color          string    `json:"color"`
	ReportedAt     time.Time `json:"reported_at"`
	ElapsedSeconds int64     `json:"elapsed_seconds"`
}

type ActiveRidersResponse struct {
	Riders []ActiveRider `json:"riders"`
	Count  int           `json:"count"`
}

type ActiveAlertsResponse struct {
	Alerts []ActiveAlert `json:"alerts"`
	Count  int           `json:"count"`
}
