package domain

type EngineStats struct {
	TrackedRiders int `json:"tracked_riders"`
	VisibleRiders int `json:"visible_riders"`
	OpenAlerts    int `json:"open_alerts"`
	AlertMemories int `json:"alert_memories"`
}
