package domain

import "time"

// ConfigEntry is one runtime configuration row, editable without redeploy.
type ConfigEntry struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
