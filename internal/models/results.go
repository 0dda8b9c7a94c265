package models

// DrawResult is the outcome of a daily draw. On a failed gate (already drawn
// today) only Success and Message are set.
type DrawResult struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	Result            int    `json:"result"`
	Change            int    `json:"change"`
	CurrentLikability int    `json:"current_likability"`
	MaxLikability     int    `json:"max_likability"`
}

// AffinityStatus is the read-only classification of a user's standing.
type AffinityStatus struct {
	CurrentLikability int     `json:"current_likability"`
	MaxLikability     int     `json:"max_likability"`
	Ratio             float64 `json:"ratio"`
	Level             string  `json:"level"`
	TotalSignDays     int     `json:"total_sign_days"`
}

// OpResult is the generic outcome of a mutating operation.
type OpResult struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	CurrentLikability int    `json:"current_likability,omitempty"`
	MaxLikability     int    `json:"max_likability,omitempty"`
}

// Profile is the read-only view of a user's profile record.
type Profile struct {
	Nickname   string `json:"nickname"`
	Impression string `json:"impression"`
}
