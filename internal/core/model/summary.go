package model

// Summary is the admin dashboard figure set.
type Summary struct {
	Total     int64   `json:"total"`
	Delivered int64   `json:"delivered"`
	Pending   int64   `json:"pending"`
	Revenue   float64 `json:"revenue"`
}
