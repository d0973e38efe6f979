package baby

import "time"

// Baby is one tracked child profile. All care entries hang off a baby, and
// a baby belongs to exactly one user.
type Baby struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
}
