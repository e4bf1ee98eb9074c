package entities

import "time"

type ApiKey struct {
	ApiKey    string    `db:"id"`
	Label     string    `db:"label"`
	Status    bool      `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
