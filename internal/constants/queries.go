package constants

const (
	GetStatusByApiKey = `
	SELECT id, label, status, created_at FROM api_keys WHERE id = $1
	`

	InsertApiKey = `
	INSERT INTO api_keys (id, label, status) VALUES ($1, $2, true)
	`
)
