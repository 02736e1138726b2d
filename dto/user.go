package dto

// User is synthesized per request; nothing is stored.
type User struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
