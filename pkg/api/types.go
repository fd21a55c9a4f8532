package api

// APIResponse represents a standard API response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// KeyRequest represents the body of a PUT .../keys/{key} request.
type KeyRequest struct {
	Value int32 `json:"value"`
}

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string
	// DefaultK and DefaultB seed newly created trees the registry has not
	// seen before.
	DefaultK int
	DefaultB int
}
