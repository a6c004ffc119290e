package domain

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetStagingPath() string
	GetMediaPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetChatDBPath() string
	GetGCPProjectID() string
	GetGCPLocation() string
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetSupabaseBucket() string
}
