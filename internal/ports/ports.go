package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Text generation
	UpstreamClient UpstreamClient
	ResponseCache  ResponseCache

	// Audit
	AuditRepository AuditRepository
	RequestLogger   RequestLogger

	// Auth
	TokenService TokenService

	// Cache
	CacheMetrics CacheMetrics

	// Infrastructure
	ConfigProvider   ConfigProvider
	Logger           Logger
	OperationMetrics OperationMetrics
	Database         interface{}
}
