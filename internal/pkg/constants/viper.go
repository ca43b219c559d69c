package constants

const (
	ViperServerAddrKey            = "server.addr"
	ViperServerAllowedOriginsKey  = "server.allowed_origins"
	ViperServerShutdownTimeoutKey = "server.shutdown_timeout"

	ViperLogLevelKey       = "log.level"
	ViperLogDevelopmentKey = "log.development"

	ViperSessionBackendKey = "session.backend"
	ViperSessionTTLKey     = "session.ttl"

	ViperRedisAddrKey           = "redis.addr"
	ViperRedisPasswordKey       = "redis.password"
	ViperRedisDBKey             = "redis.db"
	ViperRedisConnectRetriesKey = "redis.connect_retries"

	ViperCatalogFileKey = "catalog.file"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

const (
	CtxKeyRequestID = "request_id"
	CtxKeySessionID = "session_id"
)
