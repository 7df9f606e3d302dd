package config

const (
	EnvPrefix = "moru"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "MORU_APP_ENV"
	EnvPort   = "MORU_APP_PORT"

	EnvDBDSN  = "MORU_DB_DSN"
	EnvDBHost = "MORU_DB_HOST"
	EnvDBUser = "MORU_DB_USER"
	EnvDBName = "MORU_DB_NAME"

	EnvRedisURL = "MORU_REDIS_URL"

	EnvPricingQtyMin = "MORU_PRICING_QTY_MIN"
	EnvPricingQtyMax = "MORU_PRICING_QTY_MAX"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
