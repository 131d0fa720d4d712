package util

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// 提交结果，用于日志和监控标签
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)
