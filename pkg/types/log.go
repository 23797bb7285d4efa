// Package types provides shared type definitions.
package types

// LogLevel 日志级别类型
type LogLevel string

// 标准日志级别
const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)
