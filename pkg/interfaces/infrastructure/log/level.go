// Package log 提供WESIGN系统的日志级别接口定义
//
// 📊 **日志级别管理 (Log Level Management)**
//
// 本文件定义了日志级别的兼容别名，级别类型本身定义在 pkg/types。
package log

import "github.com/wesign/v1/pkg/types"

// 兼容别名（级别类型定义在 pkg/types）
type LogLevel = types.LogLevel

// 常量别名
const (
	DebugLevel = types.DebugLevel
	InfoLevel  = types.InfoLevel
	WarnLevel  = types.WarnLevel
	ErrorLevel = types.ErrorLevel
	FatalLevel = types.FatalLevel
)
