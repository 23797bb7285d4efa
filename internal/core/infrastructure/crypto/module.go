// Package crypto 提供加密相关功能
package crypto

import (
	"github.com/wesign/v1/pkg/interfaces/infrastructure/crypto"
	log "github.com/wesign/v1/pkg/interfaces/infrastructure/log"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CryptoParams 定义加密模块的依赖参数
type CryptoParams struct {
	fx.In

	Logger log.Logger `optional:"true"` // 日志记录器
}

// CryptoOutput 定义加密模块的输出结构
type CryptoOutput struct {
	fx.Out

	// 各个子服务 - 移除命名以支持无名注入
	KeyManager       crypto.KeyManager
	HashManager      crypto.HashManager
	SignatureManager crypto.SignatureManager
	WitnessManager   crypto.WitnessManager
	AddressManager   crypto.AddressManager
}

// Module 返回加密模块
func Module() fx.Option {
	return fx.Module("crypto",
		// 提供加密服务
		fx.Provide(ProvideCryptoServices),
	)
}

// ProvideCryptoServices 提供加密服务
func ProvideCryptoServices(params CryptoParams) (CryptoOutput, error) {
	serviceInput := ServiceInput{
		Logger: params.Logger,
	}

	serviceOutput, err := CreateCryptoServices(serviceInput)
	if err != nil {
		return CryptoOutput{}, err
	}

	return CryptoOutput{
		KeyManager:       serviceOutput.KeyManager,
		HashManager:      serviceOutput.HashManager,
		SignatureManager: serviceOutput.SignatureManager,
		WitnessManager:   serviceOutput.WitnessManager,
		AddressManager:   serviceOutput.AddressManager,
	}, nil
}

// noopLogger 是一个无操作的Logger实现，用于可选Logger为nil时的回退
type noopLogger struct{}

func (l *noopLogger) Debug(msg string)                          {}
func (l *noopLogger) Debugf(format string, args ...interface{}) {}
func (l *noopLogger) Info(msg string)                           {}
func (l *noopLogger) Infof(format string, args ...interface{})  {}
func (l *noopLogger) Warn(msg string)                           {}
func (l *noopLogger) Warnf(format string, args ...interface{})  {}
func (l *noopLogger) Error(msg string)                          {}
func (l *noopLogger) Errorf(format string, args ...interface{}) {}
func (l *noopLogger) Fatal(msg string)                          {}
func (l *noopLogger) Fatalf(format string, args ...interface{}) {}
func (l *noopLogger) With(keyvals ...interface{}) log.Logger    { return l }
func (l *noopLogger) Sync() error                               { return nil }
func (l *noopLogger) GetZapLogger() *zap.Logger                 { return nil }
