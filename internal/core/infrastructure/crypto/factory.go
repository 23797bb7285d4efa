// Package crypto 提供加密服务工厂实现
package crypto

import (
	"github.com/wesign/v1/internal/core/infrastructure/crypto/address"
	"github.com/wesign/v1/internal/core/infrastructure/crypto/hash"
	"github.com/wesign/v1/internal/core/infrastructure/crypto/key"
	"github.com/wesign/v1/internal/core/infrastructure/crypto/signature"
	"github.com/wesign/v1/internal/core/infrastructure/crypto/witness"
	"github.com/wesign/v1/pkg/interfaces/infrastructure/crypto"
	log "github.com/wesign/v1/pkg/interfaces/infrastructure/log"
)

// ServiceInput 定义加密服务工厂的输入参数
type ServiceInput struct {
	Logger log.Logger `optional:"true"`
}

// ServiceOutput 定义加密服务工厂的输出结果
type ServiceOutput struct {
	KeyManager       crypto.KeyManager
	HashManager      crypto.HashManager
	SignatureManager crypto.SignatureManager
	WitnessManager   crypto.WitnessManager
	AddressManager   crypto.AddressManager
}

// CreateCryptoServices 创建加密服务
//
// 🏭 **加密服务工厂**：
// 该函数负责创建加密模块的所有服务，处理服务间的依赖关系。
// 将复杂的服务创建逻辑从module.go中分离出来，保持module.go的薄实现。
//
// 参数：
//   - input: 服务创建所需的输入参数
//
// 返回：
//   - ServiceOutput: 创建的服务实例集合
//   - error: 创建过程中的错误
func CreateCryptoServices(input ServiceInput) (ServiceOutput, error) {
	// 初始化日志（处理可选Logger）
	var logger log.Logger
	if input.Logger != nil {
		logger = input.Logger.With("module", "crypto")
		logger.Info("初始化加密模块")
	} else {
		// 创建no-op logger作为回退
		logger = &noopLogger{}
	}

	// 创建哈希服务
	hashService := hash.NewHashService()
	logger.Info("哈希服务已初始化")

	// 创建密钥管理服务
	keyManager := key.NewKeyManager()
	logger.Info("密钥管理服务已初始化")

	// 创建签名服务（需要KeyManager依赖）
	sigService := signature.NewSignatureService(keyManager)
	logger.Info("签名服务已初始化")

	// 创建见证栈服务（需要KeyManager和SignatureManager依赖）
	witnessService := witness.NewWitnessService(keyManager, sigService)
	logger.Info("见证栈服务已初始化")

	// 创建地址服务
	addressService := address.NewAddressService(keyManager, hashService)
	logger.Info("地址服务已初始化")

	logger.Info("✅ 加密模块所有服务初始化完成")

	return ServiceOutput{
		KeyManager:       keyManager,
		HashManager:      hashService,
		SignatureManager: sigService,
		WitnessManager:   witnessService,
		AddressManager:   addressService,
	}, nil
}
