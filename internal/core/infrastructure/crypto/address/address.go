package address

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/wesign/v1/internal/core/infrastructure/crypto/hash"
	"github.com/wesign/v1/internal/core/infrastructure/crypto/key"
	cryptointf "github.com/wesign/v1/pkg/interfaces/infrastructure/crypto"
	"github.com/wesign/v1/pkg/types"
)

// 确保AddressService实现了cryptointf.AddressManager接口
var _ cryptointf.AddressManager = (*AddressService)(nil)

// 错误定义
var (
	ErrInvalidHRP = errors.New("无效的bech32前缀")
)

// 隔离见证版本号（P2WPKH为v0）
const witnessVersionV0 = 0x00

// DefaultHRP 默认的bech32人类可读前缀
const DefaultHRP = "bc"

// AddressService 提供P2WPKH地址派生功能
//
// 见证程序为压缩公钥的hash160（20字节），地址为其BIP173 bech32编码。
type AddressService struct {
	keyManager  *key.KeyManager
	hashService *hash.HashService
}

// NewAddressService 创建新的地址服务
func NewAddressService(keyManager *key.KeyManager, hashService *hash.HashService) *AddressService {
	return &AddressService{
		keyManager:  keyManager,
		hashService: hashService,
	}
}

// WitnessProgram 计算公钥对应的P2WPKH见证程序
//
// 参数：
//   - publicKey: 33字节压缩公钥
//
// 返回：
//   - []byte: 20字节见证程序（hash160）
//   - error: 公钥无效时的错误
func (as *AddressService) WitnessProgram(publicKey []byte) ([]byte, error) {
	if err := as.keyManager.ValidatePublicKey(publicKey); err != nil {
		return nil, err
	}

	program := as.hashService.Hash160(publicKey)
	if len(program) != types.WitnessProgramLength {
		return nil, fmt.Errorf("见证程序长度异常: %d, 期望%d字节", len(program), types.WitnessProgramLength)
	}

	return program, nil
}

// PublicKeyToP2WPKHAddress 从压缩公钥派生bech32地址
//
// BIP173编码：见证版本0 + 8bit→5bit转换后的见证程序。
//
// 参数：
//   - publicKey: 33字节压缩公钥
//   - hrp: bech32人类可读前缀（如"bc"）
//
// 返回：
//   - string: BIP173隔离见证地址
//   - error: 派生失败时的错误
func (as *AddressService) PublicKeyToP2WPKHAddress(publicKey []byte, hrp string) (string, error) {
	if hrp == "" {
		return "", ErrInvalidHRP
	}

	program, err := as.WitnessProgram(publicKey)
	if err != nil {
		return "", err
	}

	// 见证程序按8bit→5bit重新分组
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("见证程序位转换失败: %w", err)
	}

	// 版本字节在前，随后是转换后的程序数据
	combined := make([]byte, 0, len(converted)+1)
	combined = append(combined, witnessVersionV0)
	combined = append(combined, converted...)

	addr, err := bech32.Encode(hrp, combined)
	if err != nil {
		return "", fmt.Errorf("bech32编码失败: %w", err)
	}

	return addr, nil
}
