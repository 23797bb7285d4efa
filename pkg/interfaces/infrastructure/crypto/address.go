// Package crypto 提供WESIGN系统的地址管理接口定义
//
// 🏠 **地址管理服务 (Address Management Service)**
//
// 本文件定义了P2WPKH地址派生接口，专注于：
// - 见证程序：压缩公钥的hash160（20字节）
// - bech32地址：BIP173隔离见证地址编码
package crypto

// AddressManager 定义地址派生相关接口
type AddressManager interface {
	// WitnessProgram 计算公钥对应的P2WPKH见证程序
	//
	// 参数：
	//   - publicKey: 33字节压缩公钥
	//
	// 返回：
	//   - []byte: 20字节见证程序（hash160）
	//   - error: 公钥无效时的错误
	WitnessProgram(publicKey []byte) ([]byte, error)

	// PublicKeyToP2WPKHAddress 从压缩公钥派生bech32地址
	//
	// 参数：
	//   - publicKey: 33字节压缩公钥
	//   - hrp: bech32人类可读前缀（如"bc"）
	//
	// 返回：
	//   - string: BIP173隔离见证地址
	//   - error: 派生失败时的错误
	PublicKeyToP2WPKHAddress(publicKey []byte, hrp string) (string, error)
}
