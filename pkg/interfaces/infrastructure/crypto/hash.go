// Package crypto 提供WESIGN系统的哈希计算接口定义
//
// #️⃣ **哈希计算服务 (Hash Computation Service)**
//
// 本文件定义了WESIGN系统的哈希接口，专注于：
// - SHA256：标准单次哈希
// - DoubleSHA256：Bitcoin标准的双重SHA256（dsha256）
// - Hash160：RIPEMD160(SHA256(x))，用于P2WPKH见证程序
//
// 🏗️ **设计原则**
// - 纯函数：无共享缓存、无副作用，可安全并发调用
// - 职责边界：承诺哈希由调用方预先计算，签名器不重复哈希
package crypto

// HashManager 定义哈希计算相关接口
type HashManager interface {
	// SHA256 计算SHA-256哈希
	//
	// 参数:
	//   - data: 要计算哈希的数据
	//
	// 返回:
	//   - []byte: 32字节的SHA-256哈希结果
	SHA256(data []byte) []byte

	// DoubleSHA256 计算双重SHA-256哈希
	//
	// 调用方在签名前用本方法计算承诺哈希（签名器不会再次哈希）。
	//
	// 参数:
	//   - data: 要计算哈希的数据
	//
	// 返回:
	//   - []byte: 32字节的双重SHA-256哈希结果
	DoubleSHA256(data []byte) []byte

	// Hash160 计算RIPEMD160(SHA256(data))
	//
	// 参数:
	//   - data: 要计算哈希的数据（通常为压缩公钥）
	//
	// 返回:
	//   - []byte: 20字节的hash160结果
	Hash160(data []byte) []byte
}
