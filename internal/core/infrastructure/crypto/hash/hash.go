package hash

import (
	"crypto/sha256"
	"crypto/subtle"

	cryptointf "github.com/wesign/v1/pkg/interfaces/infrastructure/crypto"
	"golang.org/x/crypto/ripemd160"
)

// 确保HashService实现了cryptointf.HashManager接口
var _ cryptointf.HashManager = (*HashService)(nil)

// HashService 提供哈希计算功能
//
// 所有方法均为纯函数：无共享缓存、无副作用，可安全并发调用。
type HashService struct{}

// NewHashService 创建新的哈希服务
func NewHashService() *HashService {
	return &HashService{}
}

// SHA256 计算SHA-256哈希
//
// 参数:
//   - data: 要计算哈希的数据
//
// 返回:
//   - []byte: 32字节的SHA-256哈希结果
func (s *HashService) SHA256(data []byte) []byte {
	hash := sha256.Sum256(data)
	return hash[:]
}

// DoubleSHA256 计算双重SHA-256哈希
//
// 签名前的承诺哈希由调用方使用本方法计算，签名器不会再次哈希。
//
// 参数:
//   - data: 要计算哈希的数据
//
// 返回:
//   - []byte: 32字节的双重SHA-256哈希结果
func (s *HashService) DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Hash160 计算RIPEMD160(SHA256(data))
//
// P2WPKH见证程序即压缩公钥的hash160。
//
// 参数:
//   - data: 要计算哈希的数据
//
// 返回:
//   - []byte: 20字节的hash160结果
func (s *HashService) Hash160(data []byte) []byte {
	first := sha256.Sum256(data)
	hasher := ripemd160.New()
	hasher.Write(first[:])
	return hasher.Sum(nil)
}

// ConstantTimeCompare 在常量时间内比较两个哈希值是否相等
// 用于防止时序攻击，无论何时都会比较整个字节数组
//
// 参数:
//   - a: 第一个哈希值
//   - b: 第二个哈希值
//
// 返回:
//   - bool: 如果两个哈希值相等返回true，否则返回false
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
