// Package crypto 提供WESIGN系统的见证构建接口定义
//
// 📦 **见证构建服务 (Witness Construction Service)**
//
// 本文件定义了P2WPKH见证栈的构建接口，专注于：
// - 见证栈组装：[签名, 压缩公钥] 两项结构
// - 长度前缀编码：1字节项数 + 每项1字节长度前缀
// - 不可变语义：见证栈构建后不再修改，交给交易组装器使用
//
// 🔗 **组件关系**
// - WitnessManager：依赖SignatureManager获得签名、KeyManager派生公钥
package crypto

// WitnessStack P2WPKH见证栈
//
// 按序存放的长度前缀字节项。P2WPKH固定为两项：[签名blob, 压缩公钥]。
// 每次签名操作新建一个见证栈，构建后不可变。
type WitnessStack interface {
	// Items 返回见证栈的有序项（副本）
	Items() [][]byte

	// Serialize 序列化见证栈
	//
	// 布局：1字节项数，随后每项为1字节长度前缀 + 项字节。
	// P2WPKH总长度为 1 + 1 + len(sig) + 1 + 33 字节。
	Serialize() []byte
}

// WitnessManager 定义P2WPKH见证构建相关接口
type WitnessManager interface {
	// BuildP2WPKHWitness 构建P2WPKH输入的见证栈
	//
	// 内部调用签名器获得签名blob、密钥管理器派生压缩公钥，
	// 组装为两项见证栈。任一子调用失败则整体失败。
	//
	// 参数：
	//   - privateKey: 32字节私钥
	//   - commitment: 32字节承诺哈希
	//
	// 返回：
	//   - WitnessStack: 构建完成的见证栈（不可变）
	//   - error: 构建失败时的错误
	BuildP2WPKHWitness(privateKey []byte, commitment []byte) (WitnessStack, error)
}
