package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wesign/v1/internal/core/infrastructure/crypto"
	"github.com/wesign/v1/internal/core/infrastructure/log"
	"github.com/wesign/v1/pkg/types"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	Verbose bool // 详细模式
}

var (
	globalFlags GlobalFlags
	services    crypto.ServiceOutput
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "wesign",
	Short: "WESIGN 承诺签名命令行工具",
	Long: `WESIGN CLI - secp256k1承诺签名与P2WPKH见证栈工具

提供以下能力:
- 生成secp256k1密钥对
- 从私钥派生压缩公钥
- 对32字节承诺哈希做确定性ECDSA签名（RFC 6979 + low-S）
- 构建P2WPKH见证栈
- 派生bech32隔离见证地址

所有输入输出均为hex编码。`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		input := crypto.ServiceInput{}

		// 详细模式下注入debug级别日志器，输出到stderr避免污染结果
		if globalFlags.Verbose {
			logger, err := log.NewLoggerFromOptions("debug", "stderr", false, false)
			if err != nil {
				return fmt.Errorf("初始化日志器: %w", err)
			}
			input.Logger = logger
		}

		var err error
		services, err = crypto.CreateCryptoServices(input)
		if err != nil {
			return fmt.Errorf("初始化加密服务: %w", err)
		}
		return nil
	},
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// 全局标志
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "详细输出")

	// 添加子命令
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(pubkeyCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(witnessCmd)
	rootCmd.AddCommand(addressCmd)
}

// parseHexKey 解析hex编码的32字节私钥
func parseHexKey(keyHex string) ([]byte, error) {
	privateKey, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("私钥hex解码失败: %w", err)
	}
	if len(privateKey) != types.PrivateKeyLength {
		return nil, fmt.Errorf("私钥长度无效: %d, 期望%d字节", len(privateKey), types.PrivateKeyLength)
	}
	return privateKey, nil
}

// parseHexCommitment 解析hex编码的32字节承诺哈希
func parseHexCommitment(commitmentHex string) ([]byte, error) {
	commitment, err := hex.DecodeString(commitmentHex)
	if err != nil {
		return nil, fmt.Errorf("承诺哈希hex解码失败: %w", err)
	}
	if len(commitment) != types.CommitmentLength {
		return nil, fmt.Errorf("承诺哈希长度无效: %d, 期望%d字节", len(commitment), types.CommitmentLength)
	}
	return commitment, nil
}
