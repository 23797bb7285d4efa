package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addressPubkey string
	addressHRP    string
)

// addressCmd 地址派生命令
var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "从压缩公钥派生P2WPKH地址",
	RunE: func(cmd *cobra.Command, args []string) error {
		publicKey, err := hex.DecodeString(addressPubkey)
		if err != nil {
			return fmt.Errorf("公钥hex解码失败: %w", err)
		}

		addr, err := services.AddressManager.PublicKeyToP2WPKHAddress(publicKey, addressHRP)
		if err != nil {
			return fmt.Errorf("派生地址: %w", err)
		}

		if globalFlags.Verbose {
			program, err := services.AddressManager.WitnessProgram(publicKey)
			if err != nil {
				return err
			}
			fmt.Printf("见证程序: %s\n", hex.EncodeToString(program))
		}
		fmt.Printf("%s\n", addr)
		return nil
	},
}

func init() {
	addressCmd.Flags().StringVar(&addressPubkey, "pubkey", "", "hex编码的33字节压缩公钥")
	addressCmd.Flags().StringVar(&addressHRP, "hrp", "bc", "bech32地址前缀")
	_ = addressCmd.MarkFlagRequired("pubkey")
}
