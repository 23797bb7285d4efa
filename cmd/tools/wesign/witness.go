package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	witnessKey        string
	witnessCommitment string
)

// witnessCmd 见证栈构建命令
var witnessCmd = &cobra.Command{
	Use:   "witness",
	Short: "构建P2WPKH见证栈",
	Long:  "对承诺哈希签名并派生压缩公钥，组装为两项见证栈后序列化输出。",
	RunE: func(cmd *cobra.Command, args []string) error {
		privateKey, err := parseHexKey(witnessKey)
		if err != nil {
			return err
		}

		commitment, err := parseHexCommitment(witnessCommitment)
		if err != nil {
			return err
		}

		stack, err := services.WitnessManager.BuildP2WPKHWitness(privateKey, commitment)
		if err != nil {
			return fmt.Errorf("构建见证栈: %w", err)
		}

		if globalFlags.Verbose {
			for i, item := range stack.Items() {
				fmt.Printf("见证项 %d (%d字节): %s\n", i, len(item), hex.EncodeToString(item))
			}
		}
		fmt.Printf("%s\n", hex.EncodeToString(stack.Serialize()))
		return nil
	},
}

func init() {
	witnessCmd.Flags().StringVar(&witnessKey, "key", "", "hex编码的32字节私钥")
	witnessCmd.Flags().StringVar(&witnessCommitment, "commitment", "", "hex编码的32字节承诺哈希")
	_ = witnessCmd.MarkFlagRequired("key")
	_ = witnessCmd.MarkFlagRequired("commitment")
}
