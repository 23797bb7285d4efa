package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	keygenHRP string
	pubkeyKey string
)

// keygenCmd 密钥生成命令
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "生成secp256k1密钥对",
	Long:  "生成随机私钥，派生压缩公钥和P2WPKH地址。",
	RunE: func(cmd *cobra.Command, args []string) error {
		privateKey, publicKey, err := services.KeyManager.GenerateKeyPair()
		if err != nil {
			return fmt.Errorf("生成密钥对: %w", err)
		}

		addr, err := services.AddressManager.PublicKeyToP2WPKHAddress(publicKey, keygenHRP)
		if err != nil {
			return fmt.Errorf("派生地址: %w", err)
		}

		fmt.Printf("私钥: %s\n", hex.EncodeToString(privateKey))
		fmt.Printf("公钥: %s\n", hex.EncodeToString(publicKey))
		fmt.Printf("地址: %s\n", addr)
		return nil
	},
}

// pubkeyCmd 公钥派生命令
var pubkeyCmd = &cobra.Command{
	Use:   "pubkey",
	Short: "从私钥派生压缩公钥",
	RunE: func(cmd *cobra.Command, args []string) error {
		privateKey, err := parseHexKey(pubkeyKey)
		if err != nil {
			return err
		}

		publicKey, err := services.KeyManager.DerivePublicKey(privateKey)
		if err != nil {
			return fmt.Errorf("派生公钥: %w", err)
		}

		fmt.Printf("%s\n", hex.EncodeToString(publicKey))
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVar(&keygenHRP, "hrp", "bc", "bech32地址前缀")

	pubkeyCmd.Flags().StringVar(&pubkeyKey, "key", "", "hex编码的32字节私钥")
	_ = pubkeyCmd.MarkFlagRequired("key")
}
