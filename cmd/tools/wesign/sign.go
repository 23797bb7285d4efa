package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wesign/v1/pkg/types"
)

var (
	signKey        string
	signCommitment string
	signHashType   uint32

	verifyPubkey     string
	verifyCommitment string
	verifySignature  string
)

// signCmd 承诺签名命令
var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "对32字节承诺哈希做确定性签名",
	Long:  "使用RFC 6979确定性随机数对承诺哈希签名，输出DER编码 + 签名哈希字节。",
	RunE: func(cmd *cobra.Command, args []string) error {
		privateKey, err := parseHexKey(signKey)
		if err != nil {
			return err
		}

		commitment, err := parseHexCommitment(signCommitment)
		if err != nil {
			return err
		}

		sigBlob, err := services.SignatureManager.SignCommitmentWithHashType(
			privateKey, commitment, types.SignatureHashType(signHashType))
		if err != nil {
			return fmt.Errorf("签名失败: %w", err)
		}

		if globalFlags.Verbose {
			fmt.Printf("签名长度: %d字节\n", len(sigBlob))
			fmt.Printf("签名哈希类型: %s\n", types.SignatureHashType(signHashType).String())
		}
		fmt.Printf("%s\n", hex.EncodeToString(sigBlob))
		return nil
	},
}

// verifyCmd 签名验证命令
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "验证承诺签名",
	RunE: func(cmd *cobra.Command, args []string) error {
		publicKey, err := hex.DecodeString(verifyPubkey)
		if err != nil {
			return fmt.Errorf("公钥hex解码失败: %w", err)
		}

		commitment, err := parseHexCommitment(verifyCommitment)
		if err != nil {
			return err
		}

		sigBlob, err := hex.DecodeString(verifySignature)
		if err != nil {
			return fmt.Errorf("签名hex解码失败: %w", err)
		}

		if services.SignatureManager.VerifyCommitmentSignature(commitment, sigBlob, publicKey) {
			fmt.Println("签名有效")
			return nil
		}
		return fmt.Errorf("签名无效")
	},
}

func init() {
	signCmd.Flags().StringVar(&signKey, "key", "", "hex编码的32字节私钥")
	signCmd.Flags().StringVar(&signCommitment, "commitment", "", "hex编码的32字节承诺哈希")
	signCmd.Flags().Uint32Var(&signHashType, "sighash-type", uint32(types.SigHashAll), "签名哈希类型")
	_ = signCmd.MarkFlagRequired("key")
	_ = signCmd.MarkFlagRequired("commitment")

	verifyCmd.Flags().StringVar(&verifyPubkey, "pubkey", "", "hex编码的33字节压缩公钥")
	verifyCmd.Flags().StringVar(&verifyCommitment, "commitment", "", "hex编码的32字节承诺哈希")
	verifyCmd.Flags().StringVar(&verifySignature, "signature", "", "hex编码的签名（DER + 签名哈希字节）")
	_ = verifyCmd.MarkFlagRequired("pubkey")
	_ = verifyCmd.MarkFlagRequired("commitment")
	_ = verifyCmd.MarkFlagRequired("signature")
}
