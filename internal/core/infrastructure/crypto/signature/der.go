package signature

import (
	"fmt"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ASN.1标识符（[ISO/IEC 8825-1] DER编码）
const (
	// asn1SequenceID SEQUENCE结构标识
	asn1SequenceID = 0x30

	// asn1IntegerID INTEGER标识
	asn1IntegerID = 0x02
)

// 最小/最大DER签名长度：
// 最小 0x30 [len] 0x02 0x01 [r] 0x02 0x01 [s]（8字节）
// 最大 r、s 各33字节（32字节值 + 1字节符号填充）
const (
	minDERSigLen = 8
	maxDERSigLen = 72
)

// Signature secp256k1 ECDSA签名（r, s对）
//
// r、s均为 [1, N-1] 范围内的正整数。规范化（低S）在签名阶段完成，
// Serialize 不再做任何修正，只负责按DER规则编码既有值。
type Signature struct {
	r secp.ModNScalar
	s secp.ModNScalar
}

// NewSignature 由r、s标量构造签名
func NewSignature(r, s *secp.ModNScalar) *Signature {
	return &Signature{r: *r, s: *s}
}

// R 返回签名的r分量（32字节大端）
func (sig *Signature) R() [32]byte {
	var b [32]byte
	sig.r.PutBytes(&b)
	return b
}

// S 返回签名的s分量（32字节大端）
func (sig *Signature) S() [32]byte {
	var b [32]byte
	sig.s.PutBytes(&b)
	return b
}

// IsLowS 判断s分量是否满足低S规范（BIP62：s ≤ N/2）
func (sig *Signature) IsLowS() bool {
	return !sig.s.IsOverHalfOrder()
}

// Serialize 按DER规则序列化签名
//
// 编码格式：
//
//	0x30 <总长度> 0x02 <R长度> <R> 0x02 <S长度> <S>
//
// R、S使用最小长度的大端二进制补码安全编码：去除多余的前导零字节；
// 若最高位为1则补一个零字节，避免被解释为负数。
func (sig *Signature) Serialize() []byte {
	var rBytes, sBytes [32]byte
	sig.r.PutBytes(&rBytes)
	sig.s.PutBytes(&sBytes)

	// 预留1字节符号填充位置，再按规则裁剪前导零
	var rBuf, sBuf [33]byte
	copy(rBuf[1:], rBytes[:])
	copy(sBuf[1:], sBytes[:])
	canonR, canonS := canonicalizeInt(rBuf[:]), canonicalizeInt(sBuf[:])

	// 总长度：每个magic与长度字节各1（共6），加上R、S本体
	totalLen := 6 + len(canonR) + len(canonS)
	b := make([]byte, 0, totalLen)
	b = append(b, asn1SequenceID)
	b = append(b, byte(totalLen-2))
	b = append(b, asn1IntegerID)
	b = append(b, byte(len(canonR)))
	b = append(b, canonR...)
	b = append(b, asn1IntegerID)
	b = append(b, byte(len(canonS)))
	b = append(b, canonS...)
	return b
}

// canonicalizeInt 将整数编码裁剪为DER最小长度形式
//
// 去除前导零字节，但若下一字节最高位为1则保留一个零字节作为符号位，
// 且至少保留一个字节。
func canonicalizeInt(buf []byte) []byte {
	for len(buf) > 1 && buf[0] == 0x00 && buf[1]&0x80 == 0 {
		buf = buf[1:]
	}
	return buf
}

// ParseDERSignature 解析DER编码的签名
//
// 严格按规范解析：结构完整、整数最小长度编码、r与s均为 [1, N-1]
// 范围内的正整数。解析-再编码与原始字节一致（规范编码的往返性质）。
//
// 参数：
//   - der: DER编码签名（不含签名哈希字节）
//
// 返回：
//   - *Signature: 解析后的签名
//   - error: 编码不合法时的错误
func ParseDERSignature(der []byte) (*Signature, error) {
	if len(der) < minDERSigLen {
		return nil, fmt.Errorf("DER签名过短: %d字节", len(der))
	}
	if len(der) > maxDERSigLen {
		return nil, fmt.Errorf("DER签名过长: %d字节", len(der))
	}

	if der[0] != asn1SequenceID {
		return nil, fmt.Errorf("DER签名缺少SEQUENCE标识: 0x%02x", der[0])
	}
	if int(der[1]) != len(der)-2 {
		return nil, fmt.Errorf("DER签名总长度字段错误: %d, 实际%d", der[1], len(der)-2)
	}

	// 解析r
	rBytes, rest, err := parseDERInt(der[2:])
	if err != nil {
		return nil, fmt.Errorf("解析r失败: %w", err)
	}

	// 解析s
	sBytes, rest, err := parseDERInt(rest)
	if err != nil {
		return nil, fmt.Errorf("解析s失败: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("DER签名存在%d字节冗余数据", len(rest))
	}

	var r, s secp.ModNScalar
	if overflow := r.SetByteSlice(rBytes); overflow || r.IsZero() {
		return nil, fmt.Errorf("签名r值无效")
	}
	if overflow := s.SetByteSlice(sBytes); overflow || s.IsZero() {
		return nil, fmt.Errorf("签名s值无效")
	}

	return &Signature{r: r, s: s}, nil
}

// parseDERInt 解析一个DER INTEGER，返回其值字节和剩余数据
func parseDERInt(buf []byte) (value []byte, rest []byte, err error) {
	if len(buf) < 2 {
		return nil, nil, fmt.Errorf("整数结构不完整")
	}
	if buf[0] != asn1IntegerID {
		return nil, nil, fmt.Errorf("缺少INTEGER标识: 0x%02x", buf[0])
	}

	valLen := int(buf[1])
	if valLen == 0 {
		return nil, nil, fmt.Errorf("整数长度为零")
	}
	if len(buf) < 2+valLen {
		return nil, nil, fmt.Errorf("整数数据不完整: 声明%d字节, 剩余%d字节", valLen, len(buf)-2)
	}

	val := buf[2 : 2+valLen]

	// 负数在此场景中不合法
	if val[0]&0x80 != 0 {
		return nil, nil, fmt.Errorf("整数为负值")
	}
	// 最小长度编码：前导零字节仅在符号位需要时允许
	if valLen > 1 && val[0] == 0x00 && val[1]&0x80 == 0 {
		return nil, nil, fmt.Errorf("整数编码非最小长度")
	}
	// 去掉符号填充后不得超过32字节
	if valLen > 33 || (valLen == 33 && val[0] != 0x00) {
		return nil, nil, fmt.Errorf("整数超出256位范围")
	}

	return val, buf[2+valLen:], nil
}
