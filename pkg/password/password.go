// Package password bcrypt密码哈希
//
// 学习要点：
//   - bcrypt自动加盐，相同密码每次哈希结果都不同
//   - 校验用CompareHashAndPassword（恒定时间比较），不要自己比较字符串
//   - bcrypt只接受72字节以内的输入，按字节计，多字节字符会更快到上限
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// MaxBytes bcrypt输入长度上限
const MaxBytes = 72

// ErrTooLong 密码超过MaxBytes，属于参数错误
var ErrTooLong = apperrors.New(apperrors.ErrCodePasswordLong, "Password must be at most 72 bytes")

// Cost bcrypt代价因子，测试中可以调低到bcrypt.MinCost
var Cost = bcrypt.DefaultCost

// Hash 计算密码的bcrypt摘要，超长返回ErrTooLong
func Hash(plain string) (string, error) {
	if len(plain) > MaxBytes {
		return "", ErrTooLong
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify 校验明文密码与摘要是否匹配
//
// 不匹配返回 (false, nil)；摘要格式损坏等异常返回error。
func Verify(digest, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
