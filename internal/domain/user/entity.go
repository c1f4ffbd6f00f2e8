package user

import (
	"errors"
	"time"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/password"
)

// User 目录用户（顾客）
// DDD设计说明：
// 1. Username是业务唯一标识，心愿单、购物车、书评都按用户名查找用户
// 2. Password只保存bcrypt摘要，接口序列化时原样输出摘要
// 3. Email创建后不可修改
type User struct {
	ID          uint
	Name        string
	Username    string
	Email       string
	HomeAddress string
	Password    string // bcrypt摘要
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUser 创建用户并哈希密码（工厂方法）
func NewUser(name, username, email, homeAddress, plainPassword string) (*User, error) {
	digest, err := hashPassword(plainPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		Name:        name,
		Username:    username,
		Email:       email,
		HomeAddress: homeAddress,
		Password:    digest,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Profile 可修改的资料
type Profile struct {
	Name        string
	Username    string
	HomeAddress string
	Password    string // 明文，更新时重新哈希
}

// ApplyProfile 覆盖资料字段（领域行为）
func (u *User) ApplyProfile(p Profile) error {
	digest, err := hashPassword(p.Password)
	if err != nil {
		return err
	}

	u.Name = p.Name
	u.Username = p.Username
	u.HomeAddress = p.HomeAddress
	u.Password = digest
	u.UpdatedAt = time.Now()
	return nil
}

// hashPassword 超长密码是调用方的错，原样返回；其余归为内部错误
func hashPassword(plain string) (string, error) {
	digest, err := password.Hash(plain)
	switch {
	case errors.Is(err, password.ErrTooLong):
		return "", err
	case err != nil:
		return "", apperrors.Wrap(err, "hash password")
	}
	return digest, nil
}

// CheckPassword 校验明文密码
func (u *User) CheckPassword(plain string) bool {
	ok, err := password.Verify(u.Password, plain)
	return err == nil && ok
}
