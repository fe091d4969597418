package domain

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Base
	Email        string `json:"email" gorm:"column:email;size:128;not null"`
	PasswordHash string `json:"-" gorm:"column:password;size:128;not null"`
	FirstName    string `json:"first_name" gorm:"column:first_name;size:128"`
	LastName     string `json:"last_name" gorm:"column:last_name;size:128"`
}

func (User) TableName() string { return "users" }

func NewUser() *User {
	return &User{Base: newBase()}
}

func (*User) Kind() Kind { return KindUser }

func (u *User) Clone() Entity {
	c := *u
	return &c
}

// bcryptInput digests password first because bcrypt rejects inputs longer
// than 72 bytes.
func bcryptInput(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// SetPassword stores a bcrypt hash of password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), bcryptInput(password)) == nil
}
