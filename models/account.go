package models

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Label returns the name shown to shop staff.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Администратор"
	case RoleUser:
		return "Пользователь"
	}
	return string(r)
}

func (r Role) valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Authenticatable is what an identity provider needs from a stored
// account: a stable identifier and a way to verify a password.
type Authenticatable interface {
	Identifier() string
	CheckPassword(plain string) bool
}

var _ Authenticatable = (*Account)(nil)

// Account represents a registered shop user.
// Login and Email are each unique across all accounts.
type Account struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:254;not null" validate:"required,max=254"`
	Surname    string `gorm:"size:254;not null" validate:"required,max=254"`
	Patronymic string `gorm:"size:254;not null;default:''" validate:"max=254"`
	Login      string `gorm:"size:254;not null;uniqueIndex:idx_accounts_login" validate:"required,max=254"`
	Email      string `gorm:"size:254;not null;uniqueIndex:idx_accounts_email" validate:"required,max=254"`
	Password   string `gorm:"size:254;not null" validate:"required,max=254"`
	Role       Role   `gorm:"size:254;not null;default:'user'"`
}

func (a *Account) TableName() string {
	return "accounts"
}

// NewAccount returns an account with the default role.
func NewAccount(name, surname, patronymic, login, email string) *Account {
	return &Account{
		Name:       name,
		Surname:    surname,
		Patronymic: patronymic,
		Login:      login,
		Email:      email,
		Role:       RoleUser,
	}
}

// FullName joins surname, name and patronymic with single spaces. The
// separators are kept even when the patronymic is empty.
func (a *Account) FullName() string {
	return a.Surname + " " + a.Name + " " + a.Patronymic
}

func (a *Account) String() string {
	return a.FullName()
}

func (a *Account) Identifier() string {
	return a.Login
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// SetPassword replaces the stored credential with a bcrypt hash of plain.
func (a *Account) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	a.Password = string(hash)
	return nil
}

func (a *Account) CheckPassword(plain string) bool {
	if a.Password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(plain)) == nil
}

// Validate checks the account before it is written.
func (a *Account) Validate() error {
	if err := validateFields(a); err != nil {
		return err
	}
	if a.Role != "" && !a.Role.valid() {
		return fmt.Errorf("%w: role %q", ErrInvalidChoice, a.Role)
	}
	return nil
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.Role == "" {
		a.Role = RoleUser
	}
	return nil
}
