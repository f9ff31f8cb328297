package models

import (
	"errors"
	"time"

	"gin-shoplist/constants"
	"gin-shoplist/security"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUnsavedPassword = errors.New(constants.ErrUnsavedPassword)

type User struct {
	ID        string     `gorm:"primaryKey;size:36"`
	Email     string     `gorm:"not null;uniqueIndex"`
	Name      string     `gorm:"not null;uniqueIndex"`
	Password  string     `gorm:"not null"`
	Admin     bool       `gorm:"not null"`
	ShopLists []ShopList `gorm:"foreignKey:CreatorID"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// 未保存の平文パスワード。保存前に UserService がハッシュ化する
	plainPassword string
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// SetPassword stages a plain password; it is hashed before the next save.
func (u *User) SetPassword(plain string) {
	u.plainPassword = plain
}

func (u *User) PendingPassword() (string, bool) {
	return u.plainPassword, u.plainPassword != ""
}

// ApplyPasswordHash replaces the stored hash and clears the staged password.
func (u *User) ApplyPasswordHash(hash string) {
	u.Password = hash
	u.plainPassword = ""
}

func (u *User) IsModified() bool {
	return u.plainPassword != ""
}

// VerifyPassword compares plain against the persisted hash. It refuses to
// compare on an unsaved or modified user, whose hash would be stale.
func (u *User) VerifyPassword(hasher security.PasswordHasher, plain string) (bool, error) {
	if u.ID == "" || u.IsModified() {
		return false, ErrUnsavedPassword
	}
	return hasher.Verify(u.Password, plain), nil
}

func (u *User) Role() string {
	if u.Admin {
		return constants.RoleAdmin
	}
	return constants.RoleUser
}
