// Package entity はregistrationフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Plan tiers. New users always start on the free plan.
const (
	// PlanFree は無課金プランです。登録時のデフォルト値になります。
	PlanFree int16 = 1
)

// User represents a registered user in the system.
// It maps to the users table; the mail column carries a unique index which is
// the actual correctness guarantee against duplicate registrations.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Mail is the user's email address, stored lowercased.
	// It must be unique across all users.
	Mail string `gorm:"uniqueIndex;size:255;not null"`

	// PenName is the public display name.
	PenName string `gorm:"index;size:64;not null"`

	// RealName is the user's legal name.
	RealName string `gorm:"size:255;not null"`

	// Password is the bcrypt digest of the user's password.
	// This never stores the plaintext.
	Password string `gorm:"size:128;not null"`

	// Zipcode is kept as a string so leading zeros survive.
	Zipcode string `gorm:"size:16;not null"`

	// 住所フィールド（都道府県・市区町村・町名・番地）
	Prefectures    string `gorm:"size:255;not null"`
	Municipalities string `gorm:"size:255;not null"`
	TownName       string `gorm:"size:255;not null"`
	Address        string `gorm:"size:255;not null"`

	// Obj is an optional free-form note.
	Obj string `gorm:"size:255"`

	// Plan is the subscription tier. Assigned by the system at creation,
	// never taken from client input.
	Plan int16 `gorm:"not null;default:1"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `gorm:"column:created"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `gorm:"column:modified"`
}

// TableName は対応するテーブル名を明示します。
func (User) TableName() string { return "users" }
