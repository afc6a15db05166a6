package entities

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleCML   Role = "cml"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCML, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id" bson:"_id"`
	Name         string    `gorm:"not null" json:"name" bson:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email" bson:"email"`
	PasswordHash string    `gorm:"column:password;not null" json:"-" bson:"password"`
	Role         Role      `gorm:"size:16" json:"role" bson:"role"`
	PhoneNumber  string    `json:"phoneNumber,omitempty" bson:"phone_number,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
}
