package users

import "time"

const (
	RoleVisitor = "visitor"
	RoleArtist  = "artist"
	RoleAdmin   = "admin"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User rows carry ids handed out by the sequence allocator, so
// autoIncrement is disabled on the primary key.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	FullName     string `gorm:"not null" json:"full_name"`
	Email        string `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'visitor'" json:"role"`
	Status       string `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleVisitor, RoleArtist, RoleAdmin:
		return true
	}
	return false
}
