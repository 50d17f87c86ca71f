package models

// AdminUser is the only credential source for the admin API. There is no
// self-registration; the first user is seeded from the environment.
type AdminUser struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:'admin'" json:"role"`
}
