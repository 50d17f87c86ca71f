package models

import "time"

const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusResolved   = "resolved"
)

// Inquiry is created only by the public contact endpoint; admins may later
// change status and notes, nothing else.
type Inquiry struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	Company            string    `gorm:"not null" json:"company"`
	Email              string    `gorm:"not null;index" json:"email"`
	Phone              string    `json:"phone"`
	Country            string    `gorm:"not null" json:"country"`
	Message            string    `gorm:"type:text;not null" json:"message"`
	ProductsInterested string    `json:"products_interested"`
	Status             string    `gorm:"default:'new'" json:"status"`
	Notes              string    `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
}
