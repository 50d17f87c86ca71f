package models

type Certification struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"uniqueIndex;not null" json:"name"`
	LogoURL       string    `json:"logo_url"`
	DescriptionEN string    `gorm:"type:text" json:"description_en"`
	DescriptionFR string    `gorm:"type:text" json:"description_fr"`
	DescriptionAR string    `gorm:"type:text" json:"description_ar"`
	Products      []Product `gorm:"many2many:product_certifications" json:"-"`
}
