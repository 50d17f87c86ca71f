package models

import (
	"time"
)

type Product struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug          string `gorm:"uniqueIndex;not null" json:"slug"`
	TitleEN       string `gorm:"not null" json:"title_en"`
	TitleFR       string `json:"title_fr"`
	TitleAR       string `json:"title_ar"`
	CategoryEN    string `json:"category_en"`
	CategoryFR    string `json:"category_fr"`
	CategoryAR    string `json:"category_ar"`
	DescriptionEN string `gorm:"type:text" json:"description_en"`
	DescriptionFR string `gorm:"type:text" json:"description_fr"`
	DescriptionAR string `gorm:"type:text" json:"description_ar"`
	Featured      bool   `json:"featured"`
	Active        bool   `gorm:"default:true" json:"active"`

	Specifications []ProductSpecification `gorm:"constraint:OnDelete:CASCADE" json:"specifications,omitempty"`
	Packaging      []ProductPackaging     `gorm:"constraint:OnDelete:CASCADE" json:"packaging,omitempty"`
	Images         []ProductImage         `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Certifications []Certification        `gorm:"many2many:product_certifications" json:"certifications,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductSpecification is an ordered child row of a product. The whole list is
// replaced on every product write, so rows have no identity across updates.
type ProductSpecification struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	LabelEN   string `json:"label_en"`
	LabelFR   string `json:"label_fr"`
	LabelAR   string `json:"label_ar"`
	ValueEN   string `json:"value_en"`
	ValueFR   string `json:"value_fr"`
	ValueAR   string `json:"value_ar"`
	SpecOrder int    `json:"spec_order"`
}

// ProductPackaging follows the same full-replacement lifecycle as
// ProductSpecification.
type ProductPackaging struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	LabelEN   string `json:"label_en"`
	LabelFR   string `json:"label_fr"`
	LabelAR   string `json:"label_ar"`
	ValueEN   string `json:"value_en"`
	ValueFR   string `json:"value_fr"`
	ValueAR   string `json:"value_ar"`
	PackOrder int    `json:"pack_order"`
}

// ProductImage holds a relative upload path; handlers prefix BASE_URL before
// returning it. At most one image per product may be primary.
type ProductImage struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID    uint   `gorm:"index;not null" json:"product_id"`
	ImageURL     string `gorm:"not null" json:"image_url"`
	IsPrimary    bool   `json:"is_primary"`
	DisplayOrder int    `json:"display_order"`
}

func (ProductPackaging) TableName() string {
	return "product_packaging"
}
