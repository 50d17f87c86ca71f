package productcontroller

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

// childPayload carries one specification or packaging line in all locales.
// Position in the slice becomes the stored order.
type childPayload struct {
	LabelEN string `json:"label_en"`
	LabelFR string `json:"label_fr"`
	LabelAR string `json:"label_ar"`
	ValueEN string `json:"value_en"`
	ValueFR string `json:"value_fr"`
	ValueAR string `json:"value_ar"`
}

// productPayload is the full aggregate accepted by create and update. Child
// lists are always the complete desired state, never a delta.
type productPayload struct {
	Slug           string         `json:"slug"`
	TitleEN        string         `json:"title_en"`
	TitleFR        string         `json:"title_fr"`
	TitleAR        string         `json:"title_ar"`
	CategoryEN     string         `json:"category_en"`
	CategoryFR     string         `json:"category_fr"`
	CategoryAR     string         `json:"category_ar"`
	DescriptionEN  string         `json:"description_en"`
	DescriptionFR  string         `json:"description_fr"`
	DescriptionAR  string         `json:"description_ar"`
	Featured       bool           `json:"featured"`
	Active         *bool          `json:"active"`
	Specifications []childPayload `json:"specifications"`
	Packaging      []childPayload `json:"packaging"`
	Certifications []uint         `json:"certifications"`
}

func (p *productPayload) validate() error {
	if p.Slug == "" {
		return fmt.Errorf("slug is required")
	}
	if p.TitleEN == "" {
		return fmt.Errorf("title_en is required")
	}
	return nil
}

func (p *productPayload) apply(product *models.Product) {
	product.Slug = p.Slug
	product.TitleEN = p.TitleEN
	product.TitleFR = p.TitleFR
	product.TitleAR = p.TitleAR
	product.CategoryEN = p.CategoryEN
	product.CategoryFR = p.CategoryFR
	product.CategoryAR = p.CategoryAR
	product.DescriptionEN = p.DescriptionEN
	product.DescriptionFR = p.DescriptionFR
	product.DescriptionAR = p.DescriptionAR
	product.Featured = p.Featured
	if p.Active != nil {
		product.Active = *p.Active
	} else {
		product.Active = true
	}
}

// replaceChildren swaps out every child collection of the product inside the
// caller's transaction: delete all rows, reinsert the supplied lists stamped
// with their zero-based position, and relink certifications. The caller
// commits or rolls back; a partial replacement is never observable.
func replaceChildren(tx *gorm.DB, productID uint, payload *productPayload) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductSpecification{}).Error; err != nil {
		return err
	}
	for i, spec := range payload.Specifications {
		row := models.ProductSpecification{
			ProductID: productID,
			LabelEN:   spec.LabelEN,
			LabelFR:   spec.LabelFR,
			LabelAR:   spec.LabelAR,
			ValueEN:   spec.ValueEN,
			ValueFR:   spec.ValueFR,
			ValueAR:   spec.ValueAR,
			SpecOrder: i,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductPackaging{}).Error; err != nil {
		return err
	}
	for i, pack := range payload.Packaging {
		row := models.ProductPackaging{
			ProductID: productID,
			LabelEN:   pack.LabelEN,
			LabelFR:   pack.LabelFR,
			LabelAR:   pack.LabelAR,
			ValueEN:   pack.ValueEN,
			ValueFR:   pack.ValueFR,
			ValueAR:   pack.ValueAR,
			PackOrder: i,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}

	if err := tx.Exec("DELETE FROM product_certifications WHERE product_id = ?", productID).Error; err != nil {
		return err
	}
	for _, certID := range payload.Certifications {
		var cert models.Certification
		if err := tx.First(&cert, certID).Error; err != nil {
			return fmt.Errorf("certification %d: %w", certID, err)
		}
		if err := tx.Exec(
			"INSERT INTO product_certifications (product_id, certification_id) VALUES (?, ?)",
			productID, certID,
		).Error; err != nil {
			return err
		}
	}

	return nil
}

// baseURL prefixes stored relative upload paths for API consumers.
func baseURL() string {
	if v := os.Getenv("BASE_URL"); v != "" {
		return v
	}
	return "https://1000coupoleexport.com"
}

func absoluteImageURL(relative string) string {
	if relative == "" {
		return ""
	}
	return baseURL() + relative
}
