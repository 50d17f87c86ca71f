// Package seed bootstraps the database on first start: the admin account and
// the baseline certification catalog. Admin credentials are read from the
// environment once, at seed time; authentication afterwards goes only through
// the database.
package seed

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

var defaultCertifications = []models.Certification{
	{
		Name:          "ISO 22000",
		DescriptionEN: "Food safety management system certification",
		DescriptionFR: "Certification du système de management de la sécurité des aliments",
		DescriptionAR: "شهادة نظام إدارة سلامة الغذاء",
	},
	{
		Name:          "HACCP",
		DescriptionEN: "Hazard Analysis Critical Control Points",
		DescriptionFR: "Analyse des dangers et points critiques pour leur maîtrise",
		DescriptionAR: "تحليل المخاطر ونقاط التحكم الحرجة",
	},
	{
		Name:          "Organic Certified",
		DescriptionEN: "Certified organic production",
		DescriptionFR: "Production biologique certifiée",
		DescriptionAR: "إنتاج عضوي معتمد",
	},
}

// Run seeds the admin user and certifications when missing. Idempotent.
func Run(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedCertifications(db)
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded admin user %s", email)
	return nil
}

func seedCertifications(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Certification{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, cert := range defaultCertifications {
		if err := db.Create(&cert).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d certifications", len(defaultCertifications))
	return nil
}
