package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleEN, ParseLocale("en"))
	assert.Equal(t, LocaleFR, ParseLocale("fr"))
	assert.Equal(t, LocaleAR, ParseLocale("ar"))

	// Anything unknown falls back to English.
	assert.Equal(t, LocaleEN, ParseLocale(""))
	assert.Equal(t, LocaleEN, ParseLocale("de"))
	assert.Equal(t, LocaleEN, ParseLocale("AR"))
}

func TestProductLocaleAccessors(t *testing.T) {
	p := Product{
		TitleEN:       "Dates",
		TitleFR:       "Dattes",
		TitleAR:       "تمور",
		CategoryEN:    "Fruit",
		CategoryFR:    "Fruits",
		CategoryAR:    "فواكه",
		DescriptionEN: "en",
		DescriptionFR: "fr",
		DescriptionAR: "ar",
	}

	assert.Equal(t, "Dattes", p.Title(LocaleFR))
	assert.Equal(t, "تمور", p.Title(LocaleAR))
	assert.Equal(t, "Dates", p.Title(LocaleEN))

	assert.Equal(t, "Fruits", p.Category(LocaleFR))
	assert.Equal(t, "ar", p.Description(LocaleAR))
}

func TestChildLocaleAccessors(t *testing.T) {
	spec := ProductSpecification{
		LabelEN: "Origin", LabelFR: "Origine", LabelAR: "المنشأ",
		ValueEN: "Algeria", ValueFR: "Algérie", ValueAR: "الجزائر",
	}
	assert.Equal(t, "Origine", spec.Label(LocaleFR))
	assert.Equal(t, "الجزائر", spec.Value(LocaleAR))

	pack := ProductPackaging{
		LabelEN: "Bulk", LabelFR: "Vrac", LabelAR: "جملة",
		ValueEN: "10kg", ValueFR: "10kg", ValueAR: "10 كجم",
	}
	assert.Equal(t, "Vrac", pack.Label(LocaleFR))
	assert.Equal(t, "10kg", pack.Value(LocaleEN))
}
