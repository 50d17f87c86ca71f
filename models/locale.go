package models

// Locale selects which parallel text fields are read for public responses.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleFR Locale = "fr"
	LocaleAR Locale = "ar"
)

// ParseLocale maps a lang query value to a supported locale, falling back to
// English for anything unknown.
func ParseLocale(lang string) Locale {
	switch lang {
	case "fr":
		return LocaleFR
	case "ar":
		return LocaleAR
	default:
		return LocaleEN
	}
}

func (p *Product) Title(l Locale) string {
	switch l {
	case LocaleFR:
		return p.TitleFR
	case LocaleAR:
		return p.TitleAR
	default:
		return p.TitleEN
	}
}

func (p *Product) Category(l Locale) string {
	switch l {
	case LocaleFR:
		return p.CategoryFR
	case LocaleAR:
		return p.CategoryAR
	default:
		return p.CategoryEN
	}
}

func (p *Product) Description(l Locale) string {
	switch l {
	case LocaleFR:
		return p.DescriptionFR
	case LocaleAR:
		return p.DescriptionAR
	default:
		return p.DescriptionEN
	}
}

func (s *ProductSpecification) Label(l Locale) string {
	switch l {
	case LocaleFR:
		return s.LabelFR
	case LocaleAR:
		return s.LabelAR
	default:
		return s.LabelEN
	}
}

func (s *ProductSpecification) Value(l Locale) string {
	switch l {
	case LocaleFR:
		return s.ValueFR
	case LocaleAR:
		return s.ValueAR
	default:
		return s.ValueEN
	}
}

func (p *ProductPackaging) Label(l Locale) string {
	switch l {
	case LocaleFR:
		return p.LabelFR
	case LocaleAR:
		return p.LabelAR
	default:
		return p.LabelEN
	}
}

func (p *ProductPackaging) Value(l Locale) string {
	switch l {
	case LocaleFR:
		return p.ValueFR
	case LocaleAR:
		return p.ValueAR
	default:
		return p.ValueEN
	}
}
