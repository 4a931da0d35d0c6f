package i18n

const (
	TermContextGeneral = "general"
	TermContextOrganic = "organic"
)

var agriculturalTerms = map[string]map[string]map[string]string{
	"en": {
		"pesticide":  {TermContextGeneral: "pesticide", TermContextOrganic: "organic pesticide"},
		"fertilizer": {TermContextGeneral: "fertilizer", TermContextOrganic: "organic manure"},
	},
	"hi": {
		"pesticide":  {TermContextGeneral: "कीटनाशक", TermContextOrganic: "जैविक कीटनाशक"},
		"fertilizer": {TermContextGeneral: "उर्वरक", TermContextOrganic: "जैविक खाद"},
	},
	"ml": {
		"pesticide":  {TermContextGeneral: "കീടനാശിനി", TermContextOrganic: "ജൈവ കീടനാശിനി"},
		"fertilizer": {TermContextGeneral: "വളം", TermContextOrganic: "ജൈവ വളം"},
	},
}

// AgriculturalTerm names term in locale for the given context. Unknown
// contexts use the general form, locales without a dictionary use English,
// and unknown terms are returned as given.
func AgriculturalTerm(term, context, locale string) string {
	dict, ok := agriculturalTerms[locale]
	if !ok {
		dict = agriculturalTerms[BaseLocale]
	}
	forms, ok := dict[term]
	if !ok {
		return term
	}
	if s, ok := forms[context]; ok {
		return s
	}
	return forms[TermContextGeneral]
}
