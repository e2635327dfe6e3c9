// Package extract turns the raw text of an invoice PDF into structured
// fields. Classification picks a vendor format from marker substrings, then
// the matching extractor runs its field patterns. Every field degrades to a
// documented sentinel instead of failing the document.
package extract

import "strings"

// FormatKind selects which field-extraction strategy applies to a document.
type FormatKind string

const (
	FormatClassic   FormatKind = "classic"
	FormatColombian FormatKind = "colombian-electronic"
	FormatEnglish   FormatKind = "english-invoice"
	FormatGlobalAVL FormatKind = "global-avl"
	FormatUnknown   FormatKind = "unknown"
)

// KnownFormats lists every format a rule may map to.
func KnownFormats() []FormatKind {
	return []FormatKind{FormatClassic, FormatColombian, FormatEnglish, FormatGlobalAVL, FormatUnknown}
}

// MarkerClassicHeader is the table header that both identifies the classic
// format and anchors its description block.
const MarkerClassicHeader = "DescriptionQuantityUnit priceAmount"

// MarkerRule maps literal marker substrings to a format. All AllOf markers
// must be present, and at least one AnyOf marker when AnyOf is non-empty.
type MarkerRule struct {
	Format FormatKind `mapstructure:"format" json:"format"`
	AllOf  []string   `mapstructure:"all_of" json:"all_of,omitempty"`
	AnyOf  []string   `mapstructure:"any_of" json:"any_of,omitempty"`
}

// Matches reports whether text satisfies the rule's marker sets.
func (r MarkerRule) Matches(text string) bool {
	for _, m := range r.AllOf {
		if !strings.Contains(text, m) {
			return false
		}
	}
	if len(r.AnyOf) == 0 {
		return len(r.AllOf) > 0
	}
	for _, m := range r.AnyOf {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// DefaultRules returns the built-in prioritized rule list. Order is
// significant: the first matching rule wins, so overlapping marker sets
// resolve to the earlier format.
func DefaultRules() []MarkerRule {
	return []MarkerRule{
		{Format: FormatClassic, AllOf: []string{MarkerClassicHeader}},
		{Format: FormatColombian, AllOf: []string{"Factura Electrónica", "NIT"}},
		{Format: FormatEnglish, AllOf: []string{"INVOICE", "INVOICE NUMBER"}},
		{Format: FormatGlobalAVL, AnyOf: []string{"Global AVL", "Hiber Data Stream"}},
	}
}

// Classify returns the format of the first rule matching text, or
// FormatUnknown when no rule matches. Classification is a pure function of
// its inputs.
func Classify(text string, rules []MarkerRule) FormatKind {
	for _, r := range rules {
		if r.Matches(text) {
			return r.Format
		}
	}
	return FormatUnknown
}
