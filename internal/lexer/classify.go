package lexer

import (
	"strings"

	"github.com/vynijales/ufersa-compilador-tonto/internal/config"
	"github.com/vynijales/ufersa-compilador-tonto/internal/token"
)

var keywordKinds = map[string]token.Kind{
	"package":              token.PACKAGE,
	"import":               token.IMPORT,
	"genset":               token.GENSET,
	"disjoint":             token.DISJOINT,
	"complete":             token.COMPLETE,
	"incomplete":           token.INCOMPLETE,
	"overlapping":          token.OVERLAPPING,
	"general":              token.GENERAL,
	"specifics":            token.SPECIFICS,
	"where":                token.WHERE,
	"specializes":          token.SPECIALIZES,
	"datatype":             token.DATATYPE,
	"enum":                 token.ENUM,
	"of":                   token.OF,
	"relation":             token.RELATION,
	"functional-complexes": token.FUNCTIONAL_COMPLEXES,
}

// classify reclassifies a bare [A-Za-z_][A-Za-z0-9_]* lexeme against the
// fixed vocabulary tables, per spec.md §4.1 point 5. Order follows the
// spec: native types, the DataType-suffix special case, the stereotype
// tables, meta-attributes, reserved words, and finally plain identifier.
func classify(word string) token.Kind {
	if config.NativeTypes[word] {
		return token.NATIVE_TYPE
	}
	if isUserTypeName(word) {
		return token.USER_TYPE
	}
	if config.ClassStereotypes[word] {
		return token.CLASS_STEREOTYPE
	}
	if config.RelationStereotypes[word] {
		return token.RELATION_STEREOTYPE
	}
	if config.MetaAttributes[word] {
		return token.META_ATTRIBUTE
	}
	if kind, ok := keywordKinds[word]; ok {
		return kind
	}
	return token.IDENTIFIER
}

// isUserTypeName reports whether word is an uppercase-first identifier
// ending in "DataType" (e.g. "AddressDataType").
func isUserTypeName(word string) bool {
	if len(word) == 0 || word[0] < 'A' || word[0] > 'Z' {
		return false
	}
	return strings.HasSuffix(word, "DataType") && len(word) > len("DataType")
}

// lookupLegacyHyphenated maps a deprecated hyphenated stereotype spelling
// to its canonical camelCase form.
func lookupLegacyHyphenated(lexeme string) (string, bool) {
	canonical, ok := config.LegacyHyphenatedStereotypes[lexeme]
	return canonical, ok
}
