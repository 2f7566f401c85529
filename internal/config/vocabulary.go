package config

// Keywords maps every reserved word to true. Case-sensitive, per spec.
var Keywords = map[string]bool{
	"package":              true,
	"import":               true,
	"genset":                true,
	"disjoint":             true,
	"complete":             true,
	"incomplete":           true,
	"overlapping":          true,
	"general":              true,
	"specifics":            true,
	"where":                true,
	"specializes":          true,
	"datatype":             true,
	"enum":                 true,
	"of":                   true,
	"relation":             true,
	"functional-complexes": true,
}

// ClassStereotypes is the fixed set of class-level stereotype keywords.
var ClassStereotypes = map[string]bool{
	"event":                true,
	"situation":            true,
	"process":              true,
	"category":             true,
	"mixin":                true,
	"phaseMixin":           true,
	"roleMixin":            true,
	"historicalRoleMixin":  true,
	"kind":                 true,
	"collective":           true,
	"quantity":             true,
	"quality":              true,
	"mode":                 true,
	"intrinsicMode":        true,
	"extrinsicMode":        true,
	"subkind":              true,
	"phase":                true,
	"role":                 true,
	"historicalRole":       true,
	"relator":              true,
}

// LegacyHyphenatedStereotypes maps deprecated hyphenated class-stereotype
// spellings to their canonical camelCase form. They are accepted by the
// lexer and retyped as CLASS_STEREOTYPE.
var LegacyHyphenatedStereotypes = map[string]string{
	"intrinsic-mode":  "intrinsicMode",
	"extrinsic-mode":  "extrinsicMode",
	"intrinsic-modes": "intrinsicMode",
	"extrinsic-modes": "extrinsicMode",
}

// RelationStereotypes is the fixed set of relation-level stereotype keywords.
var RelationStereotypes = map[string]bool{
	"material":             true,
	"derivation":           true,
	"comparative":          true,
	"mediation":            true,
	"characterization":     true,
	"externalDependence":   true,
	"componentOf":          true,
	"memberOf":             true,
	"subCollectionOf":      true,
	"subQualityOf":         true,
	"instantiation":        true,
	"termination":          true,
	"participational":      true,
	"participation":        true,
	"historicalDependence": true,
	"creation":             true,
	"manifestation":        true,
	"bringsAbout":          true,
	"triggers":             true,
	"composition":          true,
	"aggregation":          true,
	"inherence":            true,
	"value":                true,
	"formal":               true,
	"constitution":         true,
}

// NativeTypes is the fixed set of primitive attribute types.
var NativeTypes = map[string]bool{
	"number":   true,
	"string":   true,
	"boolean":  true,
	"date":     true,
	"time":     true,
	"datetime": true,
}

// MetaAttributes is the fixed set of attribute meta-attribute keywords.
var MetaAttributes = map[string]bool{
	"ordered":   true,
	"const":     true,
	"derived":   true,
	"subsets":   true,
	"redefines": true,
}

// Stereotype taxonomy groups, per spec.md §4.3.

// UltimateSortals are the top-level sortal stereotypes requiring no parent.
var UltimateSortals = map[string]bool{
	"kind":          true,
	"collective":    true,
	"quantity":      true,
	"relator":       true,
	"quality":       true,
	"mode":          true,
	"intrinsicMode": true,
	"extrinsicMode": true,
	"type":          true,
	"powertype":     true,
}

// NonUltimateSortals must specialize another class.
var NonUltimateSortals = map[string]bool{
	"subkind":        true,
	"phase":          true,
	"role":           true,
	"historicalRole": true,
}

// Rigid stereotypes may never specialize an AntiRigid ancestor.
var Rigid = map[string]bool{
	"kind":       true,
	"collective": true,
	"quantity":   true,
	"subkind":    true,
	"category":   true,
}

// AntiRigid stereotypes may be freely lost without identity change.
var AntiRigid = map[string]bool{
	"role":           true,
	"phase":          true,
	"historicalRole": true,
	"roleMixin":      true,
}

// SemiRigid stereotypes are neither Rigid nor AntiRigid.
var SemiRigid = map[string]bool{
	"mixin":      true,
	"phaseMixin": true,
}
