package config

// These global identifiers should exist in all JavaScript environments. A
// generated name never shadows one of them when the caller has no resolver
// of its own.
var knownGlobals = map[string]bool{
	"Array":              true,
	"ArrayBuffer":        true,
	"Boolean":            true,
	"DataView":           true,
	"Date":               true,
	"Error":              true,
	"EvalError":          true,
	"Function":           true,
	"Infinity":           true,
	"JSON":               true,
	"Map":                true,
	"Math":               true,
	"NaN":                true,
	"Number":             true,
	"Object":             true,
	"Promise":            true,
	"Proxy":              true,
	"RangeError":         true,
	"ReferenceError":     true,
	"Reflect":            true,
	"RegExp":             true,
	"Set":                true,
	"String":             true,
	"Symbol":             true,
	"SyntaxError":        true,
	"TypeError":          true,
	"URIError":           true,
	"WeakMap":            true,
	"WeakSet":            true,
	"decodeURI":          true,
	"decodeURIComponent": true,
	"encodeURI":          true,
	"encodeURIComponent": true,
	"eval":               true,
	"globalThis":         true,
	"isFinite":           true,
	"isNaN":              true,
	"parseFloat":         true,
	"parseInt":           true,
	"undefined":          true,

	// Module system globals
	"define":  true,
	"exports": true,
	"module":  true,
	"require": true,
}

func IsKnownGlobal(name string) bool {
	return knownGlobals[name]
}
