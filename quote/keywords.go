package quote

// reserved lists keywords that force identifier quoting even when the
// spelling would otherwise pass bare.  The set is the fully reserved keywords
// of the SQL grammar; unreserved and column-name keywords stay bare.
var reserved = map[string]bool{
	"all":               true,
	"analyse":           true,
	"analyze":           true,
	"and":               true,
	"any":               true,
	"array":             true,
	"as":                true,
	"asc":               true,
	"asymmetric":        true,
	"both":              true,
	"case":              true,
	"cast":              true,
	"check":             true,
	"collate":           true,
	"column":            true,
	"constraint":        true,
	"create":            true,
	"current_catalog":   true,
	"current_date":      true,
	"current_role":      true,
	"current_time":      true,
	"current_timestamp": true,
	"current_user":      true,
	"default":           true,
	"deferrable":        true,
	"desc":              true,
	"distinct":          true,
	"do":                true,
	"else":              true,
	"end":               true,
	"except":            true,
	"false":             true,
	"fetch":             true,
	"for":               true,
	"foreign":           true,
	"from":              true,
	"grant":             true,
	"group":             true,
	"having":            true,
	"in":                true,
	"initially":         true,
	"intersect":         true,
	"into":              true,
	"lateral":           true,
	"leading":           true,
	"limit":             true,
	"localtime":         true,
	"localtimestamp":    true,
	"not":               true,
	"null":              true,
	"offset":            true,
	"on":                true,
	"only":              true,
	"or":                true,
	"order":             true,
	"placing":           true,
	"primary":           true,
	"references":        true,
	"returning":         true,
	"select":            true,
	"session_user":      true,
	"some":              true,
	"symmetric":         true,
	"table":             true,
	"then":              true,
	"to":                true,
	"trailing":          true,
	"true":              true,
	"union":             true,
	"unique":            true,
	"user":              true,
	"using":             true,
	"variadic":          true,
	"when":              true,
	"where":             true,
	"window":            true,
	"with":              true,
}

// IsReserved reports whether v is a reserved keyword.  Matching is exact;
// reserved words are checked after the spelling rules, which already quote
// anything with uppercase letters.
func IsReserved(v string) bool {
	return reserved[v]
}
