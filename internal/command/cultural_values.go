package command

// Closed cultural-value names, grounded 1:1 on the original's CulturalValue
// enum (original_source/src/model/cultural_value.rs). BlendCultures.Values
// is still a plain []string (the open-enum pattern store.OpenString
// documents: a caller may pass any value, these are just the eight named
// ones the original ships).
const (
	CulturalValueMartial      = "martial"
	CulturalValueMercantile   = "mercantile"
	CulturalValueScholarly    = "scholarly"
	CulturalValueAgrarian     = "agrarian"
	CulturalValueSpiritual    = "spiritual"
	CulturalValueArtistic     = "artistic"
	CulturalValueSeafaring    = "seafaring"
	CulturalValueIsolationist = "isolationist"
)

// OpposingCulturalValuePairs mirrors the original's OPPOSING_VALUE_PAIRS: a
// culture's value set must never contain both halves of a pair.
var OpposingCulturalValuePairs = [...][2]string{
	{CulturalValueMartial, CulturalValueScholarly},
	{CulturalValueMercantile, CulturalValueIsolationist},
	{CulturalValueSeafaring, CulturalValueAgrarian},
}

// filterOpposingCulturalValues walks values in declared order, keeping
// each one unless its opposing partner was already kept. This is the
// original's generate_cultural_values rule ("no opposing pair in the
// result") applied as validation of a caller-supplied list rather than as
// a generation-time candidate filter, since BlendCultures receives Values
// from its caller instead of drawing them from a domain RNG.
func filterOpposingCulturalValues(values []string) []string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if opposesAny(kept, v) {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

// opposesAny reports whether v's opposing partner (per
// OpposingCulturalValuePairs) already appears in kept.
func opposesAny(kept []string, v string) bool {
	for _, pair := range OpposingCulturalValuePairs {
		var opposite string
		switch v {
		case pair[0]:
			opposite = pair[1]
		case pair[1]:
			opposite = pair[0]
		default:
			continue
		}
		if contains(kept, opposite) {
			return true
		}
	}
	return false
}
