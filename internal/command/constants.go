package command

// These constants are carried over unchanged from the source this kernel
// was distilled from: they are exercised by the concrete scenarios spec §8
// names (cultural rebellion failure, religious schism share transfer), so
// changing them changes those scenarios' expected numbers.
const (
	// RebellionFailedStabilityPenalty is subtracted from a faction's
	// stability when a CulturalRebellion against it fails.
	RebellionFailedStabilityPenalty = 0.10
	// RebellionCrackdownCultureBoost is added to the ruling culture's
	// settlement share when a rebellion against it fails, before
	// renormalization.
	RebellionCrackdownCultureBoost = 0.10

	// FoundedFervor, FoundedProselytism, FoundedOrthodoxy, and
	// FoundedWorshipStrength are the initial doctrinal intensities of a
	// newly founded religion.
	FoundedFervor          = 0.5
	FoundedProselytism     = 0.5
	FoundedOrthodoxy       = 0.5
	FoundedWorshipStrength = 0.5

	// SchismFervorBoost is added to the parent religion's fervor (clamped
	// to 1.0) to derive the breakaway religion's fervor.
	SchismFervorBoost = 0.1
	// SchismOrthodoxyMult scales the parent's orthodoxy to derive the
	// breakaway religion's orthodoxy.
	SchismOrthodoxyMult = 0.8
	// SchismDefaultFervor, SchismDefaultProselytism, and
	// SchismDefaultOrthodoxy are used when the parent religion entity is
	// missing (defensive default, should not occur in practice).
	SchismDefaultFervor      = 0.6
	SchismDefaultProselytism = 0.5
	SchismDefaultOrthodoxy   = 0.4
	// SchismShareTransferFrac is the fraction of the parent's settlement
	// share transferred to the new religion before renormalization.
	SchismShareTransferFrac = 0.3

	// FactionInheritanceHeirShare is the fraction of a dissolving
	// faction's treasury transferred to its heir faction, grounded on the
	// teacher's inheritWealth 50/50 agent-wealth/settlement-treasury
	// split (internal/engine/simulation.go in the teacher repo), applied
	// here at faction scale since FactionCore (not PersonCore) carries a
	// treasury. The remainder is forfeited: there is no settlement-level
	// treasury fallback at this granularity, matching inheritWealth's own
	// "if no heir found, treasury gets everything" branch inverted (here,
	// no heir given or alive means the whole treasury, not just the
	// remainder, is lost).
	FactionInheritanceHeirShare = 0.5
)
