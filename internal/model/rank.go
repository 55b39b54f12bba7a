package model

type VIPRank string

const (
	RankGuest     VIPRank = "GUEST"
	RankBaron     VIPRank = "BARON"
	RankViscount  VIPRank = "VISCOUNT"
	RankEarl      VIPRank = "EARL"
	RankDuke      VIPRank = "DUKE"
	RankSovereign VIPRank = "SOVEREIGN"
)

// RankFor maps a balance onto its VIP tier. Thresholds are exclusive.
func RankFor(balance int) VIPRank {
	switch {
	case balance > 1_000_000:
		return RankSovereign
	case balance > 500_000:
		return RankDuke
	case balance > 100_000:
		return RankEarl
	case balance > 50_000:
		return RankViscount
	case balance > 10_000:
		return RankBaron
	}
	return RankGuest
}
