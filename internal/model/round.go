package model

type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
	OutcomePush Outcome = "PUSH"
)

// RoundResult is produced once per round. Delta is the credit applied at
// settlement when positive, or minus the stake already debited on a loss.
type RoundResult struct {
	Outcome Outcome `json:"outcome"`
	Stake   int     `json:"stake"`
	Payout  int     `json:"payout"`
	Delta   int     `json:"delta"`
	Label   string  `json:"label"`
	Detail  string  `json:"detail,omitempty"`
}

func NewRoundResult(stake, payout int, label, detail string) *RoundResult {
	res := &RoundResult{
		Stake:  stake,
		Payout: payout,
		Label:  label,
		Detail: detail,
	}
	switch {
	case payout > stake:
		res.Outcome = OutcomeWin
	case payout == stake && stake > 0:
		res.Outcome = OutcomePush
	case payout > 0:
		res.Outcome = OutcomeWin
	default:
		res.Outcome = OutcomeLoss
	}
	if payout > 0 {
		res.Delta = payout
	} else {
		res.Delta = -stake
	}
	return res
}
