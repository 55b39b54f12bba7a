package converter

import (
	dto "royal_casino/internal/api/dto/session"
	"royal_casino/internal/model"
)

func ToGuestResponse(data *model.AuthData) dto.GuestResponse {
	return dto.GuestResponse{
		AccessToken: data.AccessToken,
		PlayerID:    data.PlayerID,
	}
}

func ToLedgerResponse(entries []model.LedgerEntry) dto.LedgerResponse {
	result := make([]dto.LedgerEntry, len(entries))
	for i, e := range entries {
		result[i] = dto.LedgerEntry{
			ID:        e.ID,
			Game:      string(e.Game),
			Amount:    e.Amount,
			Result:    string(e.Result),
			Timestamp: e.Timestamp.UnixMilli(),
		}
	}
	return dto.LedgerResponse{Entries: result}
}

func ToStatsResponse(stats []model.GameStats) dto.StatsResponse {
	result := make([]dto.GameStats, len(stats))
	for i, s := range stats {
		result[i] = dto.GameStats{
			Game:        string(s.Game),
			Rounds:      s.TotalRounds,
			TotalStake:  s.TotalStake,
			TotalPayout: s.TotalPayout,
			RTP:         s.CurrentRTP,
			WindowRTP:   s.WindowRTP,
		}
	}
	return dto.StatsResponse{Games: result}
}

func ToLeaderboardResponse(standings []model.Standing) dto.LeaderboardResponse {
	result := make([]dto.LeaderboardEntry, len(standings))
	for i, s := range standings {
		result[i] = dto.LeaderboardEntry{
			Position: s.Position,
			Name:     s.Name,
			Balance:  s.Balance,
			Rank:     string(s.Rank),
			You:      s.You,
		}
	}
	return dto.LeaderboardResponse{Entries: result}
}
