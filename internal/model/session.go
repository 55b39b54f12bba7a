package model

// SessionView summarises a player's table for the lobby.
type SessionView struct {
	PlayerID   string      `json:"player_id"`
	Balance    int         `json:"balance"`
	Rank       VIPRank     `json:"rank"`
	Jackpot    int         `json:"jackpot"`
	ActiveGame GameKind    `json:"active_game,omitempty"`
	Vault      []VaultItem `json:"vault"`
}

type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyWarning NotifyKind = "warning"
	NotifyError   NotifyKind = "error"
	NotifySelect  NotifyKind = "select"
)

type Notification struct {
	Kind     NotifyKind
	PlayerID string
	Game     GameKind
	Text     string
}
