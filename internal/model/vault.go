package model

type VaultItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Owned bool   `json:"owned"`
}

type ConciergeReply struct {
	Text     string   `json:"text"`
	Sources  []string `json:"sources,omitempty"`
	Fallback bool     `json:"fallback"`
}
