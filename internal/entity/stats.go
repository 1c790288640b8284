package entity

// Stats aggregates the outcomes of archived games.
type Stats struct {
	HumanWins int `json:"human_wins"`
	AIWins    int `json:"ai_wins"`
	Draws     int `json:"draws"`
	Total     int `json:"total"`
}
