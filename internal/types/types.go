package types

type StatusResponse struct {
	AIEnabled bool   `json:"aiEnabled"`
	Env       string `json:"env"`
	SessionID string `json:"sessionId"`
}

type SavedStrategy struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Text     string `json:"text"`
}

type ListStrategiesResponse struct {
	Items []SavedStrategy `json:"items"`
	Total int             `json:"total"`
}

type AddStrategyRequest struct {
	Name string `json:"name,optional"`
	Text string `json:"text,optional"`
}

type AddStrategyResponse struct {
	Position int `json:"position"`
	Total    int `json:"total"`
}

type DeleteStrategyRequest struct {
	Position int `path:"position"`
}

type DeleteStrategyResponse struct {
	Removed bool `json:"removed"`
	Total   int  `json:"total"`
}

type EndSessionResponse struct {
	SessionID string `json:"sessionId"`
	Ended     bool   `json:"ended"`
}

type Suggestion struct {
	Strategy    string `json:"strategy"`
	Explanation string `json:"explanation"`
}

type SuggestionStats struct {
	Blocks        int `json:"blocks"`
	WellFormed    int `json:"wellFormed"`
	MissingMarker int `json:"missingMarker"`
	Malformed     int `json:"malformed"`
}

type SuggestRequest struct {
	Situation string `json:"situation,optional"`
}

type SuggestionsResponse struct {
	Records []Suggestion     `json:"records"`
	Usable  bool             `json:"usable"`
	Stats   *SuggestionStats `json:"stats,omitempty"`
}

type HallOfFameRequest struct {
	Sport string `form:"sport,optional"`
}

type Athlete struct {
	Name  string `json:"name"`
	Sport string `json:"sport"`
	Quote string `json:"quote"`
}

type HallOfFameResponse struct {
	Sport    string    `json:"sport"`
	Sports   []string  `json:"sports"`
	Athletes []Athlete `json:"athletes"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
