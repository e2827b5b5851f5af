package core

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LocationReference is a place extracted from a follow-up answer.
// Only the name is guaranteed; address, place ID and coordinates are
// best-effort output from the model.
type LocationReference struct {
	Name        string  `json:"name"`
	Address     string  `json:"address,omitempty"`
	PlaceID     string  `json:"placeId,omitempty"`
	Coordinates *LatLng `json:"coordinates,omitempty"`
}

// CardState tracks the lifecycle of a conversation card.
type CardState string

const (
	// CardPending means the question is chosen but not yet answered.
	CardPending CardState = "PENDING"
	// CardAnswered means the answer and locations are filled in.
	CardAnswered CardState = "ANSWERED"
	// CardSuggestionsLoading means follow-up suggestions are being fetched.
	CardSuggestionsLoading CardState = "SUGGESTIONS_LOADING"
	// CardSuggestionsReady is the terminal state of a card.
	CardSuggestionsReady CardState = "SUGGESTIONS_READY"
)

// Card is one question/answer unit within a conversation, plus the
// follow-up suggestions derived from its answer.
type Card struct {
	Question         string
	Answer           string
	Locations        []LocationReference
	SmartSuggestions []string
	State            CardState
}
