package constants

import "time"

var APIConfig = struct {
	PokeAPIBaseURL    string
	FallbackSpriteURL string
	DefaultBatchType  string
}{
	PokeAPIBaseURL:    "https://pokeapi.co/api/v2",
	FallbackSpriteURL: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png",
	DefaultBatchType:  "fairy",
}

var DisplayLimits = struct {
	DetailAbilities int
}{
	DetailAbilities: 2, // keeps the detail card compact
}

var WebSocketConfig = struct {
	WriteWait      time.Duration
	PongWait       time.Duration
	PingPeriod     time.Duration
	MaxMessageSize int64
}{
	WriteWait:      10 * time.Second,
	PongWait:       60 * time.Second,
	PingPeriod:     54 * time.Second, // must stay below PongWait
	MaxMessageSize: 4096,
}

var ServerConfig = struct {
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	CORSMaxAge        int
}{
	ReadHeaderTimeout: 10 * time.Second,
	ShutdownTimeout:   10 * time.Second,
	CORSMaxAge:        300,
}

// Messages holds every user-facing string. %s verbs take the query or type name.
var Messages = struct {
	EmptyQuery        string
	Searching         string
	Found             string
	NotFound          string
	DetailPlaceholder string
	BatchLoading      string
	GridLoading       string
	BatchFailed       string
	GridUnreachable   string
	GridEmpty         string
	BatchEmpty        string
	BatchReady        string
	NotAvailable      string
}{
	EmptyQuery:        "Enter a Pokémon name or ID to search.",
	Searching:         "Searching for %s...",
	Found:             "%s found.",
	NotFound:          "We could not find that Pokémon. Please try another name.",
	DetailPlaceholder: "The requested Pokémon was not found.",
	BatchLoading:      "Loading all %s Pokémon...",
	GridLoading:       "Loading list...",
	BatchFailed:       "Could not load %s Pokémon. Please try again.",
	GridUnreachable:   "Could not reach PokéAPI right now.",
	GridEmpty:         "Could not load the %s Pokémon.",
	BatchEmpty:        "Could not load any %s Pokémon.",
	BatchReady:        "Ready: %d %s Pokémon.",
	NotAvailable:      "N/A",
}
