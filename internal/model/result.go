package model

// Source identifies which cascade stage produced a result. The labels are
// the French ones surfaced to users in exports and the HTTP API.
type Source string

const (
	SourceOverride Source = "Base Interne"
	SourceRegistry Source = "Officiel (API)"
	SourceWeb      Source = "Analyse Web"
	SourceAI       Source = "IA"
	SourceFilter   Source = "Filtre"
	SourceNone     Source = "Échec"
	SourceCrash    Source = "Crash"
)

// State is the terminal state of the cascade for one input.
type State string

const (
	StateIneligible       State = "ineligible"
	StateOverrideHit      State = "override_hit"
	StateRegistryResolved State = "registry_resolved"
	StateLabelScored      State = "label_scored"
	StateWebScored        State = "web_scored"
	StateAIResolved       State = "ai_resolved"
	StateDegradedWebTrace State = "degraded_web_trace"
	StateUnresolved       State = "unresolved"
	StateCrashed          State = "crashed"
)

// Sector sentinels returned when no regular sector could be resolved.
const (
	SectorUnknown    = "Unknown"
	SectorNotFound   = "Non Trouvé"
	SectorReview     = "À Vérifier / Hors Liste"
	SectorOutOfScope = "Hors Scope"
	SectorError      = "Erreur"
)

// ClassificationResult is the outcome of classifying one raw input. It is
// built once per input, never mutated afterwards, and serialized as-is.
type ClassificationResult struct {
	Input        string `json:"input"`
	OfficialName string `json:"official_name"`
	Sector       string `json:"sector"`
	Detail       string `json:"detail"`
	Source       Source `json:"source"`
	State        State  `json:"state"`
	Confidence   string `json:"confidence"`
	Address      string `json:"address"`
	Region       string `json:"region"`
	Headcount    string `json:"headcount"`
	Permalink    string `json:"permalink"`
	IsCompetitor bool   `json:"is_competitor"`
}

// RegistryRecord is one candidate company returned by the registry search
// API. Transient: owned by the API, consumed by the cascade.
type RegistryRecord struct {
	LegalName     string `json:"legal_name"`
	IndustryCode  string `json:"industry_code"`
	IndustryLabel string `json:"industry_label,omitempty"`
	Address       string `json:"address"`
	Region        string `json:"region"`
	PostalCode    string `json:"postal_code"`
	HeadcountCode string `json:"headcount_code"`
	Identifier    string `json:"identifier"`
}

// OverrideRecord is a curated entry of the internal override table.
// A populated Address marks the record as ground truth for identity and
// location, which lets the cascade skip the registry lookup entirely.
type OverrideRecord struct {
	Sector       string `json:"sector"`
	OfficialName string `json:"official_name"`
	Address      string `json:"address,omitempty"`
	Region       string `json:"region,omitempty"`
	Headcount    string `json:"headcount,omitempty"`
	Identifier   string `json:"identifier,omitempty"`
	IsCompetitor bool   `json:"is_competitor,omitempty"`
}
