package models

import "time"

// RawAttribute is one label/value row from the table of a hike page,
// kept in the order it appears on the page.
type RawAttribute struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// UpsertAttr sets the value for label in attrs. A label that is already
// present keeps its original position and only the value is replaced.
func UpsertAttr(attrs []RawAttribute, label, value string) []RawAttribute {
	for i := range attrs {
		if attrs[i].Label == label {
			attrs[i].Value = value
			return attrs
		}
	}
	return append(attrs, RawAttribute{Label: label, Value: value})
}

// HikeRecord represents a single hike: identity, the raw scraped
// attributes, and the normalized dimension values derived from them.
type HikeRecord struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	MapURL string `json:"map_url,omitempty"` // SuisseMobile map link when the page has one

	Attrs []RawAttribute `json:"attrs"`

	Canton         Canton          `json:"canton"`
	TypeParcours   TypeParcours    `json:"type_parcours"`
	KmRange        KmRange         `json:"km_range"`
	DureeRange     DureeRange      `json:"duree_range"`
	Environnements []Environnement `json:"environnements"`
	Difficulte     Difficulte      `json:"difficulte"`
	DeniveleRange  DeniveleRange   `json:"denivele_range"`
	Saisons        []Saison        `json:"saisons"`

	// Raw numerics kept for display alongside the bucketed ranges.
	DistanceKm float64 `json:"distance_km"`
	MonteeM    int     `json:"montee_m"`
	DescenteM  int     `json:"descente_m"`

	// Display fields carried through from the attribute table.
	TempsMarche string `json:"temps_marche,omitempty"`
	LieuDepart  string `json:"lieu_depart,omitempty"`
	LieuArrivee string `json:"lieu_arrivee,omitempty"`
	AccesTP     string `json:"acces_tp,omitempty"`
	RetourTP    string `json:"retour_tp,omitempty"`

	ScrapedAt time.Time `json:"scraped_at"`
}

// RunSummary reports what one scrape run did.
type RunSummary struct {
	RunID            string    `json:"run_id"`
	StartedAt        time.Time `json:"started_at"`
	FinishedAt       time.Time `json:"finished_at"`
	PagesVisited     int       `json:"pages_visited"`
	URLsFound        int       `json:"urls_found"`
	Stored           int       `json:"stored"`
	SkippedParse     int       `json:"skipped_parse"`
	SkippedTransport int       `json:"skipped_transport"`
	SkippedRobots    int       `json:"skipped_robots"`
	Status           string    `json:"status"`
}

// Skipped returns the total number of detail pages skipped during the run.
func (s RunSummary) Skipped() int {
	return s.SkippedParse + s.SkippedTransport + s.SkippedRobots
}

// Duration returns how long the run took.
func (s RunSummary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}
