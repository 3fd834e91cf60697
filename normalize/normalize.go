package normalize

import (
	"strings"

	"rando-scraper/models"
)

// Normalizer fills the normalized dimension fields of a HikeRecord from its
// raw attributes. It never fails: a value it cannot read resolves to the
// Inconnu member of its dimension.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer instance
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize derives every dimension and display field of rec from rec.Attrs.
func (n *Normalizer) Normalize(rec *models.HikeRecord) {
	attrs := indexAttrs(rec.Attrs)

	rec.Canton = normalizeCanton(attrs.get("canton", "canton / région", "région"))

	rawSaison := attrs.get("saison")
	rec.Saisons = normalizeSaisons(rawSaison)
	rec.Environnements = normalizeEnvironnements(attrs.get("environnement"), rawSaison)

	rec.DistanceKm = parseKm(attrs.get("distance"))
	rec.KmRange = bucketKm(rec.DistanceKm)

	rec.TempsMarche = attrs.get("temps de marche", "durée")
	rec.DureeRange = bucketDuree(parseHeures(rec.TempsMarche))

	rec.MonteeM = parseMetres(attrs.get("montée", "dénivelé positif", "dénivelé"))
	rec.DescenteM = parseMetres(attrs.get("descente", "dénivelé négatif"))
	rec.DeniveleRange = bucketDenivele(rec.MonteeM)

	rec.Difficulte = normalizeDifficulte(attrs.get("difficulté"))

	rec.LieuDepart = attrs.get("lieu de départ", "départ")
	rec.LieuArrivee = attrs.get("lieu d'arrivée", "arrivée")
	rec.AccesTP = attrs.get("accès transports publics", "accès en transports publics")
	rec.RetourTP = attrs.get("retour transports publics", "retour en transports publics")

	rec.TypeParcours = normalizeParcours(
		attrs.get("type de parcours", "parcours"),
		rec.LieuDepart, rec.LieuArrivee,
	)
}

// attrIndex maps normalized labels to raw values.
type attrIndex map[string]string

func indexAttrs(attrs []models.RawAttribute) attrIndex {
	idx := make(attrIndex, len(attrs))
	for _, a := range attrs {
		key := normKey(a.Label)
		if _, ok := idx[key]; !ok {
			idx[key] = strings.TrimSpace(a.Value)
		}
	}
	return idx
}

// get returns the value of the first key present in the index.
func (idx attrIndex) get(keys ...string) string {
	for _, k := range keys {
		if v, ok := idx[k]; ok {
			return v
		}
	}
	return ""
}

// normKey lowercases a string and straightens typographic apostrophes so
// lookups and alias scans tolerate the blog's mixed punctuation.
func normKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "’", "'")
}
