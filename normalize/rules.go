package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"rando-scraper/models"
)

// cantonAliases maps lowercase needles to canton values, scanned in order.
// Haut-Valais sits before Valais romand so it is not captured by the
// "valais" needle.
var cantonAliases = []struct {
	needle string
	canton models.Canton
}{
	{"genève", models.CantonGeneve},
	{"geneve", models.CantonGeneve},
	{"france", models.CantonFranceVoisine},
	{"vaud", models.CantonVaud},
	{"fribourg", models.CantonFribourg},
	{"haut-valais", models.CantonHautValais},
	{"haut valais", models.CantonHautValais},
	{"valais", models.CantonValaisRomand},
	{"neuchâtel", models.CantonNeuchatel},
	{"neuchatel", models.CantonNeuchatel},
	{"jura", models.CantonJura},
	{"berne", models.CantonBerne},
	{"bern", models.CantonBerne},
}

// normalizeCanton maps a raw canton cell to its closed value.
func normalizeCanton(raw string) models.Canton {
	needle := normKey(raw)
	if needle == "" {
		return models.CantonInconnu
	}
	for _, alias := range cantonAliases {
		if strings.Contains(needle, alias.needle) {
			return alias.canton
		}
	}
	return models.CantonInconnu
}

// parcoursAliases maps raw type-de-parcours needles to their closed value.
// An aller-retour ends where it starts, so it counts as a loop.
var parcoursAliases = []struct {
	needle   string
	parcours models.TypeParcours
}{
	{"boucle", models.ParcoursBoucle},
	{"circuit", models.ParcoursBoucle},
	{"aller-retour", models.ParcoursBoucle},
	{"aller retour", models.ParcoursBoucle},
	{"linéaire", models.ParcoursLineaire},
	{"lineaire", models.ParcoursLineaire},
	{"traversée", models.ParcoursLineaire},
	{"traversee", models.ParcoursLineaire},
}

// normalizeParcours maps the raw type cell to its closed value. Most pages
// carry no such cell; loop vs linear is then derived from the start and end
// points.
func normalizeParcours(raw, depart, arrivee string) models.TypeParcours {
	needle := normKey(raw)
	if needle != "" {
		for _, alias := range parcoursAliases {
			if strings.Contains(needle, alias.needle) {
				return alias.parcours
			}
		}
	}
	if depart != "" && arrivee != "" {
		if normKey(depart) == normKey(arrivee) {
			return models.ParcoursBoucle
		}
		return models.ParcoursLineaire
	}
	return models.ParcoursInconnu
}

// envKeywords maps lowercase needles to environnement tags, scanned in
// order over the raw cell.
var envKeywords = []struct {
	needle string
	env    models.Environnement
}{
	{"montagne", models.EnvMontagne},
	{"campagne", models.EnvCampagne},
	{"forêt", models.EnvForet},
	{"foret", models.EnvForet},
	{"bois", models.EnvForet},
	{"rivière", models.EnvRiviere},
	{"riviere", models.EnvRiviere},
	{"lac", models.EnvLac},
	{"bisse", models.EnvBisses},
	{"gorge", models.EnvGorges},
	{"hivernal", models.EnvHivernal},
	{"raquette", models.EnvHivernal},
	{"ville", models.EnvVille},
}

// normalizeEnvironnements derives the landscape tags from the raw
// environnement cell. A winter mention in the saison cell adds the Hivernal
// tag, the way the blog itself categorizes snowshoe routes.
func normalizeEnvironnements(raw, rawSaison string) []models.Environnement {
	needle := normKey(raw)

	var envs []models.Environnement
	seen := make(map[models.Environnement]bool)
	add := func(e models.Environnement) {
		if !seen[e] {
			seen[e] = true
			envs = append(envs, e)
		}
	}

	for _, kw := range envKeywords {
		if strings.Contains(needle, kw.needle) {
			add(kw.env)
		}
	}
	if strings.Contains(normKey(rawSaison), "hiver") {
		add(models.EnvHivernal)
	}

	if len(envs) == 0 {
		return []models.Environnement{models.EnvInconnu}
	}
	return envs
}

// saisonKeywords maps lowercase needles to seasons.
var saisonKeywords = []struct {
	needle string
	saison models.Saison
}{
	{"printemps", models.SaisonPrintemps},
	{"été", models.SaisonEte},
	{"ete", models.SaisonEte},
	{"automne", models.SaisonAutomne},
	{"hiver", models.SaisonHiver},
}

// allSeasons is what "Toute l'année" expands to.
var allSeasons = []models.Saison{
	models.SaisonPrintemps,
	models.SaisonEte,
	models.SaisonAutomne,
	models.SaisonHiver,
}

// normalizeSaisons maps the raw saison cell to one or more seasons.
func normalizeSaisons(raw string) []models.Saison {
	needle := normKey(raw)
	if needle == "" {
		return []models.Saison{models.SaisonInconnu}
	}

	if strings.Contains(needle, "toute l'année") || strings.Contains(needle, "toute l'annee") {
		out := make([]models.Saison, len(allSeasons))
		copy(out, allSeasons)
		return out
	}

	var saisons []models.Saison
	seen := make(map[models.Saison]bool)
	for _, kw := range saisonKeywords {
		if strings.Contains(needle, kw.needle) && !seen[kw.saison] {
			seen[kw.saison] = true
			saisons = append(saisons, kw.saison)
		}
	}
	if len(saisons) == 0 {
		return []models.Saison{models.SaisonInconnu}
	}
	return saisons
}

// difficulteRe matches SAC grades like "T2" or "T 3".
var difficulteRe = regexp.MustCompile(`(?i)\bT\s*([1-5])\b`)

// normalizeDifficulte reads the SAC grade from the raw difficulté cell.
func normalizeDifficulte(raw string) models.Difficulte {
	m := difficulteRe.FindStringSubmatch(raw)
	if m == nil {
		return models.DifficulteInconnu
	}
	return models.Difficulte("T" + m[1])
}

// kmRe matches the first kilometre figure, comma decimals accepted.
var kmRe = regexp.MustCompile(`(?i)([0-9]+(?:[.,][0-9]+)?)\s*km`)

// metresRe matches a metre figure whose digits may be grouped with spaces,
// like "1 200 m".
var metresRe = regexp.MustCompile(`(?i)([0-9][0-9\s\x{00a0}\x{202f}']*)m\b`)

// heuresRe matches walking times like "3h06", "2 h 30" or "4h".
var heuresRe = regexp.MustCompile(`(?i)([0-9]+)\s*h\s*([0-9]{1,2})?`)

// numberRe matches a bare numeric token.
var numberRe = regexp.MustCompile(`[0-9]+(?:[.,][0-9]+)?`)

// parseKm reads a distance in kilometres from a raw cell, 0 when absent or
// unreadable.
func parseKm(raw string) float64 {
	token := ""
	if m := kmRe.FindStringSubmatch(raw); m != nil {
		token = m[1]
	} else {
		token = numberRe.FindString(raw)
	}
	if token == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseMetres reads a metre figure from a raw cell, 0 when absent or
// unreadable.
func parseMetres(raw string) int {
	token := ""
	if m := metresRe.FindStringSubmatch(raw); m != nil {
		token = m[1]
	} else {
		token = numberRe.FindString(raw)
	}
	token = strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, token)
	if token == "" {
		return 0
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0
	}
	return v
}

// parseHeures reads a walking time as decimal hours, 0 when absent or
// unreadable. A bare figure next to "min" counts as minutes.
func parseHeures(raw string) float64 {
	if m := heuresRe.FindStringSubmatch(raw); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes := 0
		if m[2] != "" {
			minutes, _ = strconv.Atoi(m[2])
		}
		return float64(hours) + float64(minutes)/60
	}

	token := numberRe.FindString(raw)
	if token == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", "."), 64)
	if err != nil {
		return 0
	}
	if strings.Contains(strings.ToLower(raw), "min") {
		return v / 60
	}
	return v
}

// Buckets use one half-open convention: a value on a boundary belongs to
// the upper bucket. Zero means the figure was missing or unreadable and
// maps to Inconnu, never to the lowest bucket.

func bucketKm(km float64) models.KmRange {
	switch {
	case km <= 0:
		return models.KmInconnu
	case km < 5:
		return models.KmMoins5
	case km < 10:
		return models.Km5a10
	case km < 15:
		return models.Km10a15
	case km < 20:
		return models.Km15a20
	default:
		return models.KmPlus20
	}
}

func bucketDuree(heures float64) models.DureeRange {
	switch {
	case heures <= 0:
		return models.DureeInconnu
	case heures < 3:
		return models.DureeMoins3
	case heures < 5:
		return models.Duree3a5
	default:
		return models.DureePlus5
	}
}

func bucketDenivele(metres int) models.DeniveleRange {
	switch {
	case metres <= 0:
		return models.DeniveleInconnu
	case metres < 500:
		return models.DeniveleMoins500
	case metres < 1000:
		return models.Denivele500a1000
	default:
		return models.DenivelePlus1000
	}
}
