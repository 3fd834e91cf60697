package filter

import (
	"slices"

	"rando-scraper/models"
)

// Selection holds the values picked per dimension. An empty slice leaves
// its dimension unconstrained; within a dimension any listed value matches,
// across dimensions every constraint must hold.
type Selection struct {
	Cantons        []models.Canton        `json:"cantons,omitempty"`
	Parcours       []models.TypeParcours  `json:"parcours,omitempty"`
	KmRanges       []models.KmRange       `json:"km_ranges,omitempty"`
	Durees         []models.DureeRange    `json:"durees,omitempty"`
	Environnements []models.Environnement `json:"environnements,omitempty"`
	Difficultes    []models.Difficulte    `json:"difficultes,omitempty"`
	Deniveles      []models.DeniveleRange `json:"deniveles,omitempty"`
	Saisons        []models.Saison        `json:"saisons,omitempty"`
}

// IsEmpty reports whether no dimension is constrained.
func (s Selection) IsEmpty() bool {
	return len(s.Cantons) == 0 &&
		len(s.Parcours) == 0 &&
		len(s.KmRanges) == 0 &&
		len(s.Durees) == 0 &&
		len(s.Environnements) == 0 &&
		len(s.Difficultes) == 0 &&
		len(s.Deniveles) == 0 &&
		len(s.Saisons) == 0
}

// Match returns the records satisfying every constrained dimension of sel,
// in their original order. It never modifies its inputs.
func Match(records []models.HikeRecord, sel Selection) []models.HikeRecord {
	matched := make([]models.HikeRecord, 0, len(records))
	for _, rec := range records {
		if Matches(rec, sel) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Matches reports whether one record satisfies every constrained dimension.
// A record whose value is Inconnu only matches when Inconnu is explicitly
// selected.
func Matches(rec models.HikeRecord, sel Selection) bool {
	return matchCanton(rec, sel) &&
		matchParcours(rec, sel) &&
		matchKm(rec, sel) &&
		matchDuree(rec, sel) &&
		matchEnvironnement(rec, sel) &&
		matchDifficulte(rec, sel) &&
		matchDenivele(rec, sel) &&
		matchSaison(rec, sel)
}

// Single-valued dimensions match by membership.

func matchCanton(rec models.HikeRecord, sel Selection) bool {
	return len(sel.Cantons) == 0 || slices.Contains(sel.Cantons, rec.Canton)
}

func matchParcours(rec models.HikeRecord, sel Selection) bool {
	return len(sel.Parcours) == 0 || slices.Contains(sel.Parcours, rec.TypeParcours)
}

func matchKm(rec models.HikeRecord, sel Selection) bool {
	return len(sel.KmRanges) == 0 || slices.Contains(sel.KmRanges, rec.KmRange)
}

func matchDuree(rec models.HikeRecord, sel Selection) bool {
	return len(sel.Durees) == 0 || slices.Contains(sel.Durees, rec.DureeRange)
}

func matchDifficulte(rec models.HikeRecord, sel Selection) bool {
	return len(sel.Difficultes) == 0 || slices.Contains(sel.Difficultes, rec.Difficulte)
}

func matchDenivele(rec models.HikeRecord, sel Selection) bool {
	return len(sel.Deniveles) == 0 || slices.Contains(sel.Deniveles, rec.DeniveleRange)
}

// Multi-valued dimensions match when the record shares at least one value
// with the selection.

func matchEnvironnement(rec models.HikeRecord, sel Selection) bool {
	return len(sel.Environnements) == 0 || intersects(sel.Environnements, rec.Environnements)
}

func matchSaison(rec models.HikeRecord, sel Selection) bool {
	return len(sel.Saisons) == 0 || intersects(sel.Saisons, rec.Saisons)
}

func intersects[T comparable](selected, have []T) bool {
	for _, v := range have {
		if slices.Contains(selected, v) {
			return true
		}
	}
	return false
}
