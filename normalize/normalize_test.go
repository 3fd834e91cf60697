package normalize

import (
	"testing"

	"rando-scraper/models"
)

func TestNormalize(t *testing.T) {
	rec := models.HikeRecord{
		URL:   "https://randoromandie.com/2023/07/14/lac-de-tanay/",
		Title: "Lac de Tanay",
		Attrs: []models.RawAttribute{
			{Label: "Canton", Value: "Valais romand"},
			{Label: "Environnement", Value: "Montagne, bord de lac"},
			{Label: "Temps de marche", Value: "3h30"},
			{Label: "Distance", Value: "7.5 km"},
			{Label: "Montée", Value: "650 m"},
			{Label: "Descente", Value: "650 m"},
			{Label: "Saison", Value: "Toute l’année"},
			{Label: "Difficulté", Value: "T2"},
			{Label: "Lieu de départ", Value: "Le Flon"},
			{Label: "Lieu d’arrivée", Value: "Le Flon"},
			{Label: "Accès transports publics", Value: "Bus jusqu'à Vouvry"},
			{Label: "Retour transports publics", Value: "Bus depuis Vouvry"},
		},
	}

	NewNormalizer().Normalize(&rec)

	if rec.Canton != models.CantonValaisRomand {
		t.Errorf("Canton = %q, want %q", rec.Canton, models.CantonValaisRomand)
	}
	if rec.DistanceKm != 7.5 {
		t.Errorf("DistanceKm = %v, want 7.5", rec.DistanceKm)
	}
	if rec.KmRange != models.Km5a10 {
		t.Errorf("KmRange = %q, want %q", rec.KmRange, models.Km5a10)
	}
	if rec.DureeRange != models.Duree3a5 {
		t.Errorf("DureeRange = %q, want %q", rec.DureeRange, models.Duree3a5)
	}
	if rec.MonteeM != 650 || rec.DescenteM != 650 {
		t.Errorf("MonteeM, DescenteM = %d, %d, want 650, 650", rec.MonteeM, rec.DescenteM)
	}
	if rec.DeniveleRange != models.Denivele500a1000 {
		t.Errorf("DeniveleRange = %q, want %q", rec.DeniveleRange, models.Denivele500a1000)
	}
	if rec.Difficulte != models.DifficulteT2 {
		t.Errorf("Difficulte = %q, want %q", rec.Difficulte, models.DifficulteT2)
	}

	// No type-de-parcours row: derived from the matching endpoints.
	if rec.TypeParcours != models.ParcoursBoucle {
		t.Errorf("TypeParcours = %q, want %q", rec.TypeParcours, models.ParcoursBoucle)
	}

	if len(rec.Saisons) != 4 {
		t.Errorf("Saisons = %v, want all four seasons", rec.Saisons)
	}

	wantEnvs := []models.Environnement{models.EnvMontagne, models.EnvLac}
	if len(rec.Environnements) != len(wantEnvs) {
		t.Fatalf("Environnements = %v, want %v", rec.Environnements, wantEnvs)
	}
	for i := range wantEnvs {
		if rec.Environnements[i] != wantEnvs[i] {
			t.Errorf("Environnements[%d] = %q, want %q", i, rec.Environnements[i], wantEnvs[i])
		}
	}

	if rec.TempsMarche != "3h30" {
		t.Errorf("TempsMarche = %q, want %q", rec.TempsMarche, "3h30")
	}
	if rec.LieuDepart != "Le Flon" || rec.LieuArrivee != "Le Flon" {
		t.Errorf("LieuDepart, LieuArrivee = %q, %q, want Le Flon twice", rec.LieuDepart, rec.LieuArrivee)
	}
	if rec.AccesTP != "Bus jusqu'à Vouvry" {
		t.Errorf("AccesTP = %q, want the bus note", rec.AccesTP)
	}
	if rec.RetourTP != "Bus depuis Vouvry" {
		t.Errorf("RetourTP = %q, want the bus note", rec.RetourTP)
	}
}

func TestNormalizeEmptyAttrs(t *testing.T) {
	rec := models.HikeRecord{Title: "Sans fiche technique"}
	NewNormalizer().Normalize(&rec)

	if rec.Canton != models.CantonInconnu {
		t.Errorf("Canton = %q, want %q", rec.Canton, models.CantonInconnu)
	}
	if rec.TypeParcours != models.ParcoursInconnu {
		t.Errorf("TypeParcours = %q, want %q", rec.TypeParcours, models.ParcoursInconnu)
	}
	if rec.KmRange != models.KmInconnu {
		t.Errorf("KmRange = %q, want %q", rec.KmRange, models.KmInconnu)
	}
	if rec.DureeRange != models.DureeInconnu {
		t.Errorf("DureeRange = %q, want %q", rec.DureeRange, models.DureeInconnu)
	}
	if rec.Difficulte != models.DifficulteInconnu {
		t.Errorf("Difficulte = %q, want %q", rec.Difficulte, models.DifficulteInconnu)
	}
	if rec.DeniveleRange != models.DeniveleInconnu {
		t.Errorf("DeniveleRange = %q, want %q", rec.DeniveleRange, models.DeniveleInconnu)
	}
	if len(rec.Environnements) != 1 || rec.Environnements[0] != models.EnvInconnu {
		t.Errorf("Environnements = %v, want [%q]", rec.Environnements, models.EnvInconnu)
	}
	if len(rec.Saisons) != 1 || rec.Saisons[0] != models.SaisonInconnu {
		t.Errorf("Saisons = %v, want [%q]", rec.Saisons, models.SaisonInconnu)
	}
}

func TestNormalizeDashPlaceholders(t *testing.T) {
	rec := models.HikeRecord{
		Title: "Fiche incomplète",
		Attrs: []models.RawAttribute{
			{Label: "Canton", Value: "Fribourg"},
			{Label: "Distance", Value: "—"},
			{Label: "Temps de marche", Value: "—"},
			{Label: "Montée", Value: ""},
		},
	}
	NewNormalizer().Normalize(&rec)

	if rec.KmRange != models.KmInconnu {
		t.Errorf("KmRange = %q, want %q", rec.KmRange, models.KmInconnu)
	}
	if rec.DureeRange != models.DureeInconnu {
		t.Errorf("DureeRange = %q, want %q", rec.DureeRange, models.DureeInconnu)
	}
	if rec.DeniveleRange != models.DeniveleInconnu {
		t.Errorf("DeniveleRange = %q, want %q", rec.DeniveleRange, models.DeniveleInconnu)
	}
	if rec.Canton != models.CantonFribourg {
		t.Errorf("Canton = %q, want %q", rec.Canton, models.CantonFribourg)
	}
}
