package normalize

import (
	"math"
	"testing"

	"rando-scraper/models"
)

func TestParseKm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"dot decimal with unit", "7.2 km", 7.2},
		{"comma decimal", "7,2 km", 7.2},
		{"no space before unit", "12km", 12},
		{"bare number", "env. 8.5", 8.5},
		{"dash placeholder", "—", 0},
		{"empty", "", 0},
		{"no figure", "variable", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseKm(tt.input); math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("parseKm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHeures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"hours and minutes", "3h06", 3.1},
		{"spaced", "2 h 30", 2.5},
		{"hours only", "4h", 4},
		{"written out", "3 heures", 3},
		{"minutes only", "45 min", 0.75},
		{"dash placeholder", "—", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseHeures(tt.input); math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("parseHeures(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMetres(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain", "350 m", 350},
		{"no space before unit", "850m", 850},
		{"grouped thousands", "1 200 m", 1200},
		{"non-breaking space group", "1 200 m", 1200},
		{"written out", "620 mètres", 620},
		{"dash placeholder", "—", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseMetres(tt.input); got != tt.want {
				t.Errorf("parseMetres(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestBucketKm(t *testing.T) {
	tests := []struct {
		km   float64
		want models.KmRange
	}{
		{0, models.KmInconnu},
		{-3, models.KmInconnu},
		{0.1, models.KmMoins5},
		{4.9, models.KmMoins5},
		{5.0, models.Km5a10},
		{9.9, models.Km5a10},
		{10.0, models.Km10a15},
		{15.0, models.Km15a20},
		{19.9, models.Km15a20},
		{20.0, models.KmPlus20},
		{42.0, models.KmPlus20},
	}

	for _, tt := range tests {
		if got := bucketKm(tt.km); got != tt.want {
			t.Errorf("bucketKm(%v) = %q, want %q", tt.km, got, tt.want)
		}
	}
}

func TestBucketDuree(t *testing.T) {
	tests := []struct {
		heures float64
		want   models.DureeRange
	}{
		{0, models.DureeInconnu},
		{2.9, models.DureeMoins3},
		{3.0, models.Duree3a5},
		{4.9, models.Duree3a5},
		{5.0, models.DureePlus5},
		{8.0, models.DureePlus5},
	}

	for _, tt := range tests {
		if got := bucketDuree(tt.heures); got != tt.want {
			t.Errorf("bucketDuree(%v) = %q, want %q", tt.heures, got, tt.want)
		}
	}
}

func TestBucketDenivele(t *testing.T) {
	tests := []struct {
		metres int
		want   models.DeniveleRange
	}{
		{0, models.DeniveleInconnu},
		{499, models.DeniveleMoins500},
		{500, models.Denivele500a1000},
		{999, models.Denivele500a1000},
		{1000, models.DenivelePlus1000},
		{2100, models.DenivelePlus1000},
	}

	for _, tt := range tests {
		if got := bucketDenivele(tt.metres); got != tt.want {
			t.Errorf("bucketDenivele(%d) = %q, want %q", tt.metres, got, tt.want)
		}
	}
}

func TestNormalizeCanton(t *testing.T) {
	tests := []struct {
		input string
		want  models.Canton
	}{
		{"Vaud", models.CantonVaud},
		{"Canton de Vaud", models.CantonVaud},
		{"Valais romand", models.CantonValaisRomand},
		{"Valais", models.CantonValaisRomand},
		{"Haut-Valais", models.CantonHautValais},
		{"haut valais", models.CantonHautValais},
		{"France voisine (Haute-Savoie)", models.CantonFranceVoisine},
		{"Neuchâtel", models.CantonNeuchatel},
		{"neuchatel", models.CantonNeuchatel},
		{"Jura bernois", models.CantonJura},
		{"Berne", models.CantonBerne},
		{"Genève", models.CantonGeneve},
		{"Grisons", models.CantonInconnu},
		{"", models.CantonInconnu},
	}

	for _, tt := range tests {
		if got := normalizeCanton(tt.input); got != tt.want {
			t.Errorf("normalizeCanton(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeParcours(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		depart  string
		arrivee string
		want    models.TypeParcours
	}{
		{"explicit boucle", "En boucle", "", "", models.ParcoursBoucle},
		{"explicit circuit", "Circuit balisé", "", "", models.ParcoursBoucle},
		{"aller-retour counts as boucle", "Aller-retour", "", "", models.ParcoursBoucle},
		{"explicit traversée", "Traversée", "", "", models.ParcoursLineaire},
		{"derived loop from same endpoints", "", "Solalex", "Solalex", models.ParcoursBoucle},
		{"derived linear from different endpoints", "", "Solalex", "Anzeindaz", models.ParcoursLineaire},
		{"case-insensitive endpoint compare", "", "Les Pléiades", "les pléiades", models.ParcoursBoucle},
		{"unrecognized cell falls back to endpoints", "selon variante", "Moiry", "Moiry", models.ParcoursBoucle},
		{"nothing to go on", "", "", "", models.ParcoursInconnu},
		{"missing arrival", "", "Solalex", "", models.ParcoursInconnu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeParcours(tt.raw, tt.depart, tt.arrivee); got != tt.want {
				t.Errorf("normalizeParcours(%q, %q, %q) = %q, want %q",
					tt.raw, tt.depart, tt.arrivee, got, tt.want)
			}
		})
	}
}

func TestNormalizeEnvironnements(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		saison string
		want   []models.Environnement
	}{
		{"single tag", "Montagne", "", []models.Environnement{models.EnvMontagne}},
		{
			"multi tag keeps order",
			"Montagne, bord de lac",
			"",
			[]models.Environnement{models.EnvMontagne, models.EnvLac},
		},
		{
			"gorges and rivière",
			"Gorges et bord de rivière",
			"",
			[]models.Environnement{models.EnvRiviere, models.EnvGorges},
		},
		{
			"winter season adds hivernal",
			"Montagne",
			"Hiver",
			[]models.Environnement{models.EnvMontagne, models.EnvHivernal},
		},
		{
			"hivernal not duplicated",
			"Randonnée hivernale en raquettes",
			"Hiver",
			[]models.Environnement{models.EnvHivernal},
		},
		{"empty", "", "", []models.Environnement{models.EnvInconnu}},
		{"unrecognized", "Karst", "", []models.Environnement{models.EnvInconnu}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeEnvironnements(tt.raw, tt.saison)
			if len(got) != len(tt.want) {
				t.Fatalf("normalizeEnvironnements(%q, %q) = %v, want %v", tt.raw, tt.saison, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("normalizeEnvironnements(%q, %q)[%d] = %q, want %q",
						tt.raw, tt.saison, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeSaisons(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []models.Saison
	}{
		{
			"year round expands to all four",
			"Toute l'année",
			[]models.Saison{models.SaisonPrintemps, models.SaisonEte, models.SaisonAutomne, models.SaisonHiver},
		},
		{
			"typographic apostrophe",
			"Toute l’année",
			[]models.Saison{models.SaisonPrintemps, models.SaisonEte, models.SaisonAutomne, models.SaisonHiver},
		},
		{
			"listed seasons",
			"Été, automne",
			[]models.Saison{models.SaisonEte, models.SaisonAutomne},
		},
		{"single season", "Hiver", []models.Saison{models.SaisonHiver}},
		{"empty", "", []models.Saison{models.SaisonInconnu}},
		{"unrecognized", "selon enneigement", []models.Saison{models.SaisonInconnu}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeSaisons(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("normalizeSaisons(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("normalizeSaisons(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeDifficulte(t *testing.T) {
	tests := []struct {
		input string
		want  models.Difficulte
	}{
		{"T1", models.DifficulteT1},
		{"T2", models.DifficulteT2},
		{"Difficulté : T 3", models.DifficulteT3},
		{"t4", models.DifficulteT4},
		{"T5 (passages câblés)", models.DifficulteT5},
		{"T6", models.DifficulteInconnu},
		{"facile", models.DifficulteInconnu},
		{"", models.DifficulteInconnu},
	}

	for _, tt := range tests {
		if got := normalizeDifficulte(tt.input); got != tt.want {
			t.Errorf("normalizeDifficulte(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
