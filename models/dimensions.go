package models

// Inconnu is the unknown member shared by every dimension. A record whose
// raw value is missing or unrecognized normalizes to it; it only matches a
// selection that names it explicitly.
const Inconnu = "Inconnu"

// Canton is the canton / region a hike belongs to.
type Canton string

const (
	CantonGeneve        Canton = "Genève"
	CantonFranceVoisine Canton = "France voisine"
	CantonVaud          Canton = "Vaud"
	CantonFribourg      Canton = "Fribourg"
	CantonValaisRomand  Canton = "Valais romand"
	CantonHautValais    Canton = "Haut-Valais"
	CantonNeuchatel     Canton = "Neuchâtel"
	CantonJura          Canton = "Jura"
	CantonBerne         Canton = "Berne"
	CantonInconnu       Canton = Inconnu
)

// TypeParcours says whether a hike loops back to its start.
type TypeParcours string

const (
	ParcoursBoucle   TypeParcours = "En boucle"
	ParcoursLineaire TypeParcours = "Linéaire"
	ParcoursInconnu  TypeParcours = Inconnu
)

// KmRange is the bucketed hike distance.
type KmRange string

const (
	KmMoins5  KmRange = "Moins de 5 km"
	Km5a10    KmRange = "5-10 km"
	Km10a15   KmRange = "10-15 km"
	Km15a20   KmRange = "15-20 km"
	KmPlus20  KmRange = "Plus de 20 km"
	KmInconnu KmRange = Inconnu
)

// DureeRange is the bucketed walking time.
type DureeRange string

const (
	DureeMoins3  DureeRange = "Moins de 3h"
	Duree3a5     DureeRange = "De 3h à 5h"
	DureePlus5   DureeRange = "Plus de 5h"
	DureeInconnu DureeRange = Inconnu
)

// Environnement is one landscape tag; a hike can carry several.
type Environnement string

const (
	EnvMontagne Environnement = "Montagne"
	EnvCampagne Environnement = "Campagne"
	EnvForet    Environnement = "Forêt"
	EnvRiviere  Environnement = "Bord de rivière"
	EnvLac      Environnement = "Bord de lac"
	EnvBisses   Environnement = "Bisses"
	EnvGorges   Environnement = "Gorges"
	EnvHivernal Environnement = "Hivernal"
	EnvVille    Environnement = "Ville"
	EnvInconnu  Environnement = Inconnu
)

// Difficulte is the SAC hiking scale grade.
type Difficulte string

const (
	DifficulteT1      Difficulte = "T1"
	DifficulteT2      Difficulte = "T2"
	DifficulteT3      Difficulte = "T3"
	DifficulteT4      Difficulte = "T4"
	DifficulteT5      Difficulte = "T5"
	DifficulteInconnu Difficulte = Inconnu
)

// DeniveleRange is the bucketed cumulative ascent.
type DeniveleRange string

const (
	DeniveleMoins500 DeniveleRange = "Moins de 500 m"
	Denivele500a1000 DeniveleRange = "De 500 à 1000 m"
	DenivelePlus1000 DeniveleRange = "Plus de 1000 m"
	DeniveleInconnu  DeniveleRange = Inconnu
)

// Saison is one season a hike is recommended for; a hike can carry several.
// "Toute l'année" on a page is an input alias that expands to all four.
type Saison string

const (
	SaisonPrintemps Saison = "Printemps"
	SaisonEte       Saison = "Été"
	SaisonAutomne   Saison = "Automne"
	SaisonHiver     Saison = "Hiver"
	SaisonInconnu   Saison = Inconnu
)

// Value lists per dimension, in display order, for building selection UIs.
var (
	AllCantons = []Canton{
		CantonGeneve, CantonFranceVoisine, CantonVaud, CantonFribourg,
		CantonValaisRomand, CantonHautValais, CantonNeuchatel, CantonJura,
		CantonBerne, CantonInconnu,
	}
	AllParcours = []TypeParcours{ParcoursBoucle, ParcoursLineaire, ParcoursInconnu}
	AllKmRanges = []KmRange{KmMoins5, Km5a10, Km10a15, Km15a20, KmPlus20, KmInconnu}
	AllDurees   = []DureeRange{DureeMoins3, Duree3a5, DureePlus5, DureeInconnu}
	AllEnvironnements = []Environnement{
		EnvMontagne, EnvCampagne, EnvForet, EnvRiviere, EnvLac,
		EnvBisses, EnvGorges, EnvHivernal, EnvVille, EnvInconnu,
	}
	AllDifficultes = []Difficulte{
		DifficulteT1, DifficulteT2, DifficulteT3, DifficulteT4, DifficulteT5,
		DifficulteInconnu,
	}
	AllDeniveles = []DeniveleRange{
		DeniveleMoins500, Denivele500a1000, DenivelePlus1000, DeniveleInconnu,
	}
	AllSaisons = []Saison{
		SaisonPrintemps, SaisonEte, SaisonAutomne, SaisonHiver, SaisonInconnu,
	}
)
