package store

import (
	"encoding/json"
	"fmt"

	"rando-scraper/models"
)

// Upsert inserts rec, or replaces every column of the existing row when the
// URL is already stored. Re-running a scrape therefore refreshes records
// instead of duplicating them.
func (s *SQLStore) Upsert(rec models.HikeRecord) error {
	attrs, err := json.Marshal(rec.Attrs)
	if err != nil {
		return fmt.Errorf("failed to encode attributes: %w", err)
	}
	envs, err := json.Marshal(rec.Environnements)
	if err != nil {
		return fmt.Errorf("failed to encode environnements: %w", err)
	}
	saisons, err := json.Marshal(rec.Saisons)
	if err != nil {
		return fmt.Errorf("failed to encode saisons: %w", err)
	}

	_, err = s.conn.Exec(`
		INSERT INTO hikes (
			url, title, map_url, canton, type_parcours, km_range, duree_range,
			environnements, difficulte, denivele_range, saisons,
			distance_km, montee_m, descente_m,
			temps_marche, lieu_depart, lieu_arrivee, acces_tp, retour_tp,
			attrs, scraped_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (url) DO UPDATE SET
			title = excluded.title,
			map_url = excluded.map_url,
			canton = excluded.canton,
			type_parcours = excluded.type_parcours,
			km_range = excluded.km_range,
			duree_range = excluded.duree_range,
			environnements = excluded.environnements,
			difficulte = excluded.difficulte,
			denivele_range = excluded.denivele_range,
			saisons = excluded.saisons,
			distance_km = excluded.distance_km,
			montee_m = excluded.montee_m,
			descente_m = excluded.descente_m,
			temps_marche = excluded.temps_marche,
			lieu_depart = excluded.lieu_depart,
			lieu_arrivee = excluded.lieu_arrivee,
			acces_tp = excluded.acces_tp,
			retour_tp = excluded.retour_tp,
			attrs = excluded.attrs,
			scraped_at = excluded.scraped_at
	`,
		rec.URL, rec.Title, rec.MapURL, string(rec.Canton), string(rec.TypeParcours),
		string(rec.KmRange), string(rec.DureeRange), string(envs), string(rec.Difficulte),
		string(rec.DeniveleRange), string(saisons),
		rec.DistanceKm, rec.MonteeM, rec.DescenteM,
		rec.TempsMarche, rec.LieuDepart, rec.LieuArrivee, rec.AccesTP, rec.RetourTP,
		string(attrs), rec.ScrapedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert hike %s: %w", rec.URL, err)
	}
	return nil
}

// LoadAll returns every stored hike, ordered by title.
func (s *SQLStore) LoadAll() ([]models.HikeRecord, error) {
	rows, err := s.conn.Query(`
		SELECT url, title, map_url, canton, type_parcours, km_range, duree_range,
			environnements, difficulte, denivele_range, saisons,
			distance_km, montee_m, descente_m,
			temps_marche, lieu_depart, lieu_arrivee, acces_tp, retour_tp,
			attrs, scraped_at
		FROM hikes
		ORDER BY title
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query hikes: %w", err)
	}
	defer rows.Close()

	var records []models.HikeRecord
	for rows.Next() {
		var rec models.HikeRecord
		var attrs, envs, saisons []byte

		err := rows.Scan(
			&rec.URL, &rec.Title, &rec.MapURL, &rec.Canton, &rec.TypeParcours,
			&rec.KmRange, &rec.DureeRange, &envs, &rec.Difficulte,
			&rec.DeniveleRange, &saisons,
			&rec.DistanceKm, &rec.MonteeM, &rec.DescenteM,
			&rec.TempsMarche, &rec.LieuDepart, &rec.LieuArrivee, &rec.AccesTP, &rec.RetourTP,
			&attrs, &rec.ScrapedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hike row: %w", err)
		}

		if err := json.Unmarshal(envs, &rec.Environnements); err != nil {
			return nil, fmt.Errorf("failed to decode environnements for %s: %w", rec.URL, err)
		}
		if err := json.Unmarshal(saisons, &rec.Saisons); err != nil {
			return nil, fmt.Errorf("failed to decode saisons for %s: %w", rec.URL, err)
		}
		if err := json.Unmarshal(attrs, &rec.Attrs); err != nil {
			return nil, fmt.Errorf("failed to decode attributes for %s: %w", rec.URL, err)
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hike rows: %w", err)
	}
	return records, nil
}

// Count returns the number of stored hikes.
func (s *SQLStore) Count() (int, error) {
	var n int
	if err := s.conn.QueryRow(`SELECT COUNT(*) FROM hikes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count hikes: %w", err)
	}
	return n, nil
}

// RecordRun stores the summary of one scrape run.
func (s *SQLStore) RecordRun(summary models.RunSummary) error {
	_, err := s.conn.Exec(`
		INSERT INTO runs (
			run_id, started_at, finished_at, pages_visited, urls_found,
			stored, skipped_parse, skipped_transport, skipped_robots, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		summary.RunID, summary.StartedAt, summary.FinishedAt,
		summary.PagesVisited, summary.URLsFound, summary.Stored,
		summary.SkippedParse, summary.SkippedTransport, summary.SkippedRobots,
		summary.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", summary.RunID, err)
	}
	return nil
}
