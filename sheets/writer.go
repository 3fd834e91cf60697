package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"rando-scraper/models"
)

// hikeHeader is the column layout of an exported catalogue.
var hikeHeader = []interface{}{
	"Titre", "Lien", "Canton", "Type de parcours", "Distance (km)", "Durée",
	"Environnement", "Difficulté", "Dénivelé (m)", "Saison", "Carte",
}

// Writer exports hike catalogues to Google Sheets
type Writer struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewWriter creates a Google Sheets writer. Credentials are read from
// credentialsPath when given, otherwise from the GOOGLE_SHEETS_CREDENTIALS
// environment variable, and must be a service account JSON file.
func NewWriter(spreadsheetID string, credentialsPath string) (*Writer, error) {
	ctx := context.Background()

	var credsJSON []byte
	if credentialsPath != "" {
		var err error
		credsJSON, err = os.ReadFile(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
	} else {
		credsEnv := strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_CREDENTIALS"))
		if credsEnv == "" {
			return nil, fmt.Errorf("credentials not found: GOOGLE_SHEETS_CREDENTIALS environment variable is empty or not set")
		}
		log.Printf("Reading credentials from GOOGLE_SHEETS_CREDENTIALS environment variable (%d bytes)\n", len(credsEnv))
		credsJSON = []byte(credsEnv)
	}

	var creds map[string]interface{}
	if err := json.Unmarshal(credsJSON, &creds); err != nil {
		return nil, fmt.Errorf("invalid credentials JSON: %w", err)
	}
	if creds["type"] != "service_account" {
		return nil, fmt.Errorf("credentials must be a service account JSON file (type: service_account), got type: %v", creds["type"])
	}

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(credsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

// CreateSheetAndWriteHikes creates a new sheet at the beginning of the
// spreadsheet and writes the catalogue to it. sourceURL, when given, is
// recorded in a metadata row above the header. It returns the created sheet
// name and its ID (gid).
func (w *Writer) CreateSheetAndWriteHikes(sheetName string, hikes []models.HikeRecord, sourceURL string) (string, int64, error) {
	sheetName = sanitizeSheetName(sheetName)

	batchUpdateRequest := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: sheetName,
						Index: 0,
					},
				},
			},
		},
	}

	batchUpdateResp, err := w.service.Spreadsheets.BatchUpdate(w.spreadsheetID, batchUpdateRequest).Do()
	if err != nil {
		return "", 0, fmt.Errorf("failed to create sheet: %w", err)
	}

	var sheetID int64
	if len(batchUpdateResp.Replies) > 0 && batchUpdateResp.Replies[0].AddSheet != nil {
		sheetID = batchUpdateResp.Replies[0].AddSheet.Properties.SheetId
	}
	log.Printf("Created sheet '%s' with ID %d\n", sheetName, sheetID)

	var values [][]interface{}
	if sourceURL != "" {
		values = append(values, []interface{}{"Source", sourceURL})
	}
	values = append(values, hikeHeader)
	for _, rec := range hikes {
		values = append(values, hikeRow(rec))
	}

	valueRange := &sheets.ValueRange{
		Values: values,
	}
	_, err = w.service.Spreadsheets.Values.Update(w.spreadsheetID, fmt.Sprintf("%s!A1", sheetName), valueRange).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return "", 0, fmt.Errorf("failed to write to sheet: %w", err)
	}

	log.Printf("Successfully wrote %d hikes to sheet '%s'\n", len(hikes), sheetName)
	return sheetName, sheetID, nil
}

// hikeRow renders one catalogue row. Missing numeric figures become empty
// cells rather than zeros.
func hikeRow(rec models.HikeRecord) []interface{} {
	distance := ""
	if rec.DistanceKm > 0 {
		distance = strconv.FormatFloat(rec.DistanceKm, 'f', -1, 64)
	}
	denivele := ""
	if rec.MonteeM > 0 {
		denivele = strconv.Itoa(rec.MonteeM)
	}

	return []interface{}{
		rec.Title,
		rec.URL,
		string(rec.Canton),
		string(rec.TypeParcours),
		distance,
		rec.TempsMarche,
		joinValues(rec.Environnements),
		string(rec.Difficulte),
		denivele,
		joinValues(rec.Saisons),
		rec.MapURL,
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// sanitizeSheetName replaces the characters Google Sheets forbids in sheet
// names (/ \ ? * [ ]) and caps the length at 100.
func sanitizeSheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" {
		return "Randos"
	}
	if len(name) > 100 {
		name = name[:100]
	}
	return name
}

// ExtractSpreadsheetID extracts the spreadsheet ID from a Google Sheets URL
// like https://docs.google.com/spreadsheets/d/SPREADSHEET_ID/edit?usp=sharing.
func ExtractSpreadsheetID(url string) string {
	_, after, found := strings.Cut(url, "/d/")
	if !found {
		return ""
	}
	if idx := strings.IndexAny(after, "/?"); idx != -1 {
		after = after[:idx]
	}
	return strings.TrimSpace(after)
}
