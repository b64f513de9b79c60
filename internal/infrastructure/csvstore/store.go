package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stockgame-service/stockgame_service/pkg/logger"
)

// Store reads the game's CSV exports from a data directory. Files are
// discovered by naming convention only; the leaderboard file is the
// single source of truth for the roster.
type Store struct {
	dataDir string
	gameID  string
	logger  *logger.Logger
}

// Row is one CSV record keyed by the header row's field names.
type Row map[string]string

// NewStore creates a store over the given data directory.
func NewStore(dataDir, gameID string, log *logger.Logger) *Store {
	return &Store{
		dataDir: dataDir,
		gameID:  gameID,
		logger:  log,
	}
}

func (s *Store) leaderboardFile() string {
	return fmt.Sprintf("Rankings - %s.csv", s.gameID)
}

func performanceFile(playerName string) string {
	return fmt.Sprintf("Portfolio Performance - %s.csv", playerName)
}

func holdingsFile(playerName string) string {
	return fmt.Sprintf("Holdings - %s.csv", playerName)
}

func transactionsFile(playerName string) string {
	return fmt.Sprintf("Portfolio Transactions - %s.csv", playerName)
}

// readTable reads a header-delimited CSV file into rows keyed by the
// header fields. Short records leave trailing fields empty rather than
// failing; the exports are hand-maintained and drift occasionally.
func (s *Store) readTable(filename string) ([]Row, error) {
	path := filepath.Join(s.dataDir, filename)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	if len(header) > 0 {
		// Spreadsheet exports sometimes carry a UTF-8 BOM.
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, field := range header {
			if i < len(record) {
				row[field] = record[i]
			} else {
				row[field] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
