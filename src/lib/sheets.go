package lib

import (
	"context"
	"fmt"
	"log"
	"strings"

	"guestdesk/src/common"
	"guestdesk/src/models"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const valueInputOption = "USER_ENTERED"

// SheetsStore reads and writes reservation rows in a Google Sheet. The first
// row of the range is the header; cells are addressed by header name.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	readRange     string
}

func NewSheetsService(ctx context.Context, credentialsJSON []byte) (*sheets.Service, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		log.Printf("[sheets] Error parsing service account credentials: %s\n", err.Error())
		return nil, err
	}
	return sheets.NewService(ctx, option.WithCredentials(creds))
}

func NewSheetsStore(svc *sheets.Service, spreadsheetID, sheetName, readRange string) *SheetsStore {
	return &SheetsStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		readRange:     readRange,
	}
}

func (s *SheetsStore) a1(cells string) string {
	return fmt.Sprintf("%s!%s", QuoteSheetName(s.sheetName), cells)
}

func (s *SheetsStore) readGrid(ctx context.Context) ([][]string, error) {
	res, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.a1(s.readRange)).Context(ctx).Do()
	if err != nil {
		log.Printf("[sheets] Error reading %s: %s\n", s.a1(s.readRange), err.Error())
		return nil, fmt.Errorf("%w: %s", common.ErrStoreRead, err.Error())
	}
	grid := make([][]string, 0, len(res.Values))
	for _, r := range res.Values {
		cells := make([]string, len(r))
		for i, v := range r {
			cells[i] = fmt.Sprint(v)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func (s *SheetsStore) ListRows(ctx context.Context) ([]models.Row, error) {
	grid, err := s.readGrid(ctx)
	if err != nil {
		return nil, err
	}
	return RowsFromGrid(grid), nil
}

// WriteCells writes cells to the row holding bookingID in one batch update.
// Columns missing from the header are skipped.
func (s *SheetsStore) WriteCells(ctx context.Context, bookingID string, cells map[string]string) error {
	return s.WriteBatch(ctx, map[string]map[string]string{bookingID: cells})
}

// WriteBatch writes the cells of several bookings in a single batch update.
func (s *SheetsStore) WriteBatch(ctx context.Context, updates map[string]map[string]string) error {
	pending := 0
	for _, cells := range updates {
		pending += len(cells)
	}
	if pending == 0 {
		return nil
	}
	grid, err := s.readGrid(ctx)
	if err != nil {
		return err
	}
	var data []*sheets.ValueRange
	for bookingID, cells := range updates {
		if len(cells) == 0 {
			continue
		}
		rowNum, err := FindRowNumber(grid, bookingID)
		if err != nil {
			return err
		}
		data = append(data, BuildCellUpdates(s.sheetName, grid[0], rowNum, cells)...)
	}
	if len(data) == 0 {
		return nil
	}
	_, err = s.svc.Spreadsheets.Values.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateValuesRequest{
		ValueInputOption: valueInputOption,
		Data:             data,
	}).Context(ctx).Do()
	if err != nil {
		log.Printf("[sheets] Error updating %d bookings: %s\n", len(updates), err.Error())
		return fmt.Errorf("%w: %s", common.ErrStoreWrite, err.Error())
	}
	return nil
}

// AppendRows appends rows below the table, mapping values by header name.
func (s *SheetsStore) AppendRows(ctx context.Context, rows []models.Row) error {
	if len(rows) == 0 {
		return nil
	}
	grid, err := s.readGrid(ctx)
	if err != nil {
		return err
	}
	if len(grid) == 0 {
		return common.ErrEmptySheet
	}
	header := grid[0]
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		values = append(values, RowValues(header, row))
	}
	_, err = s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.a1("A1"), &sheets.ValueRange{Values: values}).
		ValueInputOption(valueInputOption).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		log.Printf("[sheets] Error appending %d rows: %s\n", len(rows), err.Error())
		return fmt.Errorf("%w: %s", common.ErrStoreWrite, err.Error())
	}
	return nil
}

// RowsFromGrid converts raw sheet values into rows keyed by header. Short rows
// are padded with empty cells and blank rows are dropped.
func RowsFromGrid(grid [][]string) []models.Row {
	rows := []models.Row{}
	if len(grid) == 0 {
		return rows
	}
	header := grid[0]
	for _, cells := range grid[1:] {
		if isBlank(cells) {
			continue
		}
		row := models.Row{}
		for i, col := range header {
			col = strings.TrimSpace(col)
			if col == "" {
				continue
			}
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func headerIndex(header []string, col string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == col {
			return i
		}
	}
	return -1
}

// FindRowNumber returns the 1-based sheet row holding bookingID.
func FindRowNumber(grid [][]string, bookingID string) (int, error) {
	if len(grid) == 0 {
		return 0, common.ErrEmptySheet
	}
	keyIdx := headerIndex(grid[0], models.COL_BOOKING_ID)
	if keyIdx == -1 {
		return 0, common.ErrMissingKeyColumn
	}
	for i, cells := range grid[1:] {
		if keyIdx < len(cells) && strings.TrimSpace(cells[keyIdx]) == bookingID {
			return i + 2, nil
		}
	}
	return 0, common.BookingNotFound(bookingID)
}

func BuildCellUpdates(sheetName string, header []string, rowNum int, cells map[string]string) []*sheets.ValueRange {
	var data []*sheets.ValueRange
	for i, h := range header {
		col := strings.TrimSpace(h)
		v, ok := cells[col]
		if col == "" || !ok {
			continue
		}
		data = append(data, &sheets.ValueRange{
			Range:  fmt.Sprintf("%s!%s%d", QuoteSheetName(sheetName), ColumnLetter(i), rowNum),
			Values: [][]interface{}{{v}},
		})
	}
	return data
}

func RowValues(header []string, row models.Row) []interface{} {
	values := make([]interface{}, len(header))
	for i, h := range header {
		values[i] = row[strings.TrimSpace(h)]
	}
	return values
}

// ColumnLetter converts a 0-based column index to A1 notation (0 = A, 26 = AA).
func ColumnLetter(idx int) string {
	s := ""
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		s = string(rune('A'+(n-1)%26)) + s
	}
	return s
}

func QuoteSheetName(name string) string {
	for _, r := range name {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_') {
			return "'" + strings.ReplaceAll(name, "'", "''") + "'"
		}
	}
	return name
}
