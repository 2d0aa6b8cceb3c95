package directory

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/andreaprogra/rapport-vocal/models"
)

// Sheet column layout. Columns past statut are optional.
const (
	colUsername = iota
	colPassword
	colDisplayName
	colRole
	colStatus
	colCreatedAt
	colDeviceID
	colLastSeen

	minColumns = colStatus + 1
)

// activeStatus is the one status value that unlocks login, compared after
// normalization.
const activeStatus = "actif"

// gvizTable mirrors the part of the gviz JSON reply the roster needs.
type gvizTable struct {
	Table struct {
		Rows []struct {
			Cells []gvizCell `json:"c"`
		} `json:"rows"`
	} `json:"table"`
}

type gvizCell struct {
	Value     any    `json:"v"`
	Formatted string `json:"f"`
}

func (c gvizCell) String() string {
	if c.Value != nil {
		switch v := c.Value.(type) {
		case string:
			return v
		case float64:
			// Whole numbers come back as floats; the formatted value keeps
			// what the sheet displayed.
			if c.Formatted != "" {
				return c.Formatted
			}
			return strings.TrimSuffix(fmt.Sprintf("%v", v), ".0")
		default:
			return fmt.Sprintf("%v", v)
		}
	}
	return c.Formatted
}

// ParseGviz decodes the gviz JSON export. The endpoint answers with a JSONP
// envelope (`google.visualization.Query.setResponse({...});`) that must be
// stripped before the JSON body can be decoded.
func ParseGviz(data []byte) ([]models.User, error) {
	start := bytes.IndexByte(data, '{')
	end := bytes.LastIndexByte(data, '}')
	if start < 0 || end < start {
		return nil, fmt.Errorf("gviz reply has no JSON body")
	}

	var table gvizTable
	if err := json.Unmarshal(data[start:end+1], &table); err != nil {
		return nil, fmt.Errorf("decode gviz table: %w", err)
	}

	var rows [][]string
	for _, row := range table.Table.Rows {
		fields := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			fields[i] = cell.String()
		}
		rows = append(rows, fields)
	}

	return usersFromRows(rows), nil
}

// ParseCSV decodes the CSV export. Field counts are not enforced by the
// reader because trailing optional columns may be absent.
func ParseCSV(data []byte) ([]models.User, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv table: %w", err)
	}

	return usersFromRows(rows), nil
}

// usersFromRows turns raw sheet rows into the roster. The first row is always
// the header and is dropped; later rows that echo header labels (a quirk of
// some sheet exports) are dropped too, as are rows missing a username or a
// password.
func usersFromRows(rows [][]string) []models.User {
	var users []models.User

	for i, fields := range rows {
		if i == 0 {
			continue
		}
		if len(fields) < minColumns {
			continue
		}
		if isHeaderEcho(fields) {
			continue
		}

		username := strings.TrimSpace(fields[colUsername])
		password := strings.TrimSpace(fields[colPassword])
		if username == "" || password == "" {
			continue
		}

		status := normalizeCell(field(fields, colStatus))
		if status == "" {
			status = "inactif"
		}

		role := normalizeCell(field(fields, colRole))
		if role == "" {
			role = string(models.RoleSalesRep)
		}

		displayName := strings.TrimSpace(field(fields, colDisplayName))
		if displayName == "" {
			displayName = "Nom non défini"
		}

		user := models.User{
			ID:          int64(len(users) + 1),
			Username:    username,
			Password:    password,
			DisplayName: displayName,
			Role:        models.Role(role),
			Status:      status,
			Active:      status == activeStatus,
			CreatedAt:   strings.TrimSpace(field(fields, colCreatedAt)),
			DeviceID:    strings.TrimSpace(field(fields, colDeviceID)),
		}

		if raw := strings.TrimSpace(field(fields, colLastSeen)); raw != "" {
			if ts, err := time.Parse(time.RFC3339, raw); err == nil {
				user.LastSeenAt = &ts
			}
		}

		users = append(users, user)
	}

	return users
}

func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

// isHeaderEcho reports whether a data row repeats the column labels.
func isHeaderEcho(fields []string) bool {
	switch {
	case strings.EqualFold(strings.TrimSpace(field(fields, colUsername)), "username"),
		strings.EqualFold(strings.TrimSpace(field(fields, colPassword)), "password"),
		strings.EqualFold(strings.TrimSpace(field(fields, colDisplayName)), "nom"),
		strings.EqualFold(strings.TrimSpace(field(fields, colRole)), "role"),
		strings.EqualFold(strings.TrimSpace(field(fields, colStatus)), "statut"):
		return true
	}
	return false
}

// normalizeCell lowercases a cell and strips the invisible characters and
// stray quotes that sheet edits tend to leave behind (BOM, zero-width spaces,
// smart quotes). Without this a visually correct "actif" cell can fail the
// status comparison.
func normalizeCell(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '\uFEFF', '\u200B', '\u200C', '\u200D', '\u00A0':
			return -1
		case '"', '\'', '\u2018', '\u2019', '\u201C', '\u201D':
			return -1
		}
		return r
	}, raw)

	return strings.ToLower(strings.TrimSpace(cleaned))
}
