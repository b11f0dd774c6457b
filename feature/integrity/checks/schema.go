package checks

import (
	"fmt"
	"sort"
	"strings"

	"vehicle-reconciler/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the store models with the live database.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists the drift found in one table.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "missing", "error"
}

// CheckSchema verifies the database schema using the given GORM models as the source of truth.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		actual, err := database.GetTableColumns(db, table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		tbl := TableReport{MissingColumns: []string{}, TypeMismatches: []string{}, Status: "ok"}
		if len(actual) == 0 {
			tbl.Status = "missing"
			report.Matched = false
			report.Tables[table] = tbl
			continue
		}

		actualTypes := make(map[string]string, len(actual))
		for _, col := range actual {
			actualTypes[col.Field] = col.Type
		}

		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" {
				continue
			}
			got, exists := actualTypes[field.DBName]
			if !exists {
				tbl.MissingColumns = append(tbl.MissingColumns, field.DBName)
				continue
			}
			// Only declared types are compared, as a substring match.
			want := strings.ToLower(field.TagSettings["TYPE"])
			if want != "" && !strings.Contains(got, want) {
				tbl.TypeMismatches = append(tbl.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", field.DBName, want, got))
			}
		}

		sort.Strings(tbl.MissingColumns)
		if len(tbl.MissingColumns) > 0 || len(tbl.TypeMismatches) > 0 {
			tbl.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tbl
	}

	return report, nil
}
