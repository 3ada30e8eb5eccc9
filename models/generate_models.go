package models

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

/*
Query generation and column mismatch report.

Set GENERATE_MODELS=true to migrate the schema, print the column report and
write typed query helpers to ./generated. Set GENERATE_COLUMN_REPORT=true to
print the report alone against the live database.

Example output:
=== COLUMN MISMATCH REPORT ===
--- Table: projects ---
Found 1 columns not accounted for in model:
  - legacy_slug

=== SUMMARY ===
Total mismatched columns across all tables: 1
*/

// All returns every persisted model in migration order
func All() []any {
	return []any{
		&Profile{},
		&Project{},
		&Testimonial{},
		&ContactInquiry{},
	}
}

// GenerateQueries migrates the schema and writes gorm/gen query helpers to outPath
func GenerateQueries(db *gorm.DB, outPath string) error {
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})
	if err := migrateDB.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("migrate models: %w", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(All()...)
	g.Execute()
	return nil
}

// ColumnMismatchReport lists, per table, the database columns the Go models do not declare.
// Tables that do not exist yet are skipped.
func ColumnMismatchReport(db *gorm.DB) (map[string][]string, error) {
	report := make(map[string][]string)
	cache := &sync.Map{}

	for _, model := range All() {
		parsed, err := schema.Parse(model, cache, db.NamingStrategy)
		if err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}

		if !db.Migrator().HasTable(parsed.Table) {
			continue
		}

		columnTypes, err := db.Migrator().ColumnTypes(parsed.Table)
		if err != nil {
			return nil, fmt.Errorf("error querying columns for table %s: %w", parsed.Table, err)
		}

		declared := make(map[string]bool, len(parsed.DBNames))
		for _, name := range parsed.DBNames {
			declared[name] = true
		}

		var mismatches []string
		for _, column := range columnTypes {
			if !declared[column.Name()] {
				mismatches = append(mismatches, column.Name())
			}
		}
		report[parsed.Table] = mismatches
	}
	return report, nil
}

// PrintColumnMismatchReport writes the report in a human readable form
func PrintColumnMismatchReport(w io.Writer, report map[string][]string) {
	fmt.Fprintln(w, "=== COLUMN MISMATCH REPORT ===")

	tables := make([]string, 0, len(report))
	for table := range report {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	total := 0
	for _, table := range tables {
		mismatches := report[table]
		fmt.Fprintf(w, "\n--- Table: %s ---\n", table)
		if len(mismatches) == 0 {
			fmt.Fprintln(w, "All columns are accounted for in the model.")
			continue
		}
		fmt.Fprintf(w, "Found %d columns not accounted for in model:\n", len(mismatches))
		for _, col := range mismatches {
			fmt.Fprintf(w, "  - %s\n", col)
		}
		total += len(mismatches)
	}

	fmt.Fprintf(w, "\n=== SUMMARY ===\n")
	fmt.Fprintf(w, "Total mismatched columns across all tables: %d\n", total)
}
