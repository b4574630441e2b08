package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// RunMigrations executes every .up.sql file in migrationsDir in lexical
// order. Statements are separated by ";" on its own line; errors abort the
// run so a broken migration never half-applies silently.
func RunMigrations(db *sql.DB, migrationsDir string) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		content, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		for _, stmt := range splitStatements(string(content)) {
			if _, err := db.Exec(stmt); err != nil {
				// ORA-00955: name is already used by an existing object
				if strings.Contains(err.Error(), "ORA-00955") {
					log.Printf("Skipping already applied statement in %s", name)
					continue
				}
				return fmt.Errorf("migration %s failed: %w", name, err)
			}
		}
		log.Printf("Applied migration %s", name)
	}

	return nil
}

func splitStatements(content string) []string {
	var stmts []string
	for _, raw := range strings.Split(content, ";") {
		stmt := strings.TrimSpace(raw)
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
