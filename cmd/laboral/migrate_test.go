package main

import (
	"strings"
	"testing"
)

func TestMigrationNames(t *testing.T) {
	names, err := migrationNames()
	if err != nil {
		t.Fatalf("migrationNames() error = %v", err)
	}
	if len(names) == 0 || names[0] != "0001_users.sql" {
		t.Fatalf("names = %v, users must come first", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("migrations out of order: %s before %s", names[i-1], names[i])
		}
	}

	body, err := migrationFiles.ReadFile("migrations/0002_vacations.sql")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"end_date >= start_date", "days_taken > 0", "vacation_settings"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("vacations migration is missing %q", want)
		}
	}
}
