package migrations

import "testing"

// Registration derives each migration's name from the Go file it lives in,
// so a bad file name panics the whole binary at init. This pins the parsed
// names and order.
func TestRegisteredMigrations(t *testing.T) {
	ms := Migrations.Sorted()
	if len(ms) != 2 {
		t.Fatalf("expected 2 registered migrations, got %d", len(ms))
	}
	if ms[0].Name != "20250101000001" || ms[0].Comment != "create_question_banks" {
		t.Fatalf("unexpected first migration: %s_%s", ms[0].Name, ms[0].Comment)
	}
	if ms[1].Name != "20250101000002" || ms[1].Comment != "create_results" {
		t.Fatalf("unexpected second migration: %s_%s", ms[1].Name, ms[1].Comment)
	}
}
