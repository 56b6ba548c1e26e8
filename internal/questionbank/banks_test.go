package questionbank

import (
	"testing"

	"github.com/Admuad/concero-quiz/internal/domain"
)

func TestBanksAreWellFormed(t *testing.T) {
	for mode, bank := range All() {
		if len(bank.Questions) < 15 {
			t.Fatalf("%s bank too small for a session: %d questions", mode, len(bank.Questions))
		}
		for _, q := range bank.Questions {
			seen := make(map[string]bool, domain.OptionCount)
			matches := 0
			for _, opt := range q.Options {
				if opt == "" {
					t.Fatalf("%s: empty option in %q", mode, q.Text)
				}
				if seen[opt] {
					t.Fatalf("%s: duplicate option %q in %q", mode, opt, q.Text)
				}
				seen[opt] = true
				if opt == q.Answer {
					matches++
				}
			}
			if matches != 1 {
				t.Fatalf("%s: answer %q matches %d options in %q", mode, q.Answer, matches, q.Text)
			}
		}
	}
}

func TestLoadUnknownMode(t *testing.T) {
	if _, err := Load(domain.Mode("speedrun")); err != domain.ErrBankNotFound {
		t.Fatalf("expected ErrBankNotFound, got %v", err)
	}
}
