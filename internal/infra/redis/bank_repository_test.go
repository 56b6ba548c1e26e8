package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Admuad/concero-quiz/internal/domain"
	"github.com/Admuad/concero-quiz/internal/infra/memory"
)

func TestBankRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{
		BankLoader: memory.NewStaticBankLoader(map[domain.Mode]domain.Bank{
			domain.ModeStandard: sampleBank(),
		}),
	}
	repo := NewBankRepository(client, loader, time.Minute)

	bank, err := repo.GetBank(context.Background(), domain.ModeStandard)
	if err != nil {
		t.Fatalf("get bank: %v", err)
	}
	if len(bank.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(bank.Questions))
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if !mr.Exists("quiz:bank:standard") {
		t.Fatalf("expected bank cached in redis")
	}

	// Second call should hit the cache, loader not incremented.
	if _, err := repo.GetBank(context.Background(), domain.ModeStandard); err != nil {
		t.Fatalf("get bank 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
}

type countingLoader struct {
	memory.BankLoader
	calls int
}

func (l *countingLoader) LoadBank(ctx context.Context, mode domain.Mode) (domain.Bank, error) {
	l.calls++
	return l.BankLoader.LoadBank(ctx, mode)
}

func sampleBank() domain.Bank {
	return domain.Bank{
		Mode: domain.ModeStandard,
		Questions: []domain.Question{
			{
				Text:    "What is 2 + 2?",
				Options: [4]string{"3", "4", "5", "6"},
				Answer:  "4",
			},
		},
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
