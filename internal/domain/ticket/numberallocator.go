package ticket

import (
	"context"
	"fmt"

	"rosecraft/internal/shared/biztime"
	"rosecraft/internal/shared/id"
)

// NumberAllocator issues globally unique ticket numbers.
type NumberAllocator interface {
	Allocate(ctx context.Context) (string, error)
}

// RandomNumberAllocator builds numbers as PREFIX-YEAR-SUFFIX with a random
// alphanumeric suffix and retries on collision. Uniqueness checks include
// soft-deleted tickets so a number is never reissued.
type RandomNumberAllocator struct {
	repo   Repository
	prefix string
}

const maxAllocationAttempts = 10

func NewRandomNumberAllocator(repo Repository, prefix string) *RandomNumberAllocator {
	return &RandomNumberAllocator{repo: repo, prefix: prefix}
}

func (a *RandomNumberAllocator) Allocate(ctx context.Context) (string, error) {
	year := biztime.CurrentYear()

	for attempt := 0; attempt < maxAllocationAttempts; attempt++ {
		suffix, err := id.Generate(id.TicketSuffixLength)
		if err != nil {
			return "", fmt.Errorf("failed to generate ticket suffix: %w", err)
		}

		number := id.FormatTicketNumber(a.prefix, year, suffix)
		exists, err := a.repo.ExistsByNumber(ctx, number)
		if err != nil {
			return "", fmt.Errorf("failed to check ticket number: %w", err)
		}
		if !exists {
			return number, nil
		}
	}

	return "", fmt.Errorf("could not allocate a unique ticket number after %d attempts", maxAllocationAttempts)
}
