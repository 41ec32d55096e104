package valueobjects

import "fmt"

// Allocation records what a collection was taken as at the counter. It is
// descriptive only; reconciliation sums amounts regardless of allocation.
type Allocation string

const (
	AllocationDownpayment Allocation = "downpayment"
	AllocationBalance     Allocation = "balance"
	AllocationFull        Allocation = "full"
)

var validAllocations = map[Allocation]bool{
	AllocationDownpayment: true,
	AllocationBalance:     true,
	AllocationFull:        true,
}

func (a Allocation) String() string {
	return string(a)
}

func (a Allocation) IsValid() bool {
	return validAllocations[a]
}

func NewAllocation(s string) (Allocation, error) {
	a := Allocation(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid payment allocation: %s", s)
	}
	return a, nil
}
