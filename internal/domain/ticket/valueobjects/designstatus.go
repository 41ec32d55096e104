package valueobjects

import "fmt"

// DesignStatus is the artwork-approval sub-state of a ticket. It runs in
// parallel with the production status and only gates the transition out of
// the designer stage.
type DesignStatus string

const (
	DesignPending           DesignStatus = "pending"
	DesignMockupUploaded    DesignStatus = "mockup_uploaded"
	DesignInReview          DesignStatus = "in_review"
	DesignRevisionRequested DesignStatus = "revision_requested"
	DesignApproved          DesignStatus = "approved"
)

var validDesignStatuses = map[DesignStatus]bool{
	DesignPending:           true,
	DesignMockupUploaded:    true,
	DesignInReview:          true,
	DesignRevisionRequested: true,
	DesignApproved:          true,
}

var designStatusTransitions = map[DesignStatus][]DesignStatus{
	DesignPending: {
		DesignMockupUploaded,
		DesignInReview,
	},
	DesignMockupUploaded: {
		DesignInReview,
	},
	DesignInReview: {
		DesignRevisionRequested,
		DesignApproved,
	},
	DesignRevisionRequested: {
		DesignMockupUploaded,
		DesignInReview,
	},
	DesignApproved: {},
}

func (ds DesignStatus) String() string {
	return string(ds)
}

func (ds DesignStatus) IsValid() bool {
	return validDesignStatuses[ds]
}

func (ds DesignStatus) CanTransitionTo(newStatus DesignStatus) bool {
	allowed, ok := designStatusTransitions[ds]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

func (ds DesignStatus) IsApproved() bool {
	return ds == DesignApproved
}

func NewDesignStatus(s string) (DesignStatus, error) {
	ds := DesignStatus(s)
	if !ds.IsValid() {
		return "", fmt.Errorf("invalid design status: %s", s)
	}
	return ds, nil
}
