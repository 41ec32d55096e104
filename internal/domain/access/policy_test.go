package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rosecraft/internal/shared/authorization"
)

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func assignedTo(keys ...string) func(string) bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(key string) bool { return set[key] }
}

func TestCanEdit_ByRoleAndStatus(t *testing.T) {
	policy := NewPolicy()

	tests := []struct {
		name   string
		role   authorization.Role
		status string
		want   bool
	}{
		{"admin edits pending", authorization.RoleAdmin, "pending", true},
		{"admin edits completed", authorization.RoleAdmin, "completed", true},
		{"front desk edits pending", authorization.RoleFrontDesk, "pending", true},
		{"front desk edits in_designer", authorization.RoleFrontDesk, "in_designer", true},
		{"front desk edits ready_to_print", authorization.RoleFrontDesk, "ready_to_print", true},
		{"front desk denied in_production", authorization.RoleFrontDesk, "in_production", false},
		{"front desk denied completed", authorization.RoleFrontDesk, "completed", false},
		{"designer edits in_designer", authorization.RoleDesigner, "in_designer", true},
		{"designer denied pending", authorization.RoleDesigner, "pending", false},
		{"cashier denied everywhere", authorization.RoleCashier, "pending", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.CanEdit(
				TicketView{Status: tt.status},
				Actor{UserID: 1, Role: tt.role},
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanEdit_ProductionNeedsStepAssignment(t *testing.T) {
	policy := NewPolicy()

	readyTicket := TicketView{
		Status:            "ready_to_print",
		FirstWorkflowStep: "printing",
	}
	inProductionTicket := TicketView{
		Status:              "in_production",
		FirstWorkflowStep:   "printing",
		CurrentWorkflowStep: strPtr("cutting"),
	}

	assignedWorker := Actor{UserID: 7, Role: authorization.RoleProduction, AssignedToStep: assignedTo("printing")}
	cutter := Actor{UserID: 8, Role: authorization.RoleProduction, AssignedToStep: assignedTo("cutting")}
	unassigned := Actor{UserID: 9, Role: authorization.RoleProduction, AssignedToStep: assignedTo()}

	// ready_to_print requires assignment to the sequence's first step.
	assert.True(t, policy.CanEdit(readyTicket, assignedWorker))
	assert.False(t, policy.CanEdit(readyTicket, cutter))
	assert.False(t, policy.CanEdit(readyTicket, unassigned))

	// in_production requires assignment to the current step.
	assert.True(t, policy.CanEdit(inProductionTicket, cutter))
	assert.False(t, policy.CanEdit(inProductionTicket, assignedWorker))

	// No current step while in production denies everyone but admins.
	assert.False(t, policy.CanEdit(TicketView{Status: "in_production"}, cutter))
}

func TestCanEdit_ProductionWithoutLookupDenied(t *testing.T) {
	policy := NewPolicy()

	ticket := TicketView{Status: "ready_to_print", FirstWorkflowStep: "printing"}
	actor := Actor{UserID: 7, Role: authorization.RoleProduction}

	assert.False(t, policy.CanEdit(ticket, actor))
}

func TestCanView_BranchScoping(t *testing.T) {
	policy := NewPolicy()

	ticket := TicketView{
		OrderBranchID:      uintPtr(1),
		ProductionBranchID: uintPtr(2),
	}

	tests := []struct {
		name   string
		role   authorization.Role
		branch *uint
		want   bool
	}{
		{"admin sees all", authorization.RoleAdmin, nil, true},
		{"designer sees all", authorization.RoleDesigner, uintPtr(99), true},
		{"front desk same order branch", authorization.RoleFrontDesk, uintPtr(1), true},
		{"front desk other branch", authorization.RoleFrontDesk, uintPtr(2), false},
		{"cashier same order branch", authorization.RoleCashier, uintPtr(1), true},
		{"cashier no branch", authorization.RoleCashier, nil, false},
		{"production same production branch", authorization.RoleProduction, uintPtr(2), true},
		{"production other branch", authorization.RoleProduction, uintPtr(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.CanView(ticket, Actor{UserID: 1, Role: tt.role, BranchID: tt.branch})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanView_BranchlessTicketHiddenFromScopedRoles(t *testing.T) {
	policy := NewPolicy()
	ticket := TicketView{}

	assert.True(t, policy.CanView(ticket, Actor{Role: authorization.RoleAdmin}))
	assert.False(t, policy.CanView(ticket, Actor{Role: authorization.RoleFrontDesk, BranchID: uintPtr(1)}))
	assert.False(t, policy.CanView(ticket, Actor{Role: authorization.RoleProduction, BranchID: uintPtr(1)}))
}
