package branch

// Routing is the branch assignment computed for a new ticket. Either field
// may be nil: a branch-agnostic ticket (public online order) has neither, and
// a ticket whose order branch cannot produce stays without a production
// branch when no default-production branch exists. Branch fields are set
// once at creation and never change.
type Routing struct {
	OrderBranchID      *uint
	ProductionBranchID *uint
}

// Router decides which branch receives an order and which branch performs
// production.
type Router struct{}

func NewRouter() *Router {
	return &Router{}
}

// Resolve computes the routing for a ticket created by an actor whose home
// branch is actorBranch (nil for public/online orders). explicitOrderBranchID
// overrides the order branch when the caller supplied one.
// defaultProduction is the active branch flagged as default production site,
// or nil when none exists.
func (r *Router) Resolve(actorBranch *Branch, explicitOrderBranchID *uint, defaultProduction *Branch) Routing {
	if actorBranch == nil {
		return Routing{}
	}

	routing := Routing{}

	if explicitOrderBranchID != nil {
		routing.OrderBranchID = explicitOrderBranchID
	} else {
		orderID := actorBranch.ID()
		routing.OrderBranchID = &orderID
	}

	if actorBranch.CanProduce() {
		prodID := actorBranch.ID()
		routing.ProductionBranchID = &prodID
	} else if defaultProduction != nil {
		prodID := defaultProduction.ID()
		routing.ProductionBranchID = &prodID
	}

	return routing
}
