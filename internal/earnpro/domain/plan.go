package domain

// Plan is one tier of the subscription catalog.
type Plan struct {
	ID       int
	Name     string
	Price    float64 // monthly, 0 = free
	Features []string
}

// Plans returns the static plan catalog. The catalog is not fetched from
// the backend; tiers and prices are fixed product data.
func Plans() []Plan {
	return []Plan{
		{ID: 1, Name: "Basic", Price: 0, Features: []string{
			"5 tasks per day", "Basic support", "Standard rewards",
		}},
		{ID: 2, Name: "Silver", Price: 29, Features: []string{
			"10 tasks per day", "Priority support", "1.2x rewards multiplier",
		}},
		{ID: 3, Name: "Gold", Price: 59, Features: []string{
			"20 tasks per day", "Premium support", "1.5x rewards multiplier",
		}},
		{ID: 4, Name: "Platinum", Price: 99, Features: []string{
			"50 tasks per day", "VIP support", "2x rewards multiplier",
		}},
		{ID: 5, Name: "Diamond", Price: 199, Features: []string{
			"Unlimited tasks", "24/7 support", "3x rewards multiplier",
		}},
	}
}

// PlanByID looks up a plan in the catalog. Returns false when the id is
// not a known tier.
func PlanByID(id int) (Plan, bool) {
	for _, p := range Plans() {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// PlanByName looks up a plan by tier name.
func PlanByName(name string) (Plan, bool) {
	for _, p := range Plans() {
		if p.Name == name {
			return p, true
		}
	}
	return Plan{}, false
}

// PlanNames returns the tier names in catalog order.
func PlanNames() []string {
	plans := Plans()
	names := make([]string, len(plans))
	for i, p := range plans {
		names[i] = p.Name
	}
	return names
}

// ValidPlanName reports whether name is a known tier.
func ValidPlanName(name string) bool {
	for _, n := range PlanNames() {
		if n == name {
			return true
		}
	}
	return false
}
