package plan

// GiB is the unit plan storage allowances are expressed in.
const GiB = int64(1024 * 1024 * 1024)

// Plan is a subscription tier from the static catalog.
type Plan struct {
	Name         string   `json:"name"`
	StorageGiB   int64    `json:"storage_gib"`
	MonthlyPrice int64    `json:"monthly_price"` // minor units, XAF
	Features     []string `json:"features"`
}

// LimitBytes converts the plan's allowance to bytes.
func (p Plan) LimitBytes() int64 {
	return p.StorageGiB * GiB
}

// catalog is the fixed, ordered list of subscription tiers. There are
// no eligibility rules: a user may downgrade below their current usage.
var catalog = []Plan{
	{
		Name:         "Free",
		StorageGiB:   5,
		MonthlyPrice: 0,
		Features:     []string{"5 GB Storage", "Basic Support", "Web Access"},
	},
	{
		Name:         "Basic",
		StorageGiB:   50,
		MonthlyPrice: 2500,
		Features:     []string{"50 GB Storage", "Priority Support", "Web & Mobile Access", "File Sharing"},
	},
	{
		Name:         "Pro",
		StorageGiB:   200,
		MonthlyPrice: 8000,
		Features:     []string{"200 GB Storage", "24/7 Support", "Web & Mobile Access", "Advanced Sharing", "Version History"},
	},
	{
		Name:         "Business",
		StorageGiB:   1000,
		MonthlyPrice: 35000,
		Features:     []string{"1 TB Storage", "Dedicated Support", "All Platforms", "Team Collaboration", "Advanced Security", "API Access"},
	},
}

// Catalog returns the ordered plan list.
func Catalog() []Plan {
	out := make([]Plan, len(catalog))
	copy(out, catalog)
	return out
}

// ByName looks up a plan by its exact name.
func ByName(name string) (Plan, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return Plan{}, false
}

// Default returns the tier new accounts start on.
func Default() Plan {
	return catalog[0]
}
