package tld

// Category groups related TLD suffixes for the selection menu.
type Category struct {
	Name string
	TLDs []string
}

// Categories returns the built-in catalog of RDAP-capable TLDs in
// display order. Every suffix appears exactly once.
func Categories() []Category {
	return []Category{
		{Name: "Popular", TLDs: []string{".com", ".net", ".org", ".io", ".co", ".me", ".tv", ".cc", ".ws", ".info"}},
		{Name: "Generic", TLDs: []string{".biz", ".name", ".pro", ".travel", ".museum", ".aero", ".coop"}},
		{Name: "Americas", TLDs: []string{".us", ".ca", ".mx", ".ar", ".cl", ".pe", ".ve", ".ec", ".uy"}},
		{Name: "Europe", TLDs: []string{".uk", ".de", ".fr", ".it", ".es", ".nl", ".be", ".at", ".ch", ".se"}},
		{Name: "Asia", TLDs: []string{".jp", ".cn", ".kr", ".in", ".sg", ".hk", ".tw", ".th", ".ph", ".my"}},
		{Name: "Restricted", TLDs: []string{".gov", ".edu", ".mil"}},
	}
}

// All returns every catalog TLD flattened in category order.
func All() []string {
	var all []string
	for _, c := range Categories() {
		all = append(all, c.TLDs...)
	}
	return all
}
