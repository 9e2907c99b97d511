package config

// DemoConfig drives the demo workload in main.go. The engines themselves
// take no configuration apart from the B-tree order.
type DemoConfig struct {
	// Keys is the number of distinct keys inserted into each engine.
	Keys int

	// BTreeDegree is the order M passed to the B-tree engine.
	BTreeDegree int

	// Seed makes the random insertion order reproducible.
	Seed int64
}

func NewDemoConfig() *DemoConfig {
	return &DemoConfig{
		Keys:        1000,
		BTreeDegree: 16,
		Seed:        42,
	}
}
