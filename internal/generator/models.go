package generator

// ExampleSeed is one of the known resonant frequencies surfaced to callers
// as presets.
type ExampleSeed struct {
	Seed  int64  `json:"seed"`
	Label string `json:"label"`
}

// Examples returns the preset seed list in display order.
func Examples() []ExampleSeed {
	return []ExampleSeed{
		{29160000, "The Garden"},
		{1080, "Balanced Mud"},
		{118098, "The Logic Peaks"},
		{58, "The Cliffhanger"},
	}
}
