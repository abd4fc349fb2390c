package world

// Derive translates elemental abundances into world parameters. Every rule
// is total over non-negative counts; there are no error conditions.
func Derive(flux, form, vitality, aether int) Parameters {
	// Sea level: flux vs form tug-of-war around the 0.5 equilibrium. No
	// clamping; values outside [0,1] mean fully flooded or fully dry.
	seaLevel := 0.5 + 0.05*float64(flux-form)

	// Pure form makes jagged peaks.
	roughness := 0.1 * float64(form)

	// Vegetation needs water, earth and life. Below the drought line it
	// dies regardless of vitality. min(flux, form) is a synergy cap: life
	// scales with whichever of water or land is scarcer.
	var vegetation float64
	if seaLevel >= 0.2 {
		vegetation = 0.1 * float64(vitality) * float64(min(flux, form))
	}

	// Stability is the flux:form balance ratio. 1.0 is perfect balance;
	// an absent signal on both sides counts as 0, not as balanced.
	var stability float64
	if maxCount := max(flux, form); maxCount > 0 {
		stability = float64(min(flux, form)) / float64(maxCount)
	}

	return Parameters{
		SeaLevel:     seaLevel,
		Roughness:    roughness,
		Vegetation:   vegetation,
		MagicDensity: aether,
		Stability:    stability,
	}
}
