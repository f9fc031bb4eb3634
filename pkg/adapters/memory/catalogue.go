package memory

// Catalogue returns the built-in EvtGen particle names with their PDG ids.
// It covers the particles most decay files refer to; anything else is
// expected to come from a file-backed database.
func Catalogue() []Record {
	return []Record{
		// Gauge bosons
		{Name: "gamma", PDGID: 22, SelfConjugate: true},
		{Name: "Z0", PDGID: 23, SelfConjugate: true},
		{Name: "W+", PDGID: 24},
		{Name: "W-", PDGID: -24},
		{Name: "vpho", PDGID: 10022, SelfConjugate: true},

		// Leptons
		{Name: "e-", PDGID: 11},
		{Name: "e+", PDGID: -11},
		{Name: "nu_e", PDGID: 12},
		{Name: "anti-nu_e", PDGID: -12},
		{Name: "mu-", PDGID: 13},
		{Name: "mu+", PDGID: -13},
		{Name: "nu_mu", PDGID: 14},
		{Name: "anti-nu_mu", PDGID: -14},
		{Name: "tau-", PDGID: 15},
		{Name: "tau+", PDGID: -15},
		{Name: "nu_tau", PDGID: 16},
		{Name: "anti-nu_tau", PDGID: -16},

		// Light mesons
		{Name: "pi0", PDGID: 111, SelfConjugate: true},
		{Name: "pi+", PDGID: 211},
		{Name: "pi-", PDGID: -211},
		{Name: "rho0", PDGID: 113, SelfConjugate: true},
		{Name: "rho+", PDGID: 213},
		{Name: "rho-", PDGID: -213},
		{Name: "eta", PDGID: 221, SelfConjugate: true},
		{Name: "omega", PDGID: 223, SelfConjugate: true},
		{Name: "eta'", PDGID: 331, SelfConjugate: true},
		{Name: "phi", PDGID: 333, SelfConjugate: true},
		{Name: "f_0", PDGID: 9010221, SelfConjugate: true},
		{Name: "a_1+", PDGID: 20213},
		{Name: "a_1-", PDGID: -20213},

		// Strange mesons
		{Name: "K_L0", PDGID: 130, SelfConjugate: true},
		{Name: "K_S0", PDGID: 310, SelfConjugate: true},
		{Name: "K0", PDGID: 311},
		{Name: "anti-K0", PDGID: -311},
		{Name: "K+", PDGID: 321},
		{Name: "K-", PDGID: -321},
		{Name: "K*0", PDGID: 313},
		{Name: "anti-K*0", PDGID: -313},
		{Name: "K*+", PDGID: 323},
		{Name: "K*-", PDGID: -323},

		// Charm mesons
		{Name: "D0", PDGID: 421},
		{Name: "anti-D0", PDGID: -421},
		{Name: "D+", PDGID: 411},
		{Name: "D-", PDGID: -411},
		{Name: "D_s+", PDGID: 431},
		{Name: "D_s-", PDGID: -431},
		{Name: "D*0", PDGID: 423},
		{Name: "anti-D*0", PDGID: -423},
		{Name: "D*+", PDGID: 413},
		{Name: "D*-", PDGID: -413},
		{Name: "D_s*+", PDGID: 433},
		{Name: "D_s*-", PDGID: -433},

		// Charmonium
		{Name: "J/psi", PDGID: 443, SelfConjugate: true},
		{Name: "psi(2S)", PDGID: 100443, SelfConjugate: true},
		{Name: "chi_c1", PDGID: 20443, SelfConjugate: true},

		// Bottom mesons and bottomonium
		{Name: "B0", PDGID: 511},
		{Name: "anti-B0", PDGID: -511},
		{Name: "B+", PDGID: 521},
		{Name: "B-", PDGID: -521},
		{Name: "B_s0", PDGID: 531},
		{Name: "anti-B_s0", PDGID: -531},
		{Name: "B_c+", PDGID: 541},
		{Name: "B_c-", PDGID: -541},
		{Name: "Upsilon", PDGID: 553, SelfConjugate: true},
		{Name: "Upsilon(4S)", PDGID: 300553, SelfConjugate: true},

		// Baryons
		{Name: "p+", PDGID: 2212},
		{Name: "anti-p-", PDGID: -2212},
		{Name: "n0", PDGID: 2112},
		{Name: "anti-n0", PDGID: -2112},
		{Name: "Lambda0", PDGID: 3122},
		{Name: "anti-Lambda0", PDGID: -3122},
		{Name: "Sigma+", PDGID: 3222},
		{Name: "anti-Sigma-", PDGID: -3222},
		{Name: "Xi-", PDGID: 3312},
		{Name: "anti-Xi+", PDGID: -3312},
		{Name: "Lambda_c+", PDGID: 4122},
		{Name: "anti-Lambda_c-", PDGID: -4122},
		{Name: "Lambda_b0", PDGID: 5122},
		{Name: "anti-Lambda_b0", PDGID: -5122},
	}
}
