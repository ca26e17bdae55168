package evaluator

// Fixed verdicts for mock mode. Fresh copies per call so callers can
// mutate the slices safely.

func mockSpeakingResult() *SpeakingResult {
	return &SpeakingResult{
		Score: 72,
		Feedback: "Bonne structure générale avec une introduction claire et une conclusion. " +
			"Le vocabulaire est adapté au niveau demandé. " +
			"Quelques imprécisions grammaticales, mais le message reste clair.",
		PointsCovered: []string{
			"Introduction avec prise de position",
			"Arguments développés avec exemples",
			"Conclusion synthétique",
		},
		Suggestions: []string{
			"Enrichir le vocabulaire avec des connecteurs logiques variés",
			"Développer davantage les exemples concrets",
			"Soigner la prononciation des liaisons",
		},
	}
}

func mockWritingResult() *WritingResult {
	return &WritingResult{
		Score: 68,
		Feedback: "La production est cohérente et répond globalement à la consigne. " +
			"La structure est correcte. Quelques erreurs de grammaire et un " +
			"vocabulaire qui pourrait être plus riche.",
		Errors: []Correction{
			{Original: "je suis allé au magasin hier", Correction: "je suis allé au magasin hier.", Rule: "Ponctuation"},
			{Original: "les gens ils veulent", Correction: "les gens veulent", Rule: "Éviter le pronom redondant"},
		},
		CorrectedVersion: "Madame, Monsieur,\n\n" +
			"Je vous écris pour vous faire part de ma situation. " +
			"Je suis arrivé au Canada il y a six mois et je souhaite m'inscrire " +
			"à des cours de français. Pourriez-vous m'indiquer les démarches à suivre ?\n\n" +
			"Dans l'attente de votre réponse, je vous adresse mes cordiales salutations.",
	}
}
