package coach

import "github.com/visaetude/prepcore/internal/cefr"

// skillRules holds the static ruleset for one skill. Thresholds differ
// between receptive and productive skills on purpose: production is
// judged more strictly.
type skillRules struct {
	strengths  func(pct int) []string
	weaknesses func(pct int) []string
	advice     func(pct int) []string
}

func rulesFor(skill cefr.Skill) skillRules {
	switch skill {
	case cefr.SkillCO:
		return listeningRules
	case cefr.SkillCE:
		return readingRules
	case cefr.SkillEO:
		return speakingRules
	case cefr.SkillEE:
		return writingRules
	}
	return emptyRules
}

var emptyRules = skillRules{
	strengths:  func(int) []string { return nil },
	weaknesses: func(int) []string { return nil },
	advice:     func(int) []string { return nil },
}

var listeningRules = skillRules{
	strengths: func(pct int) []string {
		if pct >= 75 {
			return []string{
				"Bonne compréhension globale",
				"Bonne gestion du débit audio",
			}
		}
		return []string{"Compréhension partielle des idées principales"}
	},
	weaknesses: func(pct int) []string {
		if pct < 70 {
			return []string{
				"Difficulté avec les accents",
				"Mots-clés mal identifiés",
				"Perte d'informations longues",
			}
		}
		return nil
	},
	advice: func(pct int) []string {
		if pct < 70 {
			return []string{
				"Écoute quotidienne de podcasts francophones",
				"Noter les mots-clés pendant l'écoute",
				"S'entraîner avec audio x1.25",
			}
		}
		return []string{
			"Simuler les conditions réelles d'examen",
			"Travailler les pièges synonymes",
		}
	},
}

var readingRules = skillRules{
	strengths: func(pct int) []string {
		if pct >= 70 {
			return []string{"Bonne compréhension textuelle"}
		}
		return nil
	},
	weaknesses: func(pct int) []string {
		if pct < 70 {
			return []string{
				"Lecture trop lente",
				"Difficulté avec les inférences",
			}
		}
		return nil
	},
	advice: func(int) []string {
		return []string{
			"Lire sans dictionnaire",
			"Identifier les connecteurs logiques",
			"Lire la presse francophone",
		}
	},
}

var speakingRules = skillRules{
	strengths: func(pct int) []string {
		if pct >= 75 {
			return []string{"Prise de parole structurée"}
		}
		return nil
	},
	weaknesses: func(pct int) []string {
		if pct < 75 {
			return []string{
				"Manque de fluidité",
				"Prononciation hésitante",
			}
		}
		return nil
	},
	advice: func(int) []string {
		return []string{
			"Parler 10 minutes par jour à voix haute",
			"S'enregistrer et s'écouter",
			"Travailler l'argumentation",
		}
	},
}

var writingRules = skillRules{
	strengths: func(pct int) []string {
		if pct >= 75 {
			return []string{"Texte organisé et lisible"}
		}
		return nil
	},
	weaknesses: func(pct int) []string {
		if pct < 75 {
			return []string{
				"Structure du texte faible",
				"Erreurs grammaticales",
				"Manque de connecteurs",
			}
		}
		return nil
	},
	advice: func(int) []string {
		return []string{
			"Utiliser un plan clair (introduction / développement / conclusion)",
			"Réviser accords et conjugaison",
			"Rédiger au moins un texte par jour",
		}
	},
}
