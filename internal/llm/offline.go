package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// OfflineProvider is the "mock" provider selected by configuration.
// It returns deterministic payloads keyed on substrings of the user prompt,
// so content generation, insertion and exams can run end to end without an
// LLM backend.
type OfflineProvider struct{}

// NewOfflineProvider creates the deterministic mock-mode provider.
func NewOfflineProvider() *OfflineProvider {
	return &OfflineProvider{}
}

func (p *OfflineProvider) Generate(_ context.Context, req Request) (*Response, error) {
	var user string
	for _, m := range req.Messages {
		if m.Role == RoleUser {
			user = m.Content
		}
	}

	content := offlinePayload(user)

	return &Response{
		Content:    json.RawMessage(content),
		Usage:      Usage{InputTokens: len(req.System) / 4, OutputTokens: len(content) / 4},
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (p *OfflineProvider) ModelID() string { return "mock" }

func offlinePayload(userPrompt string) string {
	// Pad so bare skill tokens at the start or end of the prompt still match.
	up := " " + strings.ToUpper(userPrompt) + " "

	exam := strings.Contains(up, "MULTIPLE-CHOICE") || strings.Contains(up, "EXAM")

	switch {
	case strings.Contains(up, " CE "):
		if exam {
			return offlineExamCE
		}
		return offlineLessonCE
	case strings.Contains(up, " EO "):
		return offlineLessonEO
	case strings.Contains(up, " EE "):
		return offlineLessonEE
	default:
		if exam {
			return offlineExamCO
		}
		return offlineLessonCO
	}
}

// Deterministic payloads. Kept minimal but structurally complete so every
// validator accepts them.
const (
	offlineLessonCO = `{
  "title": "Au bureau",
  "audio_script": "Bonjour. Aujourd'hui, nous parlons du travail. Marie commence a neuf heures et termine a dix-sept heures.",
  "questions": [
    {"question": "Quel est le sujet principal ?", "choices": ["Le sport", "Le travail", "La cuisine", "Le voyage"], "correct_answer": "B"},
    {"question": "A quelle heure Marie commence-t-elle ?", "choices": ["8h", "9h", "10h", "17h"], "correct_answer": "B"}
  ]
}`

	offlineLessonCE = `{
  "title": "Une nouvelle ville",
  "reading_text": "Bonjour, je m'appelle Lina. J'habite a Lyon depuis trois mois et je cherche un cours de francais.",
  "questions": [
    {"question": "Ou habite Lina ?", "choices": ["Paris", "Lyon", "Lille", "Nice"], "correct_answer": "B"},
    {"question": "Que cherche-t-elle ?", "choices": ["Un emploi", "Un logement", "Un cours", "Un billet"], "correct_answer": "C"}
  ]
}`

	offlineLessonEO = `{
  "topic": "Se presenter",
  "instructions": "Parlez de vous pendant 2 minutes : identite, parcours, objectifs.",
  "expected_points": ["identite", "profession", "objectifs"]
}`

	offlineLessonEE = `{
  "topic": "Mon projet professionnel",
  "instructions": "Redigez un texte structure presentant votre projet professionnel.",
  "min_words": 120,
  "sample_answer": "Je souhaite evoluer dans un environnement international ou je pourrai mettre a profit mes competences."
}`

	offlineExamCO = `{
  "passage": "Attention, le train de 14h32 a destination de Montreal partira voie 7. Les voyageurs munis d'une reservation sont invites a se presenter en tete de quai.",
  "questions": [
    {"stem": "Quelle est la destination du train ?", "difficulty": "easy", "choices": [{"text": "Quebec", "is_correct": false}, {"text": "Montreal", "is_correct": true}, {"text": "Ottawa", "is_correct": false}, {"text": "Toronto", "is_correct": false}], "explanation": "L'annonce indique la destination Montreal."},
    {"stem": "De quelle voie part le train ?", "difficulty": "medium", "choices": [{"text": "Voie 5", "is_correct": false}, {"text": "Voie 7", "is_correct": true}, {"text": "Voie 9", "is_correct": false}, {"text": "Voie 2", "is_correct": false}], "explanation": "La voie 7 est annoncee."},
    {"stem": "Qui doit se presenter en tete de quai ?", "difficulty": "medium", "choices": [{"text": "Tous les voyageurs", "is_correct": false}, {"text": "Les voyageurs avec reservation", "is_correct": true}, {"text": "Les familles", "is_correct": false}, {"text": "Le personnel", "is_correct": false}], "explanation": "Seuls les voyageurs munis d'une reservation sont concernes."},
    {"stem": "A quelle heure part le train ?", "difficulty": "easy", "choices": [{"text": "14h32", "is_correct": true}, {"text": "15h32", "is_correct": false}, {"text": "14h23", "is_correct": false}, {"text": "13h42", "is_correct": false}], "explanation": "L'horaire annonce est 14h32."},
    {"stem": "Ou cette annonce est-elle diffusee ?", "difficulty": "hard", "choices": [{"text": "Dans un aeroport", "is_correct": false}, {"text": "Dans une gare", "is_correct": true}, {"text": "Dans un bus", "is_correct": false}, {"text": "Dans un port", "is_correct": false}], "explanation": "Voie et quai indiquent une gare."}
  ]
}`

	offlineExamCE = `{
  "passage": "La bibliotheque municipale sera fermee du 3 au 10 mars pour travaux. Les retours de livres restent possibles via la boite exterieure. La reouverture est prevue le 11 mars a 9h.",
  "questions": [
    {"stem": "Pourquoi la bibliotheque ferme-t-elle ?", "difficulty": "easy", "choices": [{"text": "Pour des travaux", "is_correct": true}, {"text": "Pour un inventaire", "is_correct": false}, {"text": "Pour les vacances", "is_correct": false}, {"text": "Pour une greve", "is_correct": false}], "explanation": "Le texte mentionne des travaux."},
    {"stem": "Que reste-t-il possible pendant la fermeture ?", "difficulty": "medium", "choices": [{"text": "Emprunter des livres", "is_correct": false}, {"text": "Rendre des livres", "is_correct": true}, {"text": "Consulter sur place", "is_correct": false}, {"text": "Reserver une salle", "is_correct": false}], "explanation": "Les retours restent possibles via la boite exterieure."},
    {"stem": "Quand la bibliotheque rouvre-t-elle ?", "difficulty": "easy", "choices": [{"text": "Le 3 mars", "is_correct": false}, {"text": "Le 10 mars", "is_correct": false}, {"text": "Le 11 mars", "is_correct": true}, {"text": "Le 9 mars", "is_correct": false}], "explanation": "Reouverture prevue le 11 mars."},
    {"stem": "De quel type de texte s'agit-il ?", "difficulty": "medium", "choices": [{"text": "Une publicite", "is_correct": false}, {"text": "Un avis au public", "is_correct": true}, {"text": "Une lettre privee", "is_correct": false}, {"text": "Un article d'opinion", "is_correct": false}], "explanation": "C'est une information de service."},
    {"stem": "A quelle heure la reouverture a-t-elle lieu ?", "difficulty": "hard", "choices": [{"text": "8h", "is_correct": false}, {"text": "9h", "is_correct": true}, {"text": "10h", "is_correct": false}, {"text": "Midi", "is_correct": false}], "explanation": "Le texte precise 9h."}
  ]
}`
)
