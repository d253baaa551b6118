package course

// Alternative is one selectable answer of a question, with a locale-keyed label.
type Alternative struct {
	ID    string            `json:"id"`
	Label map[string]string `json:"label"`
}

// Question is a single-choice quiz question. CorrectAnswerIDs is the current
// schema; CorrectAnswerID is the legacy single-id form still present in older
// documents and read transparently.
type Question struct {
	ID               string            `json:"id"`
	Title            map[string]string `json:"title"`
	Content          map[string]string `json:"content"`
	Alternatives     []Alternative     `json:"alternatives"`
	CorrectAnswerIDs []string          `json:"correct_answer_ids"`
	CorrectAnswerID  string            `json:"correct_answer_id"` // legacy schema
}

// hasAlternative reports whether id refers to one of the question's alternatives.
func (q *Question) hasAlternative(id string) bool {
	for _, alt := range q.Alternatives {
		if alt.ID == id {
			return true
		}
	}
	return false
}

// NormalizedCorrectIDs resolves the two correct-answer schemas into one id set:
// the new set if present and every id refers to an existing alternative,
// else the legacy single id if valid, else the first alternative's id,
// else empty.
func (q *Question) NormalizedCorrectIDs() []string {
	if len(q.CorrectAnswerIDs) > 0 {
		valid := true
		for _, id := range q.CorrectAnswerIDs {
			if !q.hasAlternative(id) {
				valid = false
				break
			}
		}
		if valid {
			return q.CorrectAnswerIDs
		}
	}
	if q.CorrectAnswerID != "" && q.hasAlternative(q.CorrectAnswerID) {
		return []string{q.CorrectAnswerID}
	}
	if len(q.Alternatives) > 0 {
		return []string{q.Alternatives[0].ID}
	}
	return nil
}

// IsCorrect reports whether the chosen alternative is in the normalized
// correct-answer set.
func (q *Question) IsCorrect(alternativeID string) bool {
	if alternativeID == "" {
		return false
	}
	for _, id := range q.NormalizedCorrectIDs() {
		if id == alternativeID {
			return true
		}
	}
	return false
}
