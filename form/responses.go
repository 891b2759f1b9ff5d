package form

import "fmt"

// Response is one recorded answer, kept in the order it was given.
type Response struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// ResponseMap is the single source of truth for what has been answered.
// Entries are append-only: a linear conversation never edits an earlier
// answer in place.
type ResponseMap struct {
	entries []Response
	index   map[string]int
}

func NewResponseMap() *ResponseMap {
	return &ResponseMap{index: make(map[string]int)}
}

// Record appends an answer under the question id. Recording the same id
// twice violates the append-only contract and fails.
func (m *ResponseMap) Record(questionID, answer string) error {
	if questionID == "" {
		return fmt.Errorf("empty question id")
	}
	if _, ok := m.index[questionID]; ok {
		return fmt.Errorf("question %q already answered", questionID)
	}
	m.index[questionID] = len(m.entries)
	m.entries = append(m.entries, Response{QuestionID: questionID, Answer: answer})
	return nil
}

func (m *ResponseMap) Get(questionID string) (string, bool) {
	i, ok := m.index[questionID]
	if !ok {
		return "", false
	}
	return m.entries[i].Answer, true
}

func (m *ResponseMap) Has(questionID string) bool {
	_, ok := m.index[questionID]
	return ok
}

func (m *ResponseMap) Len() int {
	return len(m.entries)
}

// Entries returns the recorded answers in answer order. The returned slice
// is a copy.
func (m *ResponseMap) Entries() []Response {
	out := make([]Response, len(m.entries))
	copy(out, m.entries)
	return out
}
