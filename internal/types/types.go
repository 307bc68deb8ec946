package types

// Meaning is a single definition of a word under one part of speech.
type Meaning struct {
	PartOfSpeech string `json:"partOfSpeech"`
	Definition   string `json:"definition"`
	Example      string `json:"example"`
}

// MeaningResult is the normalized dictionary answer returned to clients.
type MeaningResult struct {
	Word             string    `json:"word"`
	Phonetic         string    `json:"phonetic"`
	Meanings         []Meaning `json:"meanings"`
	Source           string    `json:"source"`
	HindiTranslation string    `json:"hindi_translation"`
}

// DailyWord is the puzzle solution resolved for a calendar date.
type DailyWord struct {
	Solution string `json:"solution"`
	Date     string `json:"date"`
	IsToday  bool   `json:"is_today"`
}

// Clone returns a deep copy so callers never share the Meanings backing array.
func (m *MeaningResult) Clone() *MeaningResult {
	if m == nil {
		return nil
	}
	c := *m
	c.Meanings = append([]Meaning(nil), m.Meanings...)
	return &c
}
