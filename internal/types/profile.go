package types

// ContactInfo holds contact details pulled out of résumé text. Matches are
// kept in order of appearance and are not deduplicated.
type ContactInfo struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// Experience holds seniority-level and role keywords found in résumé text,
// each in keyword-list order.
type Experience struct {
	Levels []string `json:"levels"`
	Roles  []string `json:"roles"`
}

// ResumeProfile is the structured profile extracted from one résumé.
// It is built once per parse and never merged across parses.
type ResumeProfile struct {
	Contact    ContactInfo `json:"contact"`
	Skills     SkillSet    `json:"skills"`
	Education  []string    `json:"education"`
	Experience Experience  `json:"experience"`
	TextLength int         `json:"text_length"`
}

// ParsedResume wraps a ResumeProfile with the echo-back fields the upload
// endpoint returns alongside it.
type ParsedResume struct {
	ResumeProfile
	RawText  string `json:"raw_text"`
	Filename string `json:"filename"`
}
