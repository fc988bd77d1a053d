// Package types provides type definitions for structured data used throughout the career-compass system.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SkillCategory identifies one of the fixed taxonomy categories.
type SkillCategory string

// Taxonomy categories. The set is fixed; the taxonomy asset defines the
// token list for each one.
const (
	CategoryProgrammingLanguages SkillCategory = "programming_languages"
	CategoryFrameworks           SkillCategory = "frameworks"
	CategoryDatabases            SkillCategory = "databases"
	CategoryCloudDevops          SkillCategory = "cloud_devops"
	CategoryHardwareEngineering  SkillCategory = "hardware_engineering"
	CategoryAiMl                 SkillCategory = "ai_ml"
	CategoryDevelopmentTools     SkillCategory = "development_tools"
	CategoryWebTechnologies      SkillCategory = "web_technologies"
	CategorySoftSkills           SkillCategory = "soft_skills"
	CategoryCertifications       SkillCategory = "certifications"
	CategoryEmergingTech         SkillCategory = "emerging_tech"
)

// SkillSet maps each taxonomy category to the skill tokens found in a text,
// in taxonomy order. Every category is present, possibly with an empty list.
type SkillSet map[SkillCategory][]string

// Total returns the number of tokens across all categories.
func (s SkillSet) Total() int {
	n := 0
	for _, tokens := range s {
		n += len(tokens)
	}
	return n
}

// Lowered returns the set of all tokens across categories, lowercased.
// Taxonomy-derived tokens are lowercase already; external callers may
// supply mixed-case names, so lowering here is deliberate.
func (s SkillSet) Lowered() map[string]bool {
	out := make(map[string]bool)
	for _, tokens := range s {
		for _, tok := range tokens {
			out[strings.ToLower(tok)] = true
		}
	}
	return out
}

// SkillCount is one row of a frequency table: a skill token and the number
// of job postings mentioning it.
type SkillCount struct {
	Skill string
	Count int
}

// FrequencyTable is a skill histogram sorted descending by count, with ties
// kept in first-appearance order. It marshals as a JSON object whose keys
// keep the table order, matching the shape existing clients consume.
type FrequencyTable []SkillCount

// Get returns the count for a skill and whether it is present.
func (t FrequencyTable) Get(skill string) (int, bool) {
	for _, sc := range t {
		if sc.Skill == skill {
			return sc.Count, true
		}
	}
	return 0, false
}

// Top returns the first n entries (or the whole table if shorter).
func (t FrequencyTable) Top(n int) FrequencyTable {
	if n < 0 {
		n = 0
	}
	if len(t) <= n {
		return t
	}
	return t[:n]
}

// MarshalJSON emits {"skill": count, ...} preserving table order.
func (t FrequencyTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sc := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sc.Skill)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		count, err := json.Marshal(sc.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts the object form. Order of ties is not recoverable
// from JSON, so entries are re-sorted by count descending with key order as
// the tie-break.
func (t *FrequencyTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("frequency table must be a JSON object")
	}

	var table FrequencyTable
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var count int
		if err := dec.Decode(&count); err != nil {
			return err
		}
		table = append(table, SkillCount{Skill: key, Count: count})
	}
	table.sortStable()
	*t = table
	return nil
}

func (t FrequencyTable) sortStable() {
	// Insertion sort keeps first-appearance order among equal counts.
	for i := 1; i < len(t); i++ {
		for j := i; j > 0 && t[j].Count > t[j-1].Count; j-- {
			t[j], t[j-1] = t[j-1], t[j]
		}
	}
}
