package job

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

const (
	PostingIDField      = "ID"
	PostingCompanyField = "Company"
	PostingSourceField  = "Source"
)

// Postings is a mutable list of job postings flowing through the filter
// pipeline.
type Postings struct {
	Items []*Posting
}

// Posting is one job record as delivered by a board export. ID is the only
// required field; everything else may be empty.
type Posting struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Department  string `json:"department,omitempty"`
	URL         string `json:"url,omitempty"`
	Source      string `json:"source,omitempty"`

	// Match is attached by the match filter once the posting is scored.
	Match *MatchSummary `json:"match,omitempty"`
}

// MatchSummary carries the matcher verdict next to the posting, mirroring
// the fields of the full match report.
type MatchSummary struct {
	BestResume     string  `json:"best_resume"`
	Score          float64 `json:"best_match_score"`
	Recommendation string  `json:"recommendation"`
}

func (p *Posting) GetStringField(name string) string {
	switch name {
	case PostingIDField:
		return p.ID
	case PostingCompanyField:
		return p.Company
	case PostingSourceField:
		return p.Source

	default:
		return ""
	}
}

func (p *Postings) Len() int {
	return len(p.Items)
}

func (p *Postings) IDs() []string {
	ids := make([]string, 0, len(p.Items))
	for _, posting := range p.Items {
		ids = append(ids, posting.ID)
	}
	return ids
}

func (p *Postings) FindByID(id string) *Posting {
	for _, posting := range p.Items {
		if posting.ID == id {
			return posting
		}
	}
	return nil
}

// Exclude removes postings whose field matches one of the targets and
// returns the removed ids.
func (p *Postings) Exclude(name string, targets []string) []string {
	var excluded []string
	for _, target := range targets {
		for idx, posting := range p.Items {
			if posting.GetStringField(name) == target {
				p.RemoveByIndex(idx)
				excluded = append(excluded, posting.ID)
				break
			}
		}
	}
	return excluded
}

// RemoveByIndex removes a posting from the list by index. Does not preserve order.
func (p *Postings) RemoveByIndex(idx int) {
	p.Items[idx] = p.Items[len(p.Items)-1]
	p.Items = p.Items[:len(p.Items)-1]
}

// ReportByCompany groups postings by company for human review, carrying the
// match verdict when one is attached.
func (p *Postings) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, posting := range p.Items {
		key := posting.Company
		if key == "" {
			key = "unknown"
		}

		entry := map[string]string{
			"title":  posting.Title,
			"url":    posting.URL,
			"source": posting.Source,
		}
		if posting.Match != nil {
			entry["best_resume"] = posting.Match.BestResume
			entry["match_score"] = strconv.FormatFloat(posting.Match.Score, 'f', 1, 64)
			entry["recommendation"] = posting.Match.Recommendation
		}

		report[key] = append(report[key], entry)
	}
	return report
}

// DumpToTmpFile writes the postings as indented JSON to a temp file and
// returns its name.
func (p *Postings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "postings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// LoadPostingsFromFile reads a postings export file. An empty file yields an
// empty list rather than an error.
func LoadPostingsFromFile(path string) (*Postings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &Postings{}, nil
	}

	var postings Postings
	if err := json.NewDecoder(file).Decode(&postings); err != nil {
		return nil, fmt.Errorf("decoding postings file %q: %w", path, err)
	}
	return &postings, nil
}
