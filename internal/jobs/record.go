package jobs

import (
	"encoding/json"
	"fmt"
	"os"
)

// defaultApplicants is assumed when a posting carries no applicant count.
const defaultApplicants = 100

// Record is one job posting as returned by a Source. The core treats it as
// read-only input.
type Record struct {
	Title       string `json:"title,omitempty" mapstructure:"title"`
	Company     string `json:"company,omitempty" mapstructure:"company"`
	Location    string `json:"location,omitempty" mapstructure:"location"`
	Description string `json:"description,omitempty" mapstructure:"description"`
	Link        string `json:"link,omitempty" mapstructure:"link"`
	Applicants  int    `json:"applicants,omitempty" mapstructure:"applicants"`
	SalaryRange string `json:"salary_range,omitempty" mapstructure:"salary_range"`
}

// Key identifies a posting for deduplication.
func (r *Record) Key() string {
	return fmt.Sprintf("%s|%s|%s", r.Title, r.Company, r.Location)
}

// ApplicantCount returns the applicant count, falling back to the default
// when the source did not report one.
func (r *Record) ApplicantCount() int {
	if r.Applicants <= 0 {
		return defaultApplicants
	}
	return r.Applicants
}

type Jobs struct {
	Items []*Record
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

// Append adds all records from another list.
func (j *Jobs) Append(other *Jobs) {
	if other == nil {
		return
	}
	j.Items = append(j.Items, other.Items...)
}

// Dedupe removes postings sharing the same (title, company, location) triple,
// keeping the first occurrence. Returns the number of dropped records.
func (j *Jobs) Dedupe() int {
	seen := make(map[string]struct{}, len(j.Items))
	unique := make([]*Record, 0, len(j.Items))

	for _, record := range j.Items {
		key := record.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, record)
	}

	dropped := len(j.Items) - len(unique)
	j.Items = unique
	return dropped
}

// FindByKey returns the record with the given identity triple, or nil.
func (j *Jobs) FindByKey(key string) *Record {
	for _, record := range j.Items {
		if record.Key() == key {
			return record
		}
	}
	return nil
}

// DumpToTmpFile writes the list to a temporary JSON file and returns its name.
func (j *Jobs) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(j); err != nil {
		return "", err
	}
	return file.Name(), nil
}
