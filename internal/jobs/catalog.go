package jobs

import (
	"context"
	"strings"
)

// Catalog is an in-process Source backed by a static set of sample postings
// keyed by query category. It lets the quiz run end to end without network
// setup and backs the demo command.
type Catalog struct {
	categories map[string][]*Record
	fallback   string
	maxResults int
}

// NewCatalog returns a catalog with the built-in sample postings.
func NewCatalog(maxResults int) *Catalog {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &Catalog{
		categories: catalogPostings,
		fallback:   "project manager",
		maxResults: maxResults,
	}
}

// Search matches the query against the catalog categories by substring. A
// query outside every category falls back to the default postings.
func (c *Catalog) Search(_ context.Context, query, location string, _ []string) (*Jobs, error) {
	lower := strings.ToLower(query)

	for category, records := range c.categories {
		if strings.Contains(lower, category) {
			return c.take(records, location), nil
		}
	}

	return c.take(c.categories[c.fallback], location), nil
}

func (c *Catalog) take(records []*Record, location string) *Jobs {
	result := &Jobs{}
	for i, record := range records {
		if i == c.maxResults {
			break
		}
		copied := *record
		if location != "" {
			copied.Location = location
		}
		result.Items = append(result.Items, &copied)
	}
	return result
}

var catalogPostings = map[string][]*Record{
	"project manager": {
		{
			Title:       "Senior Project Manager",
			Company:     "TechCorp Solutions",
			Description: "Lead cross-functional teams in delivering software projects. Requires strong leadership, fast-paced environment.",
			Link:        "https://example.com/job1",
			Applicants:  45,
			SalaryRange: "$80k - $120k",
		},
		{
			Title:       "Project Manager - Client Services",
			Company:     "Global Consulting",
			Description: "Manage client projects with focus on communication and collaboration. Work in structured, professional environment.",
			Link:        "https://example.com/job2",
			Applicants:  120,
			SalaryRange: "$70k - $100k",
		},
	},
	"software engineer": {
		{
			Title:       "Full Stack Software Engineer",
			Company:     "InnovateTech",
			Description: "Build scalable web applications. High-pressure, fast-paced startup environment. Strong problem-solving required.",
			Link:        "https://example.com/job3",
			Applicants:  250,
			SalaryRange: "$75k - $110k",
		},
		{
			Title:       "Backend Engineer",
			Company:     "StableCorpServices",
			Description: "Develop backend systems in a structured environment. Focus on code quality and testing.",
			Link:        "https://example.com/job4",
			Applicants:  180,
			SalaryRange: "$80k - $115k",
		},
	},
	"emergency dispatcher": {
		{
			Title:       "Emergency Communications Operator",
			Company:     "City Emergency Services",
			Description: "Dispatch emergency responders. High-pressure environment requiring quick decision-making and stress resilience.",
			Link:        "https://example.com/job5",
			Applicants:  35,
			SalaryRange: "$50k - $70k",
		},
		{
			Title:       "911 Dispatcher",
			Company:     "Regional Response Center",
			Description: "Handle emergency calls and coordinate response teams. Requires resilience and calm under pressure.",
			Link:        "https://example.com/job6",
			Applicants:  28,
			SalaryRange: "$48k - $68k",
		},
	},
}
