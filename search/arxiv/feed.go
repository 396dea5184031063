package arxiv

import (
	"strings"
	"time"

	"github.com/SalmaOuardi/arxiv-research-copilot/search"
)

// Atom feed shapes for the arXiv export API.

type feed struct {
	Entries []entry `xml:"entry"`
}

type entry struct {
	ID         string     `xml:"id"`
	Title      string     `xml:"title"`
	Summary    string     `xml:"summary"`
	Published  string     `xml:"published"`
	Authors    []author   `xml:"author"`
	Categories []category `xml:"category"`
	Links      []link     `xml:"link"`
}

type author struct {
	Name string `xml:"name"`
}

type category struct {
	Term string `xml:"term,attr"`
}

type link struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// toResult maps an Atom entry into a raw provider record.
func (e entry) toResult() search.Result {
	authors := make([]string, 0, len(e.Authors))
	for _, a := range e.Authors {
		authors = append(authors, collapseSpace(a.Name))
	}

	categories := make([]string, 0, len(e.Categories))
	for _, c := range e.Categories {
		categories = append(categories, c.Term)
	}

	published, _ := time.Parse(time.RFC3339, e.Published)

	return search.Result{
		EntryID:    strings.TrimSpace(e.ID),
		Title:      collapseSpace(e.Title),
		Summary:    strings.TrimSpace(e.Summary),
		Authors:    authors,
		Categories: categories,
		Published:  published,
		PDFURL:     e.pdfURL(),
	}
}

// pdfURL picks the PDF link from the entry's link list, falling back to the
// /abs/ → /pdf/ URL rewrite arXiv guarantees for every paper.
func (e entry) pdfURL() string {
	for _, l := range e.Links {
		if l.Title == "pdf" || l.Type == "application/pdf" {
			return l.Href
		}
	}
	return strings.Replace(strings.TrimSpace(e.ID), "/abs/", "/pdf/", 1)
}

// collapseSpace joins the feed's wrapped lines into single-spaced text.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
