package content

import "fmt"

// Project is a portfolio entry shown in the project carousel.
type Project struct {
	ID       string
	Title    string
	Summary  string
	ImageURL string
	Tags     []string
	Order    float64
}

// Testimonial is a customer quote.
type Testimonial struct {
	ID      string
	Quote   string
	Author  string
	Company string
}

// Stat is a headline number animated by a counter.
type Stat struct {
	ID     string
	Label  string
	Value  float64
	Suffix string
}

// MapProject maps a record with Title, Summary, Image, Tags and Order
// properties.
func MapProject(r Record) (Project, error) {
	title := r.Text("Title")
	if title == "" {
		return Project{}, fmt.Errorf("record %s: missing Title", r.ID)
	}
	order, err := r.Float("Order")
	if err != nil {
		order = 0
	}
	return Project{
		ID:       r.ID,
		Title:    title,
		Summary:  r.Text("Summary"),
		ImageURL: r.Text("Image"),
		Tags:     r.Strings("Tags"),
		Order:    order,
	}, nil
}

// MapTestimonial maps a record with Quote, Author and Company properties.
func MapTestimonial(r Record) (Testimonial, error) {
	quote := r.Text("Quote")
	if quote == "" {
		return Testimonial{}, fmt.Errorf("record %s: missing Quote", r.ID)
	}
	return Testimonial{
		ID:      r.ID,
		Quote:   quote,
		Author:  r.Text("Author"),
		Company: r.Text("Company"),
	}, nil
}

// MapStat maps a record with Label, Value and Suffix properties.
func MapStat(r Record) (Stat, error) {
	v, err := r.Float("Value")
	if err != nil {
		return Stat{}, err
	}
	return Stat{
		ID:     r.ID,
		Label:  r.Text("Label"),
		Value:  v,
		Suffix: r.Text("Suffix"),
	}, nil
}

// Site groups the collections a page renders from.
type Site struct {
	Projects     *Collection[Project]
	Testimonials *Collection[Testimonial]
	Stats        *Collection[Stat]
}

// DataSources names the source IDs for each content type.
type DataSources struct {
	Projects     string
	Testimonials string
	Stats        string
}

// NewSite wires the standard collections to src. Projects sort by Order
// ascending, testimonials and stats by creation time descending.
func NewSite(src Source, ids DataSources, opts Options) *Site {
	return &Site{
		Projects: NewCollection("projects", src, ids.Projects,
			Sort{Key: "Order", Direction: Ascending}, MapProject, opts),
		Testimonials: NewCollection("testimonials", src, ids.Testimonials,
			Sort{Key: "Created", Direction: Descending}, MapTestimonial, opts),
		Stats: NewCollection("stats", src, ids.Stats,
			Sort{Key: "Created", Direction: Descending}, MapStat, opts),
	}
}

// Invalidate drops every cached result.
func (s *Site) Invalidate() {
	s.Projects.Invalidate()
	s.Testimonials.Invalidate()
	s.Stats.Invalidate()
}
