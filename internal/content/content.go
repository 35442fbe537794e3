// Package content holds the static page data: the profile shown in the hero and about
// sections and the project table.
package content

// Stat is one labelled figure in the about section.
type Stat struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Value string `yaml:"value" json:"value" validate:"required"`
}

// Profile describes the page owner.
type Profile struct {
	Name          string `yaml:"name" json:"name" validate:"required"`
	Role          string `yaml:"role" json:"role"`
	Badge         string `yaml:"badge" json:"badge"`
	Headline      string `yaml:"headline" json:"headline"`
	About         string `yaml:"about" json:"about"`
	Greeting      string `yaml:"greeting" json:"greeting"`
	ProjectsBlurb string `yaml:"projects_blurb" json:"projects_blurb"`
	ContactBlurb  string `yaml:"contact_blurb" json:"contact_blurb"`
	Email         string `yaml:"email" json:"email" validate:"omitempty,email"`
	CVPath        string `yaml:"cv_path" json:"cv_path" validate:"omitempty,link"`
	Footer        string `yaml:"footer" json:"footer"`
	Stats         []Stat `yaml:"stats" json:"stats" validate:"max=8,dive"`
}

// Project is one entry in the projects grid. Live and Source are link targets; "#" means
// no destination yet. SourceDir optionally points at a local checkout whose origin remote
// fills in Source.
type Project struct {
	ID          int      `yaml:"id" json:"id" validate:"gte=0"`
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags" json:"tags" validate:"dive,required"`
	Live        string   `yaml:"live" json:"live" validate:"omitempty,link"`
	Source      string   `yaml:"source" json:"source" validate:"omitempty,link"`
	SourceDir   string   `yaml:"source_dir" json:"-"`
}

// Content is everything the page renders apart from the theme.
type Content struct {
	Profile  Profile   `yaml:"profile" json:"profile"`
	Projects []Project `yaml:"projects" json:"projects" validate:"min=1,dive"`
}

// Placeholder is the link target for projects without a destination.
const Placeholder = "#"

// HasLink reports whether target points somewhere.
func HasLink(target string) bool {
	return target != "" && target != Placeholder
}

// Default returns the built-in page content.
func Default() Content {
	return Content{
		Profile: Profile{
			Name:          "Abdul-Ghaniy",
			Role:          "Frontend Developer — Vibe Coding",
			Badge:         "Frontend",
			Headline:      "I build polished, accessible interfaces with delightful micro-interactions and reliable architecture. Currently focused on React, performant UI, and designing for real user needs.",
			About:         "I’m a frontend developer who enjoys turning vague product goals into clean, maintainable interfaces. I focus on performance, accessibility, and joyful details — the small things that make products feel alive.",
			Greeting:      "Let’s build vibes",
			ProjectsBlurb: "Selected work — focused on impact",
			ContactBlurb:  "Want to collaborate? Fill the form and I’ll get back within a few days.",
			Email:         "you@example.com",
			CVPath:        "/cv.pdf",
			Footer:        "Made with ✨ — Built for vibe coding practice",
			Stats: []Stat{
				{Label: "Experience", Value: "4+ yrs"},
				{Label: "Main stack", Value: "React • Tailwind"},
				{Label: "Design", Value: "Figma"},
				{Label: "Location", Value: "Nigeria"},
			},
		},
		Projects: []Project{
			{
				ID:          1,
				Title:       "EcoCart - Smart Grocery",
				Description: "A PWA that reduces food waste with recipe suggestions based on expiry dates.",
				Tags:        []string{"PWA", "React", "IndexedDB"},
				Live:        Placeholder,
				Source:      Placeholder,
			},
			{
				ID:          2,
				Title:       "PulsePay Dashboard",
				Description: "Realtime payments dashboard with WebSocket updates and analytics charts.",
				Tags:        []string{"Next.js", "Socket.IO", "Charts"},
				Live:        Placeholder,
				Source:      Placeholder,
			},
			{
				ID:          3,
				Title:       "Classroom CBT Portal",
				Description: "Secure CBT exam platform with timed sessions and automatic grading.",
				Tags:        []string{"Express", "Auth", "Postgres"},
				Live:        Placeholder,
				Source:      Placeholder,
			},
		},
	}
}
