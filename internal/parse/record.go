package parse

// ResumeRecord is the canonical structured form of a parsed resume.
// Field names mirror the JSON shape requested from the model, which is
// also the persistence layer's contract.
type ResumeRecord struct {
	Contact        Contact      `json:"contact"`
	Summary        string       `json:"summary"`
	Education      []Education  `json:"education"`
	Projects       []Project    `json:"projects"`
	Experience     []Experience `json:"experience"`
	Skills         Skills       `json:"skills"`
	Certifications []string     `json:"certifications"`
	Achievements   []string     `json:"achievements"`
}

type Contact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Duration    string `json:"duration"`
	Location    string `json:"location"`
	Scores      string `json:"scores"`
}

type Project struct {
	Title       string `json:"title"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Skills struct {
	Programming     []string `json:"programming"`
	FrameworksTools []string `json:"frameworks_tools"`
	SoftSkills      []string `json:"soft_skills"`
}
