// Package jobs provides job-posting retrieval, market-requirement
// aggregation, and market insight queries.
package jobs

import (
	"context"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Source produces job postings for a title/location query.
type Source interface {
	Search(ctx context.Context, title, location string, limit int) ([]types.JobPosting, error)
}

// MockSource serves curated posting templates instead of calling job boards.
// Postings are grouped by role family and selected by title keywords; the
// location field of each template is filled with the requested location.
type MockSource struct{}

// NewMockSource creates a MockSource.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// Search returns up to limit postings for the role family matching title.
// Families repeat to fill the limit when they have fewer templates.
func (s *MockSource) Search(_ context.Context, title, location string, limit int) ([]types.JobPosting, error) {
	if limit <= 0 {
		return []types.JobPosting{}, nil
	}

	templates := templatesForTitle(title)
	out := make([]types.JobPosting, 0, limit)
	for len(out) < limit {
		for _, tpl := range templates {
			if len(out) == limit {
				break
			}
			p := tpl
			p.Location = location
			out = append(out, p)
		}
	}
	return out, nil
}

// templatesForTitle picks the role family for a job title. Data science and
// hardware keywords route to their families; everything else is treated as
// software engineering.
func templatesForTitle(title string) []types.JobPosting {
	lowered := strings.ToLower(title)
	switch {
	case strings.Contains(lowered, "data scientist"),
		strings.Contains(lowered, "ml"),
		strings.Contains(lowered, "machine learning"):
		return dataScienceTemplates
	case strings.Contains(lowered, "hardware"),
		strings.Contains(lowered, "fpga"),
		strings.Contains(lowered, "embedded"):
		return hardwareTemplates
	default:
		return softwareTemplates
	}
}

var softwareTemplates = []types.JobPosting{
	{
		Title:       "Software Engineer",
		Company:     "Tech Corp",
		Description: "We are looking for a software engineer with experience in Python, JavaScript, React, Node.js, AWS, Docker, and SQL. Must have experience with agile development, Git, and RESTful APIs. Bachelor's degree in Computer Science required.",
		Salary:      "$80,000 - $120,000",
		URL:         "https://example.com/job1",
	},
	{
		Title:       "Full Stack Developer",
		Company:     "StartupXYZ",
		Description: "Full stack developer needed with React, Angular, Node.js, MongoDB, PostgreSQL, and cloud experience (AWS/Azure). Experience with TypeScript, Docker, Kubernetes, and CI/CD pipelines preferred.",
		Salary:      "$70,000 - $110,000",
		URL:         "https://example.com/job2",
	},
	{
		Title:       "Backend Engineer",
		Company:     "DataFlow Inc",
		Description: "Backend engineer with Python, Django, FastAPI, PostgreSQL, Redis, and microservices architecture. Experience with Kafka, Docker, Kubernetes, and monitoring tools required.",
		Salary:      "$90,000 - $130,000",
		URL:         "https://example.com/job3",
	},
}

var dataScienceTemplates = []types.JobPosting{
	{
		Title:       "Data Scientist",
		Company:     "AI Analytics Co",
		Description: "Data scientist role requiring Python, R, SQL, TensorFlow, PyTorch, scikit-learn, pandas, and numpy. Experience with machine learning, deep learning, and statistical analysis. PhD preferred.",
		Salary:      "$100,000 - $150,000",
		URL:         "https://example.com/job4",
	},
	{
		Title:       "ML Engineer",
		Company:     "MLOps Solutions",
		Description: "Machine learning engineer with Python, TensorFlow, PyTorch, Kubernetes, Docker, and MLOps experience. Knowledge of NLP, computer vision, and model deployment required.",
		Salary:      "$110,000 - $160,000",
		URL:         "https://example.com/job5",
	},
}

var hardwareTemplates = []types.JobPosting{
	{
		Title:       "Hardware Engineer",
		Company:     "ChipDesign Corp",
		Description: "Hardware engineer with Verilog, VHDL, SystemVerilog, and Vivado experience. FPGA development, ASIC design, and PCB layout skills required. Experience with Cadence, Synopsys tools preferred.",
		Salary:      "$85,000 - $125,000",
		URL:         "https://example.com/job6",
	},
	{
		Title:       "FPGA Engineer",
		Company:     "Embedded Systems Ltd",
		Description: "FPGA engineer with Xilinx Vivado, Altera Quartus, Verilog, and embedded systems experience. Knowledge of ARM, RISC-V, and communication protocols (SPI, I2C, UART) required.",
		Salary:      "$90,000 - $135,000",
		URL:         "https://example.com/job7",
	},
}
