package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ResumeDocument is the structured résumé loaded once at startup. All sections
// are optional; an absent section simply contributes nothing to the index.
type ResumeDocument struct {
	Summary   string              `json:"summary,omitempty"`
	Projects  []Project           `json:"projects,omitempty"`
	Skills    map[string][]string `json:"skills,omitempty"`
	Education *Education          `json:"education,omitempty"`
	Contact   *ContactInfo        `json:"contact,omitempty"`
}

// Project is one portfolio project entry
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Education holds the single education entry of the résumé
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
}

// ContactInfo holds the contact section of the résumé
type ContactInfo struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	LeetCode  string `json:"leetcode,omitempty"`
	Address   string `json:"address,omitempty"`
}

// notAvailable is the placeholder for missing contact fields
const notAvailable = "Not available"

// LoadResume reads and parses a résumé JSON document from path
func LoadResume(path string) (*ResumeDocument, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read resume file", goerr.V("path", path))
	}

	var resume ResumeDocument
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, goerr.Wrap(err, "failed to parse resume JSON", goerr.V("path", path))
	}

	return &resume, nil
}

// ContactBlock formats the contact section as a fixed multi-line block.
// Every missing field is rendered as "Not available".
func (x *ResumeDocument) ContactBlock() string {
	contact := x.Contact
	if contact == nil {
		contact = &ContactInfo{}
	}

	var sb strings.Builder
	sb.WriteString("Contact Information:\n")
	fmt.Fprintf(&sb, "Email: %s\n", orNotAvailable(contact.Email))
	fmt.Fprintf(&sb, "Phone: %s\n", orNotAvailable(contact.Phone))
	fmt.Fprintf(&sb, "Portfolio: %s\n", orNotAvailable(contact.Portfolio))
	fmt.Fprintf(&sb, "GitHub: %s\n", orNotAvailable(contact.GitHub))
	fmt.Fprintf(&sb, "LinkedIn: %s\n", orNotAvailable(contact.LinkedIn))
	fmt.Fprintf(&sb, "LeetCode: %s\n", orNotAvailable(contact.LeetCode))
	fmt.Fprintf(&sb, "Address: %s", orNotAvailable(contact.Address))

	return sb.String()
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
