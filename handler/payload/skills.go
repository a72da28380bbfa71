package payload

import (
	"encoding/json"
	"errors"

	"github.com/skillpath/pkg/reconcile"
)

const SkillsFailedMessage = "Failed to fetch skills"
const SkillsErrorMessage = "An error occurred while fetching skills"

type Skill struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress,omitempty"`
}

// ProgressPercent is the fill of the skill's progress bar, clamped to 0..100.
func (s Skill) ProgressPercent() int {
	return min(max(s.Progress, 0), 100)
}

type SkillsRequest struct {
	Dream string `json:"dream"`
}

type SkillsResponse struct {
	Response *SkillsEnvelope `json:"response"`
}

type SkillsEnvelope struct {
	Skills []Skill `json:"skills"`
}

var ErrInvalidJSON = errors.New("response body is not valid JSON")

// ExtractSkills returns the skills list. Only a body that is not JSON at all is
// a plain error; JSON of any other shape is rejected with SkillsFailedMessage.
func ExtractSkills(body []byte) ([]Skill, error) {
	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}

	var data SkillsResponse

	if err := json.Unmarshal(body, &data); err != nil || data.Response == nil || data.Response.Skills == nil {
		return nil, reconcile.Rejected(SkillsFailedMessage)
	}

	return data.Response.Skills, nil
}
