package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rht-21/intervue/internal/feedback"
)

const feedbackSystemMsg = "You are a professional interviewer analyzing a mock interview. Your task is to evaluate the candidate based on structured categories."

// feedbackSchema pins the generator to the feedback contract: total score,
// the five fixed categories, strengths, areas for improvement and a final
// assessment. Category names are an enum so the model cannot invent axes.
var feedbackSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "totalScore": {"type": "integer", "minimum": 0, "maximum": 100},
    "categoryScores": {
      "type": "array",
      "minItems": 5,
      "maxItems": 5,
      "items": {
        "type": "object",
        "properties": {
          "name": {
            "type": "string",
            "enum": [
              "Communication Skills",
              "Technical Knowledge",
              "Problem-Solving",
              "Cultural & Role Fit",
              "Confidence & Clarity"
            ]
          },
          "score": {"type": "integer", "minimum": 0, "maximum": 100},
          "comment": {"type": "string"}
        },
        "required": ["name", "score", "comment"]
      }
    },
    "strengths": {"type": "array", "items": {"type": "string"}},
    "areasForImprovement": {"type": "array", "items": {"type": "string"}},
    "finalAssessment": {"type": "string"}
  },
  "required": ["totalScore", "categoryScores", "strengths", "areasForImprovement", "finalAssessment"]
}`)

// GenerateFeedback implements feedback.Generator.
func (c *Client) GenerateFeedback(ctx context.Context, prompt string) (*feedback.Generated, error) {
	respStr, err := c.Generate(ctx, feedbackSystemMsg, prompt, feedbackSchema)
	if err != nil {
		return nil, err
	}

	var generated feedback.Generated
	if err := json.Unmarshal([]byte(respStr), &generated); err != nil {
		return nil, fmt.Errorf("failed to parse ai response: %w", err)
	}
	return &generated, nil
}
