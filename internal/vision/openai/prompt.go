package openai

import (
	"fmt"
	"strings"
)

// Message is one chat message sent to the model.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = `You extract structured student information for school matching.
Respond with a single JSON object using exactly these keys:
{
  "grade_level": "",
  "grade_entering": "",
  "school_type_requested": "",
  "academic_strengths": [],
  "academic_challenges": [],
  "interests": [],
  "learning_needs": [],
  "test_scores": {},
  "special_services": [],
  "location": {"city": "", "state": "", "zip": ""},
  "summary": ""
}
Leave fields empty when the input does not mention them. Never invent data.
school_type_requested must be one of "elementary", "middle", "high" or empty.
grade_entering is the grade the student will enter next ("K" through "12").`

// BuildPrompt assembles the extraction conversation for the parent's free
// text and any uploaded document text.
func BuildPrompt(text, documentText string) []Message {
	var user strings.Builder
	if strings.TrimSpace(text) != "" {
		fmt.Fprintf(&user, "Parent's description:\n%s\n", strings.TrimSpace(text))
	}
	if strings.TrimSpace(documentText) != "" {
		fmt.Fprintf(&user, "\nUploaded student document:\n%s\n", strings.TrimSpace(documentText))
	}

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: user.String()},
	}
}

func buildFixPrompt(raw []byte) []Message {
	return []Message{
		{Role: "system", Content: "Repair the following so it is a single valid JSON object with the student profile schema. Respond with JSON only."},
		{Role: "user", Content: string(raw)},
	}
}
