package prompts

import (
	"fmt"
	"strings"

	"roomagent/models"
)

// MuteTemplate is the policy prompt for the mute decision. It is a package
// variable so deployments can override the policy text; {{agentName}} and
// {{recentMessages}} are the substitution points filled in at evaluation
// time. The footer pins the reply to a single YES or NO token so the answer
// can be parsed as a boolean.
var MuteTemplate = `# Task: Decide if {{agentName}} should mute this room and stop responding unless explicitly mentioned.

Recent conversation:
{{recentMessages}}

Should {{agentName}} mute this room and stop responding unless explicitly mentioned?

Respond with YES if:
- The most recent participant is being hostile, rude, or inappropriate toward {{agentName}}
- A participant has explicitly asked {{agentName}} to stop responding or be quiet
- {{agentName}}'s participation is unwelcome or is annoying the participants

Otherwise, respond with NO.

Answer with a single word: YES or NO.`

// BuildMutePrompt renders the mute policy prompt for an agent and the
// recent conversation
func BuildMutePrompt(agentName string, recentMessages []models.Memory) string {
	replacer := strings.NewReplacer(
		"{{agentName}}", agentName,
		"{{recentMessages}}", RenderRecentMessages(recentMessages),
	)
	return replacer.Replace(MuteTemplate)
}

// RenderRecentMessages formats a message slice into the dialogue block used
// in prompts. Records with no visible text (audit entries, thought-only
// acknowledgments) are skipped.
func RenderRecentMessages(messages []models.Memory) string {
	var b strings.Builder
	for _, msg := range messages {
		if strings.TrimSpace(msg.Content.Text) == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", msg.UserID, msg.Content.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}
