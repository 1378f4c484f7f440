package formatter

import "strings"

// FormatChatWelcome is the banner shown when the interactive chat opens.
func FormatChatWelcome() string {
	var b strings.Builder
	b.WriteString(Header("Triage chat"))
	b.WriteString("\n")
	b.WriteString(Dim("Ask about the latest predictions. Type \"help\" for examples, Esc or Ctrl+C to leave.") + "\n")
	return b.String()
}

// FormatChatReply indents a (possibly multi-line) reply under the bot tag.
func FormatChatReply(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = StyleHeader.Render("krisis: ") + line
		} else {
			lines[i] = "        " + line
		}
	}
	return strings.Join(lines, "\n")
}

// FormatChatQuestion echoes the user's question.
func FormatChatQuestion(text string) string {
	return Dim("you: ") + text
}
