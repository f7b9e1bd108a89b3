package game

import "fmt"

// Tag classifies a message so renderers can colour it.
type Tag uint8

const (
	TagPlain Tag = iota
	TagPlayerAttack
	TagEnemyAttack
	TagNeedsTarget
	TagStatusApplied
	TagDescend
	TagPlayerDie
	TagEnemyDie
	TagWelcome
	TagHeal
	TagInvalid
	TagImpossible
	TagError
)

// Message is one log line. Count > 1 means the same text arrived several
// times in a row.
type Message struct {
	Text  string
	Tag   Tag
	Count int
}

// FullText returns the text with a repeat counter when stacked.
func (m Message) FullText() string {
	if m.Count > 1 {
		return fmt.Sprintf("%s (x%d)", m.Text, m.Count)
	}
	return m.Text
}

// MessageLog keeps the full message history of a session.
type MessageLog struct {
	messages []Message
}

// Add appends text, or bumps the count of the last message if it has the
// same text.
func (l *MessageLog) Add(text string, tag Tag) {
	if n := len(l.messages); n > 0 && l.messages[n-1].Text == text {
		l.messages[n-1].Count++
		return
	}
	l.messages = append(l.messages, Message{Text: text, Tag: tag, Count: 1})
}

// Last returns up to n of the most recent messages, oldest first.
func (l *MessageLog) Last(n int) []Message {
	if n <= 0 {
		return nil
	}
	start := max(0, len(l.messages)-n)
	return append([]Message(nil), l.messages[start:]...)
}

// All returns a copy of the full history.
func (l *MessageLog) All() []Message {
	return append([]Message(nil), l.messages...)
}

// Len returns the number of (stacked) messages.
func (l *MessageLog) Len() int { return len(l.messages) }
