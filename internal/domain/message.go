package domain

import "strings"

// NamePlaceholder is replaced by the recipient's name when a message is shown.
const NamePlaceholder = "{{name}}"

// FormatMessage substitutes recipientName for every occurrence of NamePlaceholder.
// With no recipient name the placeholder is removed.
func FormatMessage(message, recipientName string) string {
	return strings.ReplaceAll(message, NamePlaceholder, recipientName)
}
