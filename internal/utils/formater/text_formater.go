package formater

import (
	"fmt"
	"regexp"
	"strings"

	"twitch_stream_watcher/internal/models"
)

// matches twitch-style @mentions up to the next space or punctuation
var tagPattern = regexp.MustCompile(`@[^\s.,!?]+`)

func ToLower(text string) string {
	return strings.ToLower(text)
}

// change all twitch tags to hyperlinks with twitch channel's address for telegram
func TwitchTagToTelegram(text string) string {
	for _, match := range tagPattern.FindAllString(text, -1) {
		text = strings.ReplaceAll(text, match, fmt.Sprintf("[%s](%s/%s)", match, models.TwitchWWWSchemeHost, match[1:]))
	}

	return text
}

// clear all @ symbols in tag subtrings because we can interpret it wrong
func ClearTags(text string) string {
	for _, match := range tagPattern.FindAllString(text, -1) {
		text = strings.ReplaceAll(text, match, match[1:])
	}

	return text
}
