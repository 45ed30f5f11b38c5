package impl

import (
	"fmt"
	"regexp"
	"strings"

	"adcopy/internal/domain/entity"
)

// labelPattern matches a known field label at the start of a line, tolerating
// list markers, markdown emphasis, and "HEADLINE 1" or "HEADLINE_1" spellings.
var labelPattern = regexp.MustCompile(`(?im)^[ \t>*#-]*\**[ \t]*(` +
	`HEADLINE(?:[ _]?[1-3])?|PRIMARY[ _]TEXT|BODY|DESCRIPTION(?:[ _]?[1-2])?|` +
	`CTA|CALL[ _]TO[ _]ACTION|HOOK|SCRIPT|HASHTAGS` +
	`)\**[ \t]*:\**`)

var emphasisPattern = regexp.MustCompile(`\*{1,3}|_{2,3}`)

// dashReplacer folds em, en, figure and minus dashes to a hyphen.
var dashReplacer = strings.NewReplacer(
	"\u2014", "-",
	"\u2013", "-",
	"\u2012", "-",
	"\u2212", "-",
)

// labeledFields splits model output into label -> text. Each value runs up to
// the next known label or the end of the text. The first occurrence wins.
func labeledFields(text string) map[string]string {
	fields := make(map[string]string)

	matches := labelPattern.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		label := normalizeLabel(text[m[2]:m[3]])
		if _, seen := fields[label]; seen {
			continue
		}
		fields[label] = cleanupText(text[m[1]:end])
	}

	return fields
}

// normalizeLabel folds "Primary Text" and "PRIMARY_TEXT" to PRIMARYTEXT.
func normalizeLabel(label string) string {
	label = strings.ToUpper(label)
	label = strings.ReplaceAll(label, "_", "")

	return strings.ReplaceAll(label, " ", "")
}

// cleanupText removes markdown emphasis and normalizes dash characters.
func cleanupText(s string) string {
	s = emphasisPattern.ReplaceAllString(s, "")
	s = dashReplacer.Replace(s)

	return strings.TrimSpace(s)
}

// firstField returns the first non-empty value among labels.
func firstField(fields map[string]string, labels ...string) string {
	for _, label := range labels {
		if v := fields[label]; v != "" {
			return v
		}
	}

	return ""
}

func orPlaceholder(value, format string, variation int) string {
	if value != "" {
		return value
	}

	return fmt.Sprintf(format, variation)
}

// parseAdContent turns free-form model output into the platform's content.
// Missing fields get a placeholder naming the 1-based variation number, so a
// sloppy response never fails the run.
func parseAdContent(platform entity.Platform, text string, variation int) entity.AdContent {
	fields := labeledFields(text)

	switch platform {
	case entity.PlatformGoogle:
		return entity.GoogleAdContent{
			Headlines: []string{
				orPlaceholder(firstField(fields, "HEADLINE1", "HEADLINE"), "Headline 1 for variation %d", variation),
				orPlaceholder(fields["HEADLINE2"], "Headline 2 for variation %d", variation),
				orPlaceholder(fields["HEADLINE3"], "Headline 3 for variation %d", variation),
			},
			Descriptions: []string{
				orPlaceholder(firstField(fields, "DESCRIPTION1", "DESCRIPTION"), "Description 1 for variation %d", variation),
				orPlaceholder(fields["DESCRIPTION2"], "Description 2 for variation %d", variation),
			},
		}

	case entity.PlatformTikTok:
		hashtags := parseHashtags(fields["HASHTAGS"])
		if len(hashtags) == 0 {
			hashtags = []string{fmt.Sprintf("#variation%d", variation)}
		}

		return entity.TikTokAdContent{
			Hook:         orPlaceholder(fields["HOOK"], "Hook for variation %d", variation),
			Script:       orPlaceholder(firstField(fields, "SCRIPT", "BODY"), "Script for variation %d", variation),
			CallToAction: orPlaceholder(firstField(fields, "CTA", "CALLTOACTION"), "Call to action for variation %d", variation),
			Hashtags:     hashtags,
		}

	default:
		return entity.FacebookAdContent{
			Headline:     orPlaceholder(firstField(fields, "HEADLINE", "HEADLINE1"), "Headline for variation %d", variation),
			PrimaryText:  orPlaceholder(firstField(fields, "PRIMARYTEXT", "BODY"), "Primary text for variation %d", variation),
			Description:  orPlaceholder(firstField(fields, "DESCRIPTION", "DESCRIPTION1"), "Description for variation %d", variation),
			CallToAction: orPlaceholder(firstField(fields, "CTA", "CALLTOACTION"), "Call to action for variation %d", variation),
		}
	}
}

func parseHashtags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\n' || r == '\t'
	}) {
		tag = strings.TrimLeft(tag, "#")
		if tag == "" {
			continue
		}
		tags = append(tags, "#"+tag)
	}

	return tags
}
