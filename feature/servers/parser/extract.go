package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"server-relay/feature/servers/models"

	"github.com/bwmarrin/discordgo"
)

var (
	teleportPattern = regexp.MustCompile("TeleportToPlaceInstance\\([^)]+,\\s*['\"`]?([^'\"`,)\\s]+)")
	uuidPattern     = regexp.MustCompile(`([0-9a-fA-F]{8}-[0-9a-fA-F-]{4,}-[0-9a-fA-F]{8,})`)
	codeFence       = strings.NewReplacer("```", "", "`", "")
)

const (
	minContentIDLength = 10
	minJobTokenLength  = 9
)

// Options tune the heuristics that are known to produce false positives.
type Options struct {
	// LooseContentIDs accepts any message content of at least ten
	// characters as a job id, not only content containing "-" or "/".
	LooseContentIDs bool
}

// Extractor recovers server fields from channel messages.
type Extractor struct {
	opts Options
}

// NewExtractor creates an extractor with the given options.
func NewExtractor(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// Extract runs every classification pass over msg in a fixed order. Later
// matches overwrite earlier ones, both across fields and across embeds.
// It never fails; anything unrecognised is left empty.
func (e *Extractor) Extract(msg *discordgo.Message) models.ExtractedRecord {
	var rec models.ExtractedRecord
	if msg == nil {
		return rec
	}

	if id, ok := e.ContentJobID(msg.Content); ok {
		rec.JobID = id
	}

	for _, embed := range msg.Embeds {
		if embed == nil {
			continue
		}
		for _, field := range embed.Fields {
			if field == nil {
				continue
			}
			ClassifyField(&rec, field.Name, field.Value)
		}
		if rec.ServerName == "" && embed.Title != "" {
			rec.ServerName = embed.Title
		}
		if rec.JobID == "" {
			if id, ok := DescriptionJobID(embed.Description); ok {
				rec.JobID = id
			}
		}
	}

	return rec
}

// ContentJobID treats bare message content as a job id when it looks like one.
func (e *Extractor) ContentJobID(content string) (string, bool) {
	if strings.TrimSpace(content) == "" {
		return "", false
	}
	candidate := strings.TrimSpace(strings.ReplaceAll(content, "`", ""))
	if utf8.RuneCountInString(candidate) < minContentIDLength {
		return "", false
	}
	if e.opts.LooseContentIDs || strings.ContainsAny(candidate, "-/") {
		return candidate, true
	}
	return "", false
}

// fieldRule assigns a field value to rec when match accepts the field name.
type fieldRule struct {
	kind  string
	match func(name string) bool
	apply func(rec *models.ExtractedRecord, value string)
}

// fieldRules are tested in order; the first matching rule claims the field.
var fieldRules = []fieldRule{
	{
		kind: "name",
		// "Name" anywhere, or "name" in any case at the start of a word, so
		// "Server name" matches and "Username" does not.
		match: func(name string) bool {
			return strings.Contains(name, "Name") || hasWordFold(name, "name")
		},
		apply: func(rec *models.ExtractedRecord, value string) {
			rec.ServerName = value
		},
	},
	{
		kind: "money",
		match: func(name string) bool {
			return containsFold(name, "money") || strings.Contains(name, "💰") ||
				containsFold(name, "per sec") || containsFold(name, "generation")
		},
		apply: func(rec *models.ExtractedRecord, value string) {
			rec.MoneyPerSec = ParseAmount(value)
		},
	},
	{
		kind: "players",
		match: func(name string) bool {
			return containsFold(name, "players") || strings.Contains(name, "👥")
		},
		apply: func(rec *models.ExtractedRecord, value string) {
			rec.Players = strings.ReplaceAll(value, "*", "")
		},
	},
	{
		kind: "job",
		match: func(name string) bool {
			return containsFold(name, "job")
		},
		apply: func(rec *models.ExtractedRecord, value string) {
			if id, ok := FieldJobID(value); ok {
				rec.JobID = id
			}
		},
	},
}

// ClassifyField applies the first rule whose pattern matches name and
// reports which kind of field it was, or "" when none matched.
func ClassifyField(rec *models.ExtractedRecord, name, value string) string {
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	for _, rule := range fieldRules {
		if rule.match(name) {
			rule.apply(rec, value)
			return rule.kind
		}
	}
	return ""
}

// FieldJobID cleans a job field value. The first whitespace separated token
// longer than eight characters is preferred over the whole value.
func FieldJobID(value string) (string, bool) {
	clean := strings.TrimSpace(codeFence.Replace(value))
	if clean == "" {
		return "", false
	}
	for _, token := range strings.Fields(clean) {
		if utf8.RuneCountInString(token) >= minJobTokenLength {
			return token, true
		}
	}
	return clean, true
}

// DescriptionJobID scans an embed description for a teleport call and then
// for a UUID-shaped token. A UUID match takes precedence.
func DescriptionJobID(desc string) (string, bool) {
	if desc == "" {
		return "", false
	}
	var id string
	if m := teleportPattern.FindStringSubmatch(desc); m != nil {
		id = m[1]
	}
	if m := uuidPattern.FindStringSubmatch(desc); m != nil {
		id = m[1]
	}
	return id, id != ""
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// hasWordFold reports whether word occurs in s, ignoring case, at a position
// not preceded by a letter. word must be lower case ASCII.
func hasWordFold(s, word string) bool {
	lower := strings.ToLower(s)
	for i := 0; i+len(word) <= len(lower); {
		j := strings.Index(lower[i:], word)
		if j < 0 {
			return false
		}
		at := i + j
		prev, _ := utf8.DecodeLastRuneInString(lower[:at])
		if at == 0 || !unicode.IsLetter(prev) {
			return true
		}
		i = at + len(word)
	}
	return false
}
