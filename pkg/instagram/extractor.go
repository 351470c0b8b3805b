package instagram

import (
	"regexp"
	"strings"
)

// Rule is one extraction step: it targets a single field and yields a value
// when it matches the page. Rules run in table order and a rule whose field is
// already set is skipped, so the first match per field wins.
type Rule struct {
	Field Field
	Name  string
	match func(page string) (string, bool)
}

// Match applies the rule to page
func (r Rule) Match(page string) (string, bool) {
	return r.match(page)
}

// unicodeClasses widens \d and \s to every Unicode decimal digit and
// whitespace character, so Arabic-Indic counts and NBSP separators match.
var unicodeClasses = strings.NewReplacer(
	`\\`, `\\`,
	`\d`, `\p{Nd}`,
	`\s`, `[\s\x0B\x1C-\x1F\x85\p{Z}]`,
)

// RegexRule builds a rule that captures the first submatch of expr.
// In expr, \d and \s match Unicode digits and whitespace.
func RegexRule(field Field, expr string) Rule {
	re := regexp.MustCompile(unicodeClasses.Replace(expr))
	return Rule{
		Field: field,
		Name:  expr,
		match: func(page string) (string, bool) {
			m := re.FindStringSubmatch(page)
			if m == nil {
				return "", false
			}
			return m[1], true
		},
	}
}

// PrivateIndicators mark a page as belonging to a private account
var PrivateIndicators = []string{"private", "هذا الحساب خاص", "this account is private"}

// VerifiedIndicators mark a page as belonging to a verified account
var VerifiedIndicators = []string{"verified", "موثق", "حساب موثق"}

// ClassifyAccountType looks for indicator keywords anywhere in the raw page,
// case-insensitively. Private wins over verified; the default is public.
//
// The whole document is scanned, scripts included, so an unrelated
// occurrence of "private" marks the account private.
func ClassifyAccountType(page string) AccountType {
	lower := strings.ToLower(page)

	if containsAny(lower, PrivateIndicators) {
		return AccountTypePrivate
	}
	if containsAny(lower, VerifiedIndicators) {
		return AccountTypeVerified
	}
	return AccountTypePublic
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// AccountTypeRule wraps ClassifyAccountType as a rule; it always matches
func AccountTypeRule() Rule {
	return Rule{
		Field: FieldAccountType,
		Name:  "account type keywords",
		match: func(page string) (string, bool) {
			return string(ClassifyAccountType(page)), true
		},
	}
}

// DefaultRules is the ordered extraction table: page metadata, account type,
// embedded JSON keys, then human-readable fallbacks for the counters.
var DefaultRules = []Rule{
	RegexRule(FieldTitle, `(?s)<title>(.*?)</title>`),
	RegexRule(FieldDescription, `<meta name="description" content="(.*?)"`),
	RegexRule(FieldProfileImage, `<meta property="og:image" content="(.*?)"`),

	AccountTypeRule(),

	RegexRule(FieldFollowers, `"followers":\s*(\d+)`),
	RegexRule(FieldFollowing, `"following":\s*(\d+)`),
	RegexRule(FieldPosts, `"posts":\s*(\d+)`),
	RegexRule(FieldBiography, `"biography":\s*"([^"]*)"`),
	RegexRule(FieldFullName, `"full_name":\s*"([^"]*)"`),

	RegexRule(FieldFollowers, `(?i)(\d+(?:,\d+)*)\s*(?:followers|متابع)`),
	RegexRule(FieldFollowers, `(?i)(\d+(?:,\d+)*)\s*متابع`),
	RegexRule(FieldFollowers, `(?i)(\d+(?:,\d+)*)\s*Follower`),
	RegexRule(FieldFollowers, `(?i)"followers_count":\s*(\d+)`),
	RegexRule(FieldFollowers, `(?i)"edge_followed_by":\s*\{\s*"count":\s*(\d+)`),

	RegexRule(FieldPosts, `(?i)(\d+)\s*(?:posts|منشور)`),
	RegexRule(FieldPosts, `(?i)(\d+)\s*منشور`),
	RegexRule(FieldPosts, `(?i)"posts_count":\s*(\d+)`),
	RegexRule(FieldPosts, `(?i)"edge_owner_to_timeline_media":\s*\{\s*"count":\s*(\d+)`),

	RegexRule(FieldFollowing, `(?i)(\d+(?:,\d+)*)\s*(?:following|يتبع)`),
	RegexRule(FieldFollowing, `(?i)(\d+(?:,\d+)*)\s*يتبع`),
	RegexRule(FieldFollowing, `(?i)"following_count":\s*(\d+)`),
	RegexRule(FieldFollowing, `(?i)"edge_follow":\s*\{\s*"count":\s*(\d+)`),
}

// Extractor applies an ordered rule table to page text
type Extractor struct {
	rules []Rule
}

// NewExtractor creates an extractor over rules; nil selects DefaultRules
func NewExtractor(rules []Rule) *Extractor {
	if rules == nil {
		rules = DefaultRules
	}
	return &Extractor{rules: rules}
}

// Rules returns the extractor's rule table
func (e *Extractor) Rules() []Rule {
	return e.rules
}

// Apply fills record from page. Fields that no rule matches are left unset.
func (e *Extractor) Apply(record *ProfileRecord, page string) {
	for _, rule := range e.rules {
		if record.Has(rule.Field) {
			continue
		}
		if value, ok := rule.Match(page); ok {
			record.SetIfAbsent(rule.Field, value)
		}
	}
}

// Extract runs DefaultRules over page and returns the extracted fields
func Extract(page string) *ProfileRecord {
	record := &ProfileRecord{}
	NewExtractor(nil).Apply(record, page)
	return record
}
