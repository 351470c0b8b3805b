package instagram

import "igosint/internal/jsonutil"

// Field names a single extracted profile attribute
type Field string

const (
	FieldTitle        Field = "title"
	FieldDescription  Field = "description"
	FieldProfileImage Field = "profile_image"
	FieldAccountType  Field = "account_type"
	FieldFollowers    Field = "followers"
	FieldFollowing    Field = "following"
	FieldPosts        Field = "posts"
	FieldBiography    Field = "biography"
	FieldFullName     Field = "full_name"
)

// FieldOrder is the order extracted fields appear in serialized records
var FieldOrder = []Field{
	FieldTitle,
	FieldDescription,
	FieldProfileImage,
	FieldAccountType,
	FieldFollowers,
	FieldFollowing,
	FieldPosts,
	FieldBiography,
	FieldFullName,
}

// AccountType classifies the profile from keywords on the page
type AccountType string

const (
	AccountTypePublic   AccountType = "public"
	AccountTypePrivate  AccountType = "private"
	AccountTypeVerified AccountType = "verified"
)

// StatusFound marks a record built from a successfully fetched page
const StatusFound = "found"

// ProfileRecord holds what was scraped from a profile page. Extracted fields
// are write-once: the first value set for a field is kept. Fields that were
// never matched are absent from the JSON form rather than empty.
type ProfileRecord struct {
	Username  string
	URL       string
	Status    string
	Timestamp string

	fields map[Field]string
}

// NewProfileRecord creates an empty record for username
func NewProfileRecord(username, url, timestamp string) *ProfileRecord {
	return &ProfileRecord{
		Username:  username,
		URL:       url,
		Status:    StatusFound,
		Timestamp: timestamp,
		fields:    make(map[Field]string),
	}
}

// Get returns the value of field and whether it was set
func (r *ProfileRecord) Get(field Field) (string, bool) {
	v, ok := r.fields[field]
	return v, ok
}

// Value returns the value of field or "" when unset
func (r *ProfileRecord) Value(field Field) string {
	return r.fields[field]
}

// Has reports whether field was set
func (r *ProfileRecord) Has(field Field) bool {
	_, ok := r.fields[field]
	return ok
}

// SetIfAbsent stores value unless field already holds one. It reports
// whether the value was stored.
func (r *ProfileRecord) SetIfAbsent(field Field, value string) bool {
	if r.fields == nil {
		r.fields = make(map[Field]string)
	}
	if _, ok := r.fields[field]; ok {
		return false
	}
	r.fields[field] = value
	return true
}

// Len returns the number of extracted fields
func (r *ProfileRecord) Len() int {
	return len(r.fields)
}

// MarshalJSON writes the fixed keys first, then extracted fields in FieldOrder
func (r *ProfileRecord) MarshalJSON() ([]byte, error) {
	obj := jsonutil.Object{
		{Key: "username", Value: r.Username},
		{Key: "url", Value: r.URL},
		{Key: "status", Value: r.Status},
		{Key: "timestamp", Value: r.Timestamp},
	}
	for _, field := range FieldOrder {
		if v, ok := r.fields[field]; ok {
			obj.Add(string(field), v)
		}
	}
	return obj.MarshalJSON()
}
