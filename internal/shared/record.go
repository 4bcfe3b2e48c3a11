package shared

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Record is a raw, loosely-typed provider record. Any field may be missing or null.
type Record map[string]any

// Field names used by TheAudioDB payloads
const (
	FieldTrackID        = "idTrack"
	FieldAlbumID        = "idAlbum"
	FieldArtistID       = "idArtist"
	FieldTrack          = "strTrack"
	FieldAlbum          = "strAlbum"
	FieldTrackAlternate = "strTrackAlternate"
	FieldArtist         = "strArtist"
	FieldGenre          = "strGenre"
	FieldStyle          = "strStyle"
	FieldYearReleased   = "intYearReleased"
	FieldYear           = "intYear"
)

// First returns the value of the first key that is present, non-null and non-empty.
func (r Record) First(keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := r.Get(key); ok {
			return v, true
		}
	}
	return "", false
}

// Get returns the field rendered as a string. Numbers and booleans are formatted.
func (r Record) Get(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	s := IdToString(r[key])
	if s == "" {
		return "", false
	}
	return s, true
}

// Has reports whether the field holds a usable value
func (r Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Set overwrites a field in place
func (r Record) Set(key, value string) {
	r[key] = value
}

// RecordsFromJSON extracts the array at path from a raw payload.
// A missing, null or non-array value yields an empty slice; non-object elements become empty records.
func RecordsFromJSON(body []byte, path string) []Record {
	return RecordsFromResult(gjson.GetBytes(body, path))
}

// RecordsFromResult converts a gjson array into records
func RecordsFromResult(res gjson.Result) []Record {
	if !res.IsArray() {
		return []Record{}
	}
	items := res.Array()
	records := make([]Record, 0, len(items))
	for _, item := range items {
		obj, ok := item.Value().(map[string]any)
		if !ok {
			obj = map[string]any{}
		}
		records = append(records, Record(obj))
	}
	return records
}

// IdToString renders a loosely-typed JSON scalar as a string
func IdToString(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
