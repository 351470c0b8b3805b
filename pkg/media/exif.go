// Package media inspects downloaded profile images.
package media

import (
	stderrors "errors"
	"fmt"

	exif "github.com/dsoprea/go-exif/v3"
	"igosint/pkg/errors"
)

// Category groups EXIF tags that reveal something about the photographer
type Category string

const (
	CategoryNone     Category = ""
	CategoryGPS      Category = "gps"
	CategoryCamera   Category = "camera"
	CategorySerial   Category = "serial"
	CategorySoftware Category = "software"
	CategoryAuthor   Category = "author"
	CategoryDateTime Category = "datetime"
)

var tagCategories = map[string]Category{
	"GPSLatitude":        CategoryGPS,
	"GPSLongitude":       CategoryGPS,
	"GPSLatitudeRef":     CategoryGPS,
	"GPSLongitudeRef":    CategoryGPS,
	"Make":               CategoryCamera,
	"Model":              CategoryCamera,
	"SerialNumber":       CategorySerial,
	"CameraSerialNumber": CategorySerial,
	"BodySerialNumber":   CategorySerial,
	"LensSerialNumber":   CategorySerial,
	"Software":           CategorySoftware,
	"ProcessingSoftware": CategorySoftware,
	"Artist":             CategoryAuthor,
	"Author":             CategoryAuthor,
	"Copyright":          CategoryAuthor,
	"XPAuthor":           CategoryAuthor,
	"DateTimeOriginal":   CategoryDateTime,
	"DateTimeDigitized":  CategoryDateTime,
	"DateTime":           CategoryDateTime,
}

// Tag is a single EXIF entry
type Tag struct {
	IFD      string
	Name     string
	Value    string
	Category Category
}

// Notable reports whether the tag falls into one of the identifying categories
func (t Tag) Notable() bool {
	return t.Category != CategoryNone
}

// CategoryOf returns the category of an EXIF tag name
func CategoryOf(name string) Category {
	return tagCategories[name]
}

// ReadEXIF extracts EXIF tags from image bytes. Images without an EXIF
// block yield no tags and no error.
func ReadEXIF(data []byte) (tags []Tag, err error) {
	// go-exif reports some malformed input by panicking
	defer func() {
		if r := recover(); r != nil {
			tags = nil
			err = errors.New(errors.ErrorTypeParsing, "malformed EXIF data", fmt.Errorf("%v", r))
		}
	}()

	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil {
		if stderrors.Is(err, exif.ErrNoExif) {
			return nil, nil
		}
		return nil, errors.New(errors.ErrorTypeParsing, "failed to locate EXIF data", err)
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return nil, errors.New(errors.ErrorTypeParsing, "failed to parse EXIF data", err)
	}

	tags = make([]Tag, 0, len(entries))
	for _, entry := range entries {
		tags = append(tags, Tag{
			IFD:      entry.IfdPath,
			Name:     entry.TagName,
			Value:    entry.Formatted,
			Category: CategoryOf(entry.TagName),
		})
	}
	return tags, nil
}

// NotableTags filters tags down to the identifying ones
func NotableTags(tags []Tag) []Tag {
	var out []Tag
	for _, t := range tags {
		if t.Notable() {
			out = append(out, t)
		}
	}
	return out
}
