package model

import "fmt"

// Page tags a content row with the site section it belongs to.
type Page string

const (
	PageProAct        Page = "ProAct"
	PageEnvironment   Page = "Environment"
	PageHomeReading   Page = "HomeReading"
	PageMusicMovement Page = "MusicMovement"
	PageFundayFridays Page = "FundayFridays"
	PagePickUpDropOff Page = "PickUpDropOff"
	PageOutdoor       Page = "Outdoor"
)

var pageLabels = map[Page]string{
	PageProAct:        "Project & Activities",
	PageEnvironment:   "Environment",
	PageHomeReading:   "Home Reading",
	PageMusicMovement: "Music & Movement",
	PageFundayFridays: "Funday Fridays",
	PagePickUpDropOff: "Pick-Up/Drop-Off",
	PageOutdoor:       "Outdoor",
}

// Pages returns every known page in route order.
func Pages() []Page {
	return []Page{
		PageProAct,
		PageEnvironment,
		PageHomeReading,
		PageMusicMovement,
		PageFundayFridays,
		PagePickUpDropOff,
		PageOutdoor,
	}
}

// ParsePage returns the page for tag, or an error if tag is not on the allow-list.
func ParsePage(tag string) (Page, error) {
	p := Page(tag)
	if !p.Valid() {
		return "", fmt.Errorf("unknown page %q", tag)
	}
	return p, nil
}

// Scan reads a page column, rejecting tags outside the allow-list.
func (p *Page) Scan(src any) error {
	var tag string
	switch v := src.(type) {
	case string:
		tag = v
	case []byte:
		tag = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Page", src)
	}
	parsed, err := ParsePage(tag)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Page) Valid() bool {
	_, ok := pageLabels[p]
	return ok
}

// Label is the human readable section name used in response messages.
func (p Page) Label() string {
	if l, ok := pageLabels[p]; ok {
		return l
	}
	return string(p)
}

func (p Page) String() string { return string(p) }
