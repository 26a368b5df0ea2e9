package fanboytest

// Feeds are the podcast records served by the fake service, keyed by guid.
var Feeds = []map[string]any{
	{
		"author":  "John Gruber",
		"title":   "The Talk Show With John Gruber",
		"guid":    "528458508",
		"feed":    "https://daringfireball.net/thetalkshow/rss",
		"img30":   "https://example.com/img/528458508/30.jpg",
		"img60":   "https://example.com/img/528458508/60.jpg",
		"img100":  "https://example.com/img/528458508/100.jpg",
		"img600":  "https://example.com/img/528458508/600.jpg",
		"updated": "2015-11-20T18:00:00Z",
	},
	{
		"author":  "Fireball Media",
		"title":   "Fireball",
		"guid":    "974240842",
		"feed":    "https://example.com/fireball/feed.xml",
		"img30":   "https://example.com/img/974240842/30.jpg",
		"img60":   "https://example.com/img/974240842/60.jpg",
		"img100":  "https://example.com/img/974240842/100.jpg",
		"img600":  "https://example.com/img/974240842/600.jpg",
		"updated": "2015-11-18T07:30:00Z",
	},
	{
		"author":  "NPR",
		"title":   "Fresh Air",
		"guid":    "214089682",
		"feed":    "https://example.com/freshair/feed.xml",
		"img30":   "https://example.com/img/214089682/30.jpg",
		"img60":   "https://example.com/img/214089682/60.jpg",
		"img100":  "https://example.com/img/214089682/100.jpg",
		"img600":  "https://example.com/img/214089682/600.jpg",
		"updated": "2015-11-21T12:00:00Z",
	},
}

// RecordFields are the fields every fixture record carries.
var RecordFields = []string{"author", "title", "guid", "img30", "img60", "img100", "img600", "updated"}

// Version is the version string reported by the fake service.
const Version = "3.0.1"

// Records returns the feeds with the given guids, in order, shaped the way
// a decoded JSON array is. With no guids it returns every feed.
func Records(guids ...string) []any {
	if len(guids) == 0 {
		out := make([]any, 0, len(Feeds))
		for _, f := range Feeds {
			out = append(out, copyRecord(f))
		}
		return out
	}

	out := make([]any, 0, len(guids))
	for _, guid := range guids {
		for _, f := range Feeds {
			if f["guid"] == guid {
				out = append(out, copyRecord(f))
			}
		}
	}
	return out
}

func copyRecord(f map[string]any) map[string]any {
	m := make(map[string]any, len(f))
	for k, v := range f {
		m[k] = v
	}
	return m
}
