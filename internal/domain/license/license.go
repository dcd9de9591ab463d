// Package license holds the licenses a search result can be published under.
package license

import "strings"

// License identifies a content license.
type License struct {
	id   string
	name string
	url  string
}

// Unknown is the license of results whose terms are not known.
var Unknown = License{id: "unknown", name: "Unknown"}

// Known licenses.
var (
	PublicDomainMark = License{
		id: "pdm", name: "Public Domain Mark", url: "http://creativecommons.org/publicdomain/mark/1.0/",
	}
	CC0 = License{
		id: "cc0", name: "CC0 1.0", url: "http://creativecommons.org/publicdomain/zero/1.0/",
	}
	CCBy = License{
		id: "cc-by", name: "CC BY 4.0", url: "http://creativecommons.org/licenses/by/4.0/",
	}
	CCBySA = License{
		id: "cc-by-sa", name: "CC BY-SA 4.0", url: "http://creativecommons.org/licenses/by-sa/4.0/",
	}
	CCByNC = License{
		id: "cc-by-nc", name: "CC BY-NC 4.0", url: "http://creativecommons.org/licenses/by-nc/4.0/",
	}
	Apache2 = License{
		id: "apache-2.0", name: "Apache License 2.0", url: "http://www.apache.org/licenses/LICENSE-2.0",
	}
	MIT = License{
		id: "mit", name: "MIT License", url: "https://opensource.org/licenses/MIT",
	}
	GPL3 = License{
		id: "gpl-3.0", name: "GNU General Public License v3.0", url: "https://www.gnu.org/licenses/gpl-3.0.html",
	}
)

var byID = map[string]License{}

func init() {
	for _, l := range []License{Unknown, PublicDomainMark, CC0, CCBy, CCBySA, CCByNC, Apache2, MIT, GPL3} {
		byID[l.id] = l
	}
}

// Lookup returns the license with the given id (case-insensitive), or Unknown.
func Lookup(id string) License {
	if l, ok := byID[strings.ToLower(strings.TrimSpace(id))]; ok {
		return l
	}
	return Unknown
}

// ID returns the stable identifier.
func (l License) ID() string { return l.id }

// Name returns the display name.
func (l License) Name() string { return l.name }

// URL returns the license text location.
func (l License) URL() string { return l.url }

// IsUnknown reports whether l is the Unknown sentinel.
func (l License) IsUnknown() bool { return l == Unknown || l == License{} }
