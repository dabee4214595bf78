// Package tone maps between the scanner's numeric tone code space and the
// textual CTCSS/DCS notation used in the csv format.
package tone

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Tone codes with a fixed meaning.
const (
	CodeNone   = 0   // open squelch
	CodeSearch = 127 // CTCSS/DCS search mode
	CodeNoTone = 240 // squelch on any tone
)

// ctcssTones lists the standard CTCSS tones in scanner order, code 64
// mapping to the first entry.
var ctcssTones = []string{
	"67.0", "69.3", "71.9", "74.4", "77.0", "79.7", "82.5", "85.4", "88.5",
	"91.5", "94.8", "97.4", "100.0", "103.5", "107.2", "110.9", "114.8",
	"118.8", "123.0", "127.3", "131.8", "136.5", "141.3", "146.2", "151.4",
	"156.7", "162.2", "167.9", "173.8", "179.9", "186.2", "192.8", "203.5",
	"210.7", "218.1", "225.7", "233.6", "241.8", "250.3",
}

// dcsCodes lists the DCS codes in scanner order, code 128 mapping to the
// first entry.
var dcsCodes = []string{
	"023", "025", "026", "031", "032", "036", "043", "047", "051", "053",
	"054", "065", "071", "072", "073", "074", "114", "115", "116", "122",
	"125", "131", "132", "134", "143", "145", "152", "155", "156", "162",
	"165", "172", "174", "205", "212", "223", "225", "226", "243", "244",
	"245", "246", "251", "252", "255", "261", "263", "265", "266", "271",
	"274", "306", "311", "315", "325", "331", "332", "343", "346", "351",
	"356", "364", "365", "371", "411", "412", "413", "423", "431", "432",
	"445", "446", "452", "454", "455", "462", "464", "465", "466", "503",
	"506", "516", "523", "526", "532", "546", "565", "606", "612", "624",
	"627", "631", "632", "654", "662", "664", "703", "712", "723", "731",
	"732", "734", "743", "754",
}

var (
	reCTCSS = regexp.MustCompile(`^(?:ctcss)?\s*(\d{2,3}\.\d)\s*(?:hz)?$`)
	reDCS   = regexp.MustCompile(`^(?:dcs)?\s*(\d{2,3})$`)
)

// Decode renders the given tone code in csv notation. A code outside the
// known ranges means the scanner returned corrupt data and results in an
// error.
func Decode(code int) (string, error) {
	switch {
	case code == CodeNone:
		return "none", nil
	case code == CodeSearch:
		return "search", nil
	case code == CodeNoTone:
		return "no tone", nil
	case code >= 64 && code < 64+len(ctcssTones):
		return ctcssTones[code-64] + " Hz", nil
	case code >= 128 && code < 128+len(dcsCodes):
		return "DCS " + dcsCodes[code-128], nil
	}
	return "", errors.Errorf("tone code %d out of range", code)
}

// Encode parses a user-entered CTCSS tone or DCS code. The match is
// case-insensitive and tolerates the unit suffix and prefix variants
// (114.8, 114.8Hz, CTCSS 114.8 Hz, 26, 026, DCS 026). It reports false
// when the text matches no table entry.
func Encode(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "", "none", "all":
		return CodeNone, true
	case "search":
		return CodeSearch, true
	case "notone", "no tone":
		return CodeNoTone, true
	}

	if m := reCTCSS.FindStringSubmatch(s); m != nil {
		t := strings.TrimLeft(m[1], "0")
		for i, tone := range ctcssTones {
			if tone == t {
				return 64 + i, true
			}
		}
	}

	if m := reDCS.FindStringSubmatch(s); m != nil {
		c := m[1]
		if len(c) == 2 {
			c = "0" + c
		}
		for i, code := range dcsCodes {
			if code == c {
				return 128 + i, true
			}
		}
	}

	return 0, false
}
