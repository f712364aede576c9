package importer

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jezdibolt/backend-go/internal/domain/importer"
)

var (
	dateRangeRe  = regexp.MustCompile(`(\d{2})_(\d{2})_(\d{4})-(\d{2})_(\d{2})_(\d{4})`)
	legacyWeekRe = regexp.MustCompile(`(\d{4})W(\d{2})`)
)

// parseFileMeta extracts the ISO week, employer name and city from an
// export filename. The vendor convention is a DD_MM_YYYY-DD_MM_YYYY
// range followed by dash-delimited tokens: city first, employer after a
// literal "Fleet" marker (or the whole remainder without one). Malformed
// names degrade to week="unknown", company="unknown", city=nil.
func parseFileMeta(filename string) importer.FileMeta {
	meta := importer.FileMeta{ISOWeek: "unknown", Company: "unknown"}

	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	rest := base

	if m := dateRangeRe.FindStringSubmatchIndex(base); m != nil {
		sub := dateRangeRe.FindStringSubmatch(base)
		if week, ok := isoWeekFromDate(sub[1], sub[2], sub[3]); ok {
			meta.ISOWeek = week
		}
		rest = base[m[1]:]
		if strings.Trim(rest, "-_ ") == "" {
			rest = base[:m[0]]
		}
	} else if m := legacyWeekRe.FindStringSubmatchIndex(base); m != nil {
		sub := legacyWeekRe.FindStringSubmatch(base)
		meta.ISOWeek = sub[1] + "-W" + sub[2]
		rest = base[m[1]:]
		if strings.Trim(rest, "-_ ") == "" {
			rest = base[:m[0]]
		}
	}

	tokens := splitTokens(rest)
	if len(tokens) == 0 {
		return meta
	}

	city := tokens[0]
	meta.City = &city

	employerTokens := tokens[1:]
	for i, tok := range tokens {
		if strings.EqualFold(tok, "Fleet") {
			employerTokens = tokens[i+1:]
			break
		}
	}
	if employer := strings.Join(employerTokens, " "); employer != "" {
		meta.Company = employer
	}

	return meta
}

func isoWeekFromDate(dd, mm, yyyy string) (string, bool) {
	day, _ := strconv.Atoi(dd)
	month, _ := strconv.Atoi(mm)
	year, _ := strconv.Atoi(yyyy)
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 2000 {
		return "", false
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	isoYear, isoWeek := date.ISOWeek()
	return strconv.Itoa(isoYear) + "-W" + pad2(isoWeek), true
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func splitTokens(s string) []string {
	parts := strings.Split(s, "-")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "_ ")
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
