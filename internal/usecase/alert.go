package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/user/safebrowse-service/internal/entity"
)

const (
	alertTitle   = "<b>Safe Browsing ALERT</b>"
	alertAction  = "Action: clean site and request review in Search Console."
	maxAlertURLs = 20
)

// buildAlertMessage renders one alert for a batch with at least one
// match. URLs appear in first-seen order with their threat types
// deduplicated and sorted alphabetically; at most maxAlertURLs URL
// lines are emitted, followed by a truncation marker if more remain.
func buildAlertMessage(matches []entity.ThreatMatch, checked int) string {
	lines := []string{
		alertTitle,
		fmt.Sprintf("Matches: <b>%d</b> (checked %d)", len(matches), checked),
	}

	order := make([]string, 0, len(matches))
	typesByURL := make(map[string]map[entity.ThreatType]struct{})
	for _, m := range matches {
		if _, ok := typesByURL[m.URL]; !ok {
			order = append(order, m.URL)
			typesByURL[m.URL] = make(map[entity.ThreatType]struct{})
		}
		typesByURL[m.URL][m.ThreatType] = struct{}{}
	}

	for i, u := range order {
		if i >= maxAlertURLs {
			lines = append(lines, "… (more)")
			break
		}
		lines = append(lines, fmt.Sprintf("• <code>%s</code> → %s", u, strings.Join(sortedTypes(typesByURL[u]), ", ")))
	}

	lines = append(lines, alertAction)
	return strings.Join(lines, "\n")
}

func sortedTypes(set map[entity.ThreatType]struct{}) []string {
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, string(t))
	}
	sort.Strings(out)
	return out
}
