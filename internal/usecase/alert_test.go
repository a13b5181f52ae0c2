package usecase

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/safebrowse-service/internal/entity"
)

func TestBuildAlertMessageGroupsAndSorts(t *testing.T) {
	matches := []entity.ThreatMatch{
		{URL: "a.com", ThreatType: entity.ThreatTypeSocialEngineering},
		{URL: "a.com", ThreatType: entity.ThreatTypeMalware},
		{URL: "b.com", ThreatType: entity.ThreatTypeMalware},
	}

	msg := buildAlertMessage(matches, 10)
	lines := strings.Split(msg, "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "<b>Safe Browsing ALERT</b>", lines[0])
	assert.Equal(t, "Matches: <b>3</b> (checked 10)", lines[1])
	// Types are deduplicated and sorted alphabetically; URLs keep
	// first-seen order.
	assert.Equal(t, "• <code>a.com</code> → MALWARE, SOCIAL_ENGINEERING", lines[2])
	assert.Equal(t, "• <code>b.com</code> → MALWARE", lines[3])
	assert.Equal(t, "Action: clean site and request review in Search Console.", lines[4])
}

func TestBuildAlertMessageDeduplicatesRepeatedTypes(t *testing.T) {
	matches := []entity.ThreatMatch{
		{URL: "a.com", ThreatType: entity.ThreatTypeMalware},
		{URL: "a.com", ThreatType: entity.ThreatTypeMalware},
	}

	msg := buildAlertMessage(matches, 2)
	lines := strings.Split(msg, "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "Matches: <b>2</b> (checked 2)", lines[1])
	assert.Equal(t, "• <code>a.com</code> → MALWARE", lines[2])
}

func TestBuildAlertMessageTruncatesAtTwentyURLs(t *testing.T) {
	var matches []entity.ThreatMatch
	for i := 0; i < 25; i++ {
		matches = append(matches, entity.ThreatMatch{
			URL:        fmt.Sprintf("site-%02d.example.com", i),
			ThreatType: entity.ThreatTypeMalware,
		})
	}

	msg := buildAlertMessage(matches, 25)
	lines := strings.Split(msg, "\n")

	// title + count + 20 URL lines + marker + action
	require.Len(t, lines, 24)
	assert.Equal(t, 20, strings.Count(msg, "• <code>"))
	assert.Equal(t, "… (more)", lines[22])
	assert.Contains(t, lines[2], "site-00.example.com")
	assert.Contains(t, lines[21], "site-19.example.com")
	assert.NotContains(t, msg, "site-20.example.com")
}
