package people

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/people-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPeopleInReceivedOrder(t *testing.T) {
	output := View([]domain.Person{
		{Name: "Zoe", Age: 19},
		{Name: "Ann", Age: 30},
		{Name: "Bartholomew", Age: 41.5},
	}, RenderOptions{})

	assert.Contains(t, output, "People")
	assert.Contains(t, output, "people: 3")
	assert.NotContains(t, output, "refreshed")

	zoe := strings.Index(output, "Zoe")
	ann := strings.Index(output, "Ann")
	bart := strings.Index(output, "Bartholomew")
	require.True(t, zoe >= 0 && ann >= 0 && bart >= 0)
	assert.Less(t, zoe, ann)
	assert.Less(t, ann, bart)
	assert.Contains(t, output, "41.5")
}

func TestRenderAlignsAgeColumn(t *testing.T) {
	output := View([]domain.Person{
		{Name: "Al", Age: 1},
		{Name: "Bartholomew", Age: 22},
	}, RenderOptions{})

	var ageColumns []int
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "Al ") || strings.Contains(line, "Bartholomew") {
			trimmed := strings.TrimRight(line, " ")
			ageColumns = append(ageColumns, strings.LastIndex(trimmed, " ")+1)
		}
	}

	require.Len(t, ageColumns, 2)
	assert.Equal(t, ageColumns[0], ageColumns[1])
}

func TestRenderEmptyCollection(t *testing.T) {
	output := View(nil, RenderOptions{})

	assert.Contains(t, output, "people: 0")
	assert.Contains(t, output, "No people available.")
}

func TestRenderShowsRefreshTime(t *testing.T) {
	refreshedAt := time.Date(2026, 10, 15, 9, 30, 5, 0, time.UTC)

	output := View([]domain.Person{{Name: "Ann", Age: 30}}, RenderOptions{RefreshedAt: refreshedAt})

	assert.Contains(t, output, "refreshed 09:30:05")
}

func TestRenderUnnamedPerson(t *testing.T) {
	output := View([]domain.Person{{Name: " ", Age: 3}}, RenderOptions{Title: "Directory"})

	assert.Contains(t, output, "Directory")
	assert.Contains(t, output, "(unnamed)")
}
