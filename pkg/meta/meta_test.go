package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSiteDefaults(t *testing.T) {
	assert.Equal(t, Site{Title: DefaultTitle, Header: DefaultHeader}, NewSite("  ", ""))
	assert.Equal(t, Site{Title: "Jobs", Header: "Jobs Admin"}, NewSite("Jobs", " Jobs Admin "))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Full Time", Label("full_time"))
	assert.Equal(t, "Employers Only", Label("employers_only"))
	assert.Equal(t, "Mid", Label("mid"))
	assert.Equal(t, "", Label(""))
}

func TestBuild(t *testing.T) {
	info := Build(NewSite("", ""))

	assert.Equal(t, DefaultTitle, info.Site.Title)
	require.Len(t, info.Choices.JobTypes, 5)
	assert.Equal(t, Choice{Value: "full_time", Label: "Full Time"}, info.Choices.JobTypes[0])
	require.Len(t, info.Choices.ApplicationStatuses, 6)
	assert.Equal(t, "pending", info.Choices.ApplicationStatuses[0].Value)
	assert.Equal(t, Choice{Value: "newest", Label: "Newest first"}, info.Choices.SortKeys[0])
	assert.Contains(t, info.Choices.Industries, Choice{Value: "Non-profit", Label: "Non-profit"})
	assert.Len(t, info.Choices.Visibilities, 3)
	assert.Len(t, info.Choices.Roles, 3)
}
