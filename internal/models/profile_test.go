package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestProfileUpdate_ApplyLeavesOmittedFields(t *testing.T) {
	p := &Profile{
		Company: "Acme",
		Bio:     "old bio",
		Status:  "Developer",
		Skills:  []string{"go"},
		Social:  &Social{Twitter: "https://twitter.com/old"},
	}

	u := &ProfileUpdate{
		Bio:    strPtr("new bio"),
		Social: SocialUpdate{YouTube: strPtr("https://youtube.com/me")},
	}
	u.Apply(p)

	assert.Equal(t, "Acme", p.Company)
	assert.Equal(t, "new bio", p.Bio)
	assert.Equal(t, "Developer", p.Status)
	assert.Equal(t, []string{"go"}, p.Skills)
	assert.Equal(t, "https://twitter.com/old", p.Social.Twitter)
	assert.Equal(t, "https://youtube.com/me", p.Social.YouTube)
}

func TestProfileUpdate_ApplyCreatesSocial(t *testing.T) {
	p := &Profile{}
	(&ProfileUpdate{}).Apply(p)
	assert.Nil(t, p.Social)

	(&ProfileUpdate{Social: SocialUpdate{LinkedIn: strPtr("in/me")}}).Apply(p)
	if assert.NotNil(t, p.Social) {
		assert.Equal(t, "in/me", p.Social.LinkedIn)
	}
}

func TestProfileUpdate_ApplyCopiesSkills(t *testing.T) {
	skills := []string{"node", "react"}
	p := &Profile{}
	(&ProfileUpdate{Skills: skills}).Apply(p)
	skills[0] = "changed"
	assert.Equal(t, []string{"node", "react"}, p.Skills)
}
