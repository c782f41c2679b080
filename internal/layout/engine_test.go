package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-press/internal/types"
)

func testTypography() Typography {
	return Typography{NameSize: 22, HeadingSize: 11.5, BodySize: 10, MetaSize: 10.2}
}

func kindsOf(items []Instruction) []Kind {
	kinds := make([]Kind, len(items))
	for i, item := range items {
		kinds[i] = item.Kind
	}
	return kinds
}

func TestBuildInstructions_EmptyDocumentStillHasHeader(t *testing.T) {
	items := BuildInstructions(&types.Document{}, "", testTypography())

	require.NotEmpty(t, items)
	assert.Equal(t, KindLine, items[0].Kind)
	assert.Equal(t, "Candidate Name", items[0].Text)
	assert.True(t, items[0].Bold)
	assert.Equal(t, AlignCenter, items[0].Align)
}

func TestBuildInstructions_TitleAndRoleMerged(t *testing.T) {
	items := BuildInstructions(&types.Document{Name: "Jane", Title: "Engineer"}, "Backend", testTypography())

	require.GreaterOrEqual(t, len(items), 2)
	assert.Equal(t, "Engineer | Backend", items[1].Text)
}

func TestHeadlineText(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		role     string
		expected string
	}{
		{"Both distinct", "Engineer", "Backend", "Engineer | Backend"},
		{"Role repeats title", "Engineer", "engineer", "Engineer"},
		{"Title only", "Engineer", "", "Engineer"},
		{"Role only", "", "Backend", "Backend"},
		{"Neither", "", "  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, headlineText(tt.title, tt.role))
		})
	}
}

func TestBuildInstructions_KnownContactBecomesKeyValue(t *testing.T) {
	doc := &types.Document{
		Name: "Jane",
		Contacts: []types.ContactFact{
			{Label: "Phone", LabelKey: "phone", Value: "555"},
			{Value: "Pune, Maharashtra"},
		},
	}
	items := BuildInstructions(doc, "", testTypography())

	var kv, para *Instruction
	for i := range items {
		switch items[i].Kind {
		case KindKeyValueLine:
			kv = &items[i]
		case KindParagraph:
			para = &items[i]
		}
	}
	require.NotNil(t, kv)
	assert.Equal(t, "Phone: ", kv.Label)
	assert.Equal(t, "555", kv.Value)
	require.NotNil(t, para)
	assert.Equal(t, "Pune, Maharashtra", para.Text)
}

func TestBuildInstructions_SectionHeadingGroup(t *testing.T) {
	doc := &types.Document{Name: "Jane", Summary: "Built things."}
	items := BuildInstructions(doc, "", testTypography())
	kinds := kindsOf(items)

	// name line, header spacer, heading line, rule, summary paragraph
	assert.Equal(t, []Kind{KindLine, KindSpacer, KindLine, KindRule, KindParagraph}, kinds)
	assert.Equal(t, "PROFESSIONAL SUMMARY", items[2].Text)
	assert.True(t, items[2].Bold)
}

func TestBuildInstructions_SectionSpacerMergedNotStacked(t *testing.T) {
	doc := &types.Document{Name: "Jane", Contacts: []types.ContactFact{{LabelKey: "phone", Label: "Phone", Value: "555"}}, Summary: "Bio."}
	items := BuildInstructions(doc, "", testTypography())

	var spacerRun int
	maxRun := 0
	for _, item := range items {
		if item.Kind == KindSpacer {
			spacerRun++
		} else {
			spacerRun = 0
		}
		if spacerRun > maxRun {
			maxRun = spacerRun
		}
	}
	assert.Equal(t, 1, maxRun, "adjacent spacers must merge")

	// The contact-gap spacer is raised to the section gap, not left at 6.
	for i, item := range items {
		if item.Kind == KindSpacer && i+1 < len(items) && items[i+1].Kind == KindLine && items[i+1].Text == "PROFESSIONAL SUMMARY" {
			assert.InDelta(t, 18, item.Height, 0.001)
		}
	}
}

func TestBuildInstructions_ExperienceEntry(t *testing.T) {
	doc := &types.Document{
		Name: "Jane",
		Experience: []types.ExperienceEntry{
			{Header: "Acme Corp", Duration: "2020-2022", Bullets: []string{"- Did X", "", "Did Y"}},
		},
	}
	items := BuildInstructions(doc, "", testTypography())

	var row *Instruction
	var bullets []Instruction
	for i := range items {
		switch items[i].Kind {
		case KindTwoColumnRow:
			row = &items[i]
		case KindParagraph:
			bullets = append(bullets, items[i])
		}
	}
	require.NotNil(t, row)
	assert.Equal(t, "Acme Corp", row.Left)
	assert.Equal(t, "2020-2022", row.Right)

	require.Len(t, bullets, 2, "blank bullets dropped")
	assert.Equal(t, "Did X", bullets[0].Text)
	assert.True(t, bullets[0].Bullet)
	assert.InDelta(t, 12, bullets[0].Indent, 0.001)
}

func TestBuildInstructions_BulletOnlyEntryHasNoRow(t *testing.T) {
	doc := &types.Document{
		Name:       "Jane",
		Experience: []types.ExperienceEntry{{Bullets: []string{"Did X"}}},
	}
	items := BuildInstructions(doc, "", testTypography())

	for _, item := range items {
		assert.NotEqual(t, KindTwoColumnRow, item.Kind)
	}
}

func TestBuildInstructions_SkillLines(t *testing.T) {
	doc := &types.Document{Name: "Jane", SkillsRaw: "Languages: Python, SQL\nDocker"}
	items := BuildInstructions(doc, "", testTypography())

	var kv *Instruction
	var bullet *Instruction
	for i := range items {
		switch items[i].Kind {
		case KindKeyValueLine:
			kv = &items[i]
		case KindParagraph:
			bullet = &items[i]
		}
	}
	require.NotNil(t, kv)
	assert.Equal(t, "Languages: ", kv.Label)
	assert.Equal(t, "Python, SQL", kv.Value)
	require.NotNil(t, bullet)
	assert.Equal(t, "Docker", bullet.Text)
	assert.True(t, bullet.Bullet)
}

func TestBuildInstructions_SectionOrder(t *testing.T) {
	doc := &types.Document{
		Name:           "Jane",
		Summary:        "Bio.",
		Experience:     []types.ExperienceEntry{{Header: "Acme", Duration: "2020"}},
		SkillsRaw:      "Docker",
		Certifications: []string{"AWS Certified"},
		Education:      []string{"B.E."},
	}
	items := BuildInstructions(doc, "", testTypography())

	var headings []string
	for _, item := range items {
		if item.Kind == KindLine && item.Align == AlignLeft && item.Bold {
			headings = append(headings, item.Text)
		}
	}
	assert.Equal(t, []string{
		"PROFESSIONAL SUMMARY",
		"PROFESSIONAL EXPERIENCE",
		"SKILLS",
		"CERTIFICATIONS",
		"EDUCATION",
	}, headings)
}
