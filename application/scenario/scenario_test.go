package scenario

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(scenarios []Scenario) []string {
	out := make([]string, len(scenarios))
	for i, s := range scenarios {
		out[i] = s.ID
	}
	return out
}

func TestCatalogue(t *testing.T) {
	all := Catalogue()

	assert.Equal(t, []string{
		"TC01", "TC02", "TC03", "TC04", "TC05",
		"TC11", "TC12", "TC13", "TC14",
		"TC21",
	}, ids(all))

	for _, s := range all {
		assert.NotEmpty(t, s.Name, s.ID)
		assert.NotNil(t, s.Run, s.ID)
		assert.NotEmpty(t, s.Suite, s.ID)
		// placeholders would be rendered against the Env
		assert.NotContains(t, s.Title(), "{", s.ID)
	}
}

func TestScenario_TitleAndTags(t *testing.T) {
	s := Scenario{ID: "TC01", Name: "should edit", Tags: []string{"@elements", "@webtables"}}

	assert.Equal(t, "TC01 should edit", s.Title())
	assert.Equal(t, []string{"@elements", "@webtables", "@TC01"}, s.AllTags())
	// AllTags must not write into the shared tag slice
	assert.Equal(t, []string{"@elements", "@webtables"}, s.Tags)
}

func TestScenario_HasTag(t *testing.T) {
	s := Scenario{ID: "TC11", Tags: []string{"@forms", "@practice-forms"}}

	for _, tag := range []string{"@forms", "forms", "@FORMS", " practice-forms ", "@tc11", "TC11"} {
		assert.True(t, s.HasTag(tag), tag)
	}
	for _, tag := range []string{"@form", "@webtables", "", "@TC1"} {
		assert.False(t, s.HasTag(tag), tag)
	}
}

func TestFilter(t *testing.T) {
	all := Catalogue()

	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{"no tags", nil, ids(all)},
		{"blank tags", []string{"", " , "}, ids(all)},
		{"suite tag", []string{"@webtables"}, []string{"TC01", "TC02", "TC03", "TC04", "TC05"}},
		{"id tag", []string{"@TC13"}, []string{"TC13"}},
		{"any of", []string{"@select-menu", "@TC01"}, []string{"TC01", "TC21"}},
		{"comma separated", []string{"@TC12,@TC14"}, []string{"TC12", "TC14"}},
		{"no match", []string{"@nothing"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(all, tt.tags...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_KeepsCatalogueOrder(t *testing.T) {
	got := ids(Filter(Catalogue(), "@widgets", "@forms"))
	assert.Equal(t, []string{"TC11", "TC12", "TC13", "TC14", "TC21"}, got)
}

func TestSuiteTags(t *testing.T) {
	for _, s := range Catalogue() {
		switch {
		case strings.HasPrefix(s.ID, "TC0"):
			assert.Equal(t, SuiteWebtables, s.Suite)
			assert.True(t, s.HasTag("@elements"))
		case strings.HasPrefix(s.ID, "TC1"):
			assert.Equal(t, SuitePracticeForms, s.Suite)
			assert.True(t, s.HasTag("@forms"))
		case strings.HasPrefix(s.ID, "TC2"):
			assert.Equal(t, SuiteSelectMenu, s.Suite)
			assert.True(t, s.HasTag("@widgets"))
		}
	}
}

func TestChain(t *testing.T) {
	var calls []string
	step := func(name string, err error) func(context.Context) error {
		return func(context.Context) error {
			calls = append(calls, name)
			return err
		}
	}
	boom := errors.New("boom")

	err := chain(context.Background(), step("a", nil), step("b", boom), step("c", nil))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, calls)

	calls = nil
	require.NoError(t, chain(context.Background(), step("a", nil), step("b", nil)))
	assert.Equal(t, []string{"a", "b"}, calls)
}
