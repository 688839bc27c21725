package fakedata

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"
	"time"

	"demoqa_automation/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var emailRe = regexp.MustCompile(`^[a-z0-9]+\.[a-z0-9]+[0-9]{2}@autotest\.com$`)

func TestWebtableValid(t *testing.T) {
	g := NewGenerator(7)

	for i := 0; i < 50; i++ {
		r := g.WebtableValid()

		assert.NotEmpty(t, r.FirstName)
		assert.NotEmpty(t, r.LastName)
		assert.Regexp(t, emailRe, r.Email)
		assert.Contains(t, departments, r.Department)

		age, err := strconv.Atoi(r.Age)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, age, 18)
		assert.LessOrEqual(t, age, 99)

		salary, err := strconv.Atoi(r.Salary)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, salary, 10000)
		assert.LessOrEqual(t, salary, 999999)
		assert.Zero(t, salary%1000)

		assert.Equal(t, entities.WebtableFields, r.Fields())
	}
}

func TestWebtableInvalid(t *testing.T) {
	r := NewGenerator(1).WebtableInvalid()

	assert.Equal(t, []entities.WebtableField{entities.FieldEmail, entities.FieldAge, entities.FieldSalary}, r.Fields())
	assert.Equal(t, InvalidEmail, r.Email)
}

func TestGenerator_SameSeedSameData(t *testing.T) {
	a, b := NewGenerator(99), NewGenerator(99)

	assert.Equal(t, a.WebtableValid(), b.WebtableValid())
	assert.Equal(t, a.SelectMenuRandom(), b.SelectMenuRandom())
}

func TestPickRecord(t *testing.T) {
	g := NewGenerator(3)

	_, ok := g.PickRecord(nil)
	assert.False(t, ok)

	data := map[string]entities.WebtableRecord{
		"a@autotest.com": {Email: "a@autotest.com"},
		"b@autotest.com": {Email: "b@autotest.com"},
		"c@autotest.com": {Email: "c@autotest.com"},
	}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		r, ok := g.PickRecord(data)
		require.True(t, ok)
		require.Contains(t, data, r.Email)
		seen[r.Email] = true
	}
	assert.Len(t, seen, 3)
}

func TestPracticeFormComplete(t *testing.T) {
	g := NewGenerator(11).WithPicture("/tmp/image.png")
	g.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	f := g.PracticeFormComplete()

	assert.Regexp(t, emailRe, f.Email)
	assert.Contains(t, entities.Genders, f.Gender)
	assert.Regexp(t, `^[0-9]{10}$`, f.Mobile)
	assert.NotEmpty(t, f.Subjects)
	assert.NotEmpty(t, f.Hobbies)
	assert.Equal(t, "/tmp/image.png", f.Picture)
	assert.NotEmpty(t, f.Address)
	assert.Contains(t, entities.CitiesOf(f.State), f.City)

	dob, err := time.Parse(entities.DOBLayout, f.DateOfBirth)
	require.NoError(t, err)
	assert.False(t, dob.After(time.Date(2006, 6, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, dob.Before(time.Date(1959, 6, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPracticeFormRequired(t *testing.T) {
	f := NewGenerator(5).PracticeFormRequired()

	assert.NotEmpty(t, f.FirstName)
	assert.NotEmpty(t, f.LastName)
	assert.Len(t, f.Mobile, DefaultMobileLength)
	assert.NotEmpty(t, f.Gender)
	assert.Empty(t, f.Email)
	assert.Empty(t, f.Subjects)
	assert.Empty(t, f.State)
}

func TestPracticeFormInvalid(t *testing.T) {
	f := NewGenerator(5).PracticeFormInvalid()

	assert.Len(t, f.Mobile, 5)
	assert.Equal(t, InvalidEmail, f.Email)
	assert.NotEmpty(t, f.FirstName)
}

func TestMobile(t *testing.T) {
	g := NewGenerator(2)

	assert.Len(t, g.Mobile(0), DefaultMobileLength)
	assert.Len(t, g.Mobile(-3), DefaultMobileLength)
	assert.Regexp(t, `^[0-9]{7}$`, g.Mobile(7))
}

func TestSample(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOfNDistinct(rapid.String(), 0, 20, rapid.ID[string]).Draw(t, "items")
		f := NewGenerator(rapid.Uint64Min(1).Draw(t, "seed")).Faker()

		got := sample(f, items)

		if len(items) == 0 {
			if got != nil {
				t.Fatalf("expected nil, got %v", got)
			}
			return
		}
		if len(got) < 1 || len(got) > len(items) {
			t.Fatalf("sample size %d out of range for %d items", len(got), len(items))
		}
		seen := map[string]bool{}
		for _, v := range got {
			if seen[v] {
				t.Fatalf("duplicate %q", v)
			}
			seen[v] = true
		}
	})
}

func TestSample_DoesNotReorderInput(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	sample(NewGenerator(4).Faker(), items)

	assert.Equal(t, []string{"a", "b", "c", "d"}, items)
}

func TestSelectMenuRandom(t *testing.T) {
	m := NewGenerator(8).SelectMenuRandom()

	assert.Contains(t, entities.SelectValueOptions, m.SelectValue)
	assert.Contains(t, entities.SelectOneOptions, m.SelectOne)
	assert.Contains(t, entities.OldSelectMenuOptions, m.OldStyleSelect)
	assert.Subset(t, entities.MultiDropdownOptions, m.MultiSelect)
	assert.Subset(t, entities.MultiStandardOptions, m.StdMultiSelect)
	assert.NotEmpty(t, m.MultiSelect)
}

func TestWritePicture(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")

	path, err := WritePicture(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, PictureName), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), data[:8])
}
