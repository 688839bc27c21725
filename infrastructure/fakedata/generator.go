package fakedata

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"demoqa_automation/domain/entities"

	"github.com/brianvoe/gofakeit/v7"
)

// Values the form validation rejects
const (
	InvalidEmail  = "invalid-email"
	InvalidAge    = "invalid-age"
	InvalidSalary = "invalid-salary"
)

// DefaultMobileLength is the length the practice form requires
const DefaultMobileLength = 10

// departments the web table is seeded with
var departments = []string{
	"Automotive", "Baby", "Beauty", "Books", "Clothing", "Computers",
	"Electronics", "Games", "Garden", "Grocery", "Health", "Home",
	"Industrial", "Jewelery", "Kids", "Movies", "Music", "Outdoors",
	"Shoes", "Sports", "Tools", "Toys",
}

// Generator produces random but plausible input for the DemoQA widgets.
// It is safe for concurrent use.
type Generator struct {
	faker   *gofakeit.Faker
	now     func() time.Time
	mu      sync.Mutex
	picture string
}

// NewGenerator - creates a generator; seed 0 picks a random seed
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

// WithPicture - sets the file uploaded as the practice form picture
func (g *Generator) WithPicture(path string) *Generator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.picture = path
	return g
}

// Faker - exposes the underlying faker for one-off values
func (g *Generator) Faker() *gofakeit.Faker { return g.faker }

// Web tables

// WebtableValid - returns a complete record the registration form accepts
func (g *Generator) WebtableValid() entities.WebtableRecord {
	first, last := g.faker.FirstName(), g.faker.LastName()
	return entities.WebtableRecord{
		FirstName:  first,
		LastName:   last,
		Age:        fmt.Sprint(g.faker.IntRange(18, 99)),
		Email:      g.email(first, last),
		Salary:     g.Salary(),
		Department: g.Department(),
	}
}

// WebtableInvalid - returns values rejected by the email, age and salary inputs
func (g *Generator) WebtableInvalid() entities.WebtableRecord {
	return entities.WebtableRecord{
		Email:  InvalidEmail,
		Age:    InvalidAge,
		Salary: InvalidSalary,
	}
}

// Salary - returns a multiple of 1000 between 10000 and 999999
func (g *Generator) Salary() string {
	return fmt.Sprint(g.faker.IntRange(10, 999) * 1000)
}

// Department - returns a shop department name
func (g *Generator) Department() string {
	return g.faker.RandomString(departments)
}

// PickRecord - returns one record of data, chosen at random
func (g *Generator) PickRecord(data map[string]entities.WebtableRecord) (entities.WebtableRecord, bool) {
	if len(data) == 0 {
		return entities.WebtableRecord{}, false
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return data[keys[g.faker.IntN(len(keys))]], true
}

// Practice form

// PracticeFormComplete - returns a form with every field set
func (g *Generator) PracticeFormComplete() entities.PracticeForm {
	first, last := g.faker.FirstName(), g.faker.LastName()
	state, city := g.StateAndCity()

	g.mu.Lock()
	picture := g.picture
	g.mu.Unlock()

	return entities.PracticeForm{
		FirstName:   first,
		LastName:    last,
		Email:       g.email(first, last),
		Gender:      g.Gender(),
		Mobile:      g.Mobile(DefaultMobileLength),
		DateOfBirth: g.DateOfBirth(),
		Subjects:    g.SubjectsSample(),
		Hobbies:     g.HobbiesSample(),
		Picture:     picture,
		Address:     g.faker.Street(),
		State:       state,
		City:        city,
	}
}

// PracticeFormRequired - returns a form with only the required fields set
func (g *Generator) PracticeFormRequired() entities.PracticeForm {
	return entities.PracticeForm{
		FirstName: g.faker.FirstName(),
		LastName:  g.faker.LastName(),
		Mobile:    g.Mobile(DefaultMobileLength),
		Gender:    g.Gender(),
	}
}

// PracticeFormInvalid - returns the required fields with a short mobile number and a malformed email.
// Mobile numbers longer than 10 digits cannot be typed, so only the short case is covered.
func (g *Generator) PracticeFormInvalid() entities.PracticeForm {
	form := g.PracticeFormRequired()
	form.Mobile = g.Mobile(5)
	form.Email = InvalidEmail
	return form
}

// Gender - returns one of the gender options
func (g *Generator) Gender() entities.Gender {
	return entities.Genders[g.faker.IntN(len(entities.Genders))]
}

// Mobile - returns n random digits; n <= 0 means DefaultMobileLength
func (g *Generator) Mobile(n int) string {
	if n <= 0 {
		n = DefaultMobileLength
	}
	return g.faker.DigitN(uint(n))
}

// DateOfBirth - returns the birth date of someone aged 18 to 65, formatted for the date input
func (g *Generator) DateOfBirth() string {
	now := g.now()
	latest := now.AddDate(-18, 0, 0)
	earliest := now.AddDate(-65, 0, 0)
	return g.faker.DateRange(earliest, latest).Format(entities.DOBLayout)
}

// SubjectsSample - returns a non-empty random selection of subjects
func (g *Generator) SubjectsSample() []entities.Subject {
	return sample(g.faker, entities.Subjects)
}

// HobbiesSample - returns a non-empty random selection of hobbies
func (g *Generator) HobbiesSample() []entities.Hobby {
	return sample(g.faker, entities.Hobbies)
}

// StateAndCity - returns a state with one of its cities
func (g *Generator) StateAndCity() (entities.State, entities.City) {
	sc := entities.StatesAndCities[g.faker.IntN(len(entities.StatesAndCities))]
	return sc.State, sc.Cities[g.faker.IntN(len(sc.Cities))]
}

// Select menu

// SelectMenuRandom - returns one choice for every select widget
func (g *Generator) SelectMenuRandom() entities.SelectMenu {
	return entities.SelectMenu{
		SelectValue:    g.faker.RandomString(entities.SelectValueOptions),
		SelectOne:      g.faker.RandomString(entities.SelectOneOptions),
		OldStyleSelect: g.faker.RandomString(entities.OldSelectMenuOptions),
		MultiSelect:    sample(g.faker, entities.MultiDropdownOptions),
		StdMultiSelect: sample(g.faker, entities.MultiStandardOptions),
	}
}

// email - builds first.last@autotest.com with a numeric suffix to keep seeded rows apart
func (g *Generator) email(first, last string) string {
	local := strings.ToLower(alnum(first) + "." + alnum(last) + g.faker.Numerify("##"))
	return local + "@" + entities.EmailProvider
}

// sample - returns between 1 and len(items) distinct items in random order
func sample[T any](f *gofakeit.Faker, items []T) []T {
	if len(items) == 0 {
		return nil
	}
	picked := make([]T, len(items))
	copy(picked, items)
	f.ShuffleAnySlice(picked)
	return picked[:f.IntRange(1, len(picked))]
}

func alnum(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
