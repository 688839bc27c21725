package entities

// Gender is one of the radio options of the practice form
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists every gender option
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Hobby is one of the hobby checkboxes
type Hobby string

// Hobbies lists every hobby checkbox
var Hobbies = []Hobby{"Sports", "Reading", "Music"}

// Subject is a value accepted by the subjects autocomplete
type Subject string

// Subjects lists every subject the autocomplete offers
var Subjects = []Subject{
	"Maths",
	"Accounting",
	"Arts",
	"Social Studies",
	"Computer Science",
	"Commerce",
	"Civics",
	"Economics",
	"Physics",
	"Chemistry",
	"Biology",
	"English",
	"History",
	"Hindi",
}

// State is a value of the state dropdown
type State string

// City is a value of the city dropdown; the options depend on the selected state
type City string

// StateCities pairs a state with the cities it unlocks
type StateCities struct {
	State  State
	Cities []City
}

// StatesAndCities lists the state dropdown with its dependent cities
var StatesAndCities = []StateCities{
	{State: "NCR", Cities: []City{"Delhi", "Gurgaon", "Noida"}},
	{State: "Uttar Pradesh", Cities: []City{"Agra", "Lucknow", "Merrut"}},
	{State: "Haryana", Cities: []City{"Karnal", "Panipat"}},
	{State: "Rajasthan", Cities: []City{"Jaipur", "Jodhpur"}},
}

// DOBLayout is the layout typed into the date of birth input.
// SubmittedDOBLayout is how the confirmation modal renders the same date.
const (
	DOBLayout          = "02 Jan 2006"
	SubmittedDOBLayout = "02 January,2006"
)

// PracticeFormSubmittedMessage is the title of the confirmation modal
const PracticeFormSubmittedMessage = "Thanks for submitting the form"

// PracticeForm represents the student registration form.
// Zero-valued fields are left untouched when the form is filled.
type PracticeForm struct {
	FirstName   string    `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty" yaml:"lastName,omitempty"`
	Email       string    `json:"email,omitempty" yaml:"email,omitempty"`
	Gender      Gender    `json:"gender,omitempty" yaml:"gender,omitempty"`
	Mobile      string    `json:"mobile,omitempty" yaml:"mobile,omitempty"`
	DateOfBirth string    `json:"dateOfBirth,omitempty" yaml:"dateOfBirth,omitempty"`
	Subjects    []Subject `json:"subjects,omitempty" yaml:"subjects,omitempty"`
	Hobbies     []Hobby   `json:"hobbies,omitempty" yaml:"hobbies,omitempty"`
	Picture     string    `json:"picture,omitempty" yaml:"picture,omitempty"`
	Address     string    `json:"address,omitempty" yaml:"address,omitempty"`
	State       State     `json:"state,omitempty" yaml:"state,omitempty"`
	City        City      `json:"city,omitempty" yaml:"city,omitempty"`
}

// CitiesOf - returns the cities unlocked by a state
func CitiesOf(state State) []City {
	for _, sc := range StatesAndCities {
		if sc.State == state {
			return sc.Cities
		}
	}
	return nil
}
