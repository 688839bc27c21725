package entities

// Options of the grouped "Select Value" widget
var SelectValueOptions = []string{
	"Group 1, option 1",
	"Group 1, option 2",
	"Group 2, option 1",
	"Group 2, option 2",
	"A root option",
	"Another root option",
}

// Options of the "Select One" widget
var SelectOneOptions = []string{"Dr.", "Mr.", "Mrs.", "Ms.", "Prof.", "Other"}

// Options of the native <select> element
var OldSelectMenuOptions = []string{
	"Red",
	"Blue",
	"Green",
	"Yellow",
	"Purple",
	"Black",
	"White",
	"Voilet",
	"Indigo",
	"Magenta",
	"Aqua",
}

// Options of the react multiselect dropdown
var MultiDropdownOptions = []string{"Green", "Blue", "Black", "Red"}

// Options of the native multiple <select> element
var MultiStandardOptions = []string{"Volvo", "Saab", "Opel", "Audi"}

// SelectMenu holds one choice for each widget of the select menu page
type SelectMenu struct {
	SelectValue    string   `json:"selectValue" yaml:"selectValue"`
	SelectOne      string   `json:"selectOne" yaml:"selectOne"`
	OldStyleSelect string   `json:"oldStyleSelect" yaml:"oldStyleSelect"`
	MultiSelect    []string `json:"multiSelect" yaml:"multiSelect"`
	StdMultiSelect []string `json:"stdMultiSelect" yaml:"stdMultiSelect"`
}
