package entities

// EmailProvider is the mail domain of every record the suite creates.
// Cleanup only ever touches rows carrying it.
const EmailProvider = "autotest.com"

// Invalid fields are rendered with a red border.
const (
	ErrorCSSProperty = "border-color"
	ErrorCSSValue    = "rgb(220, 53, 69)"
)

// WebtableField names one column of the registration form
type WebtableField string

const (
	FieldFirstName  WebtableField = "firstName"
	FieldLastName   WebtableField = "lastName"
	FieldEmail      WebtableField = "email"
	FieldAge        WebtableField = "age"
	FieldSalary     WebtableField = "salary"
	FieldDepartment WebtableField = "department"
)

// WebtableFields lists the form fields in the order they appear on screen
var WebtableFields = []WebtableField{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldAge,
	FieldSalary,
	FieldDepartment,
}

// WebtableRecord represents one row of the web table.
// Empty fields are treated as "not set", which lets the same type describe partial updates.
type WebtableRecord struct {
	FirstName  string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty" yaml:"lastName,omitempty"`
	Age        string `json:"age,omitempty" yaml:"age,omitempty"`
	Email      string `json:"email,omitempty" yaml:"email,omitempty"`
	Salary     string `json:"salary,omitempty" yaml:"salary,omitempty"`
	Department string `json:"department,omitempty" yaml:"department,omitempty"`
}

// Get - returns the value of a field
func (r WebtableRecord) Get(field WebtableField) string {
	switch field {
	case FieldFirstName:
		return r.FirstName
	case FieldLastName:
		return r.LastName
	case FieldEmail:
		return r.Email
	case FieldAge:
		return r.Age
	case FieldSalary:
		return r.Salary
	case FieldDepartment:
		return r.Department
	}
	return ""
}

// Fields - returns the fields holding a value, in form order
func (r WebtableRecord) Fields() []WebtableField {
	fields := make([]WebtableField, 0, len(WebtableFields))
	for _, f := range WebtableFields {
		if r.Get(f) != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// Merge - returns a copy of r with every non-empty field of update applied
func (r WebtableRecord) Merge(update WebtableRecord) WebtableRecord {
	if update.FirstName != "" {
		r.FirstName = update.FirstName
	}
	if update.LastName != "" {
		r.LastName = update.LastName
	}
	if update.Age != "" {
		r.Age = update.Age
	}
	if update.Email != "" {
		r.Email = update.Email
	}
	if update.Salary != "" {
		r.Salary = update.Salary
	}
	if update.Department != "" {
		r.Department = update.Department
	}
	return r
}
