package pages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"demoqa_automation/application/steps"
	"demoqa_automation/domain/entities"

	"github.com/playwright-community/playwright-go"
)

// Rows of the confirmation table
const (
	RowStudentName  = "Student Name"
	RowStudentEmail = "Student Email"
	RowGender       = "Gender"
	RowMobile       = "Mobile"
	RowDateOfBirth  = "Date of Birth"
	RowSubjects     = "Subjects"
	RowHobbies      = "Hobbies"
	RowPicture      = "Picture"
	RowAddress      = "Address"
	RowStateAndCity = "State and City"
)

// FormSubmittedModal is the confirmation shown after the practice form is submitted
type FormSubmittedModal struct {
	*BasePage

	container            playwright.Locator
	textSubmittedMessage playwright.Locator
}

func newFormSubmittedModal(base *BasePage) *FormSubmittedModal {
	return &FormSubmittedModal{
		BasePage:             base,
		container:            base.page.Locator(".modal-content"),
		textSubmittedMessage: base.page.Locator(".modal-title"),
	}
}

// ShouldBeVisible - asserts the modal is open
func (m *FormSubmittedModal) ShouldBeVisible(ctx context.Context) error {
	return check(m.expect.Locator(m.container).ToBeVisible(), "Form submitted modal should be visible")
}

// ShouldDisplaySubmittedMessage - asserts the modal title
func (m *FormSubmittedModal) ShouldDisplaySubmittedMessage(ctx context.Context, expected string) error {
	return steps.Then("Form submitted message should be {0}").Do(ctx, m.rep, func(ctx context.Context) error {
		return check(m.expect.Locator(m.textSubmittedMessage).ToHaveText(expected), "Submitted message should be %s", expected)
	}, expected)
}

// ShouldDisplayExpectedFormData - asserts every row matching a field set in form
func (m *FormSubmittedModal) ShouldDisplayExpectedFormData(ctx context.Context, form entities.PracticeForm) error {
	return steps.Then("Form submitted modal should display - {0}").Do(ctx, m.rep, func(ctx context.Context) error {
		expected, err := ExpectedRows(form)
		if err != nil {
			return err
		}
		for _, row := range expected {
			if err := check(
				m.expect.Locator(m.valueLocator(row.Name)).ToHaveText(row.Value),
				"%s should be %s", row.Name, row.Value,
			); err != nil {
				return err
			}
		}
		return nil
	}, form)
}

// Value - returns the text of a row, e.g. Value(ctx, RowMobile)
func (m *FormSubmittedModal) Value(ctx context.Context, row string) (string, error) {
	text, err := m.valueLocator(row).InnerText()
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", row, err)
	}
	return text, nil
}

func (m *FormSubmittedModal) valueLocator(row string) playwright.Locator {
	return m.page.Locator(fmt.Sprintf("role=row[name=%q]", row)).Locator("td").Nth(1)
}

// SubmittedRow is one label/value pair of the confirmation table
type SubmittedRow struct {
	Name  string
	Value string
}

// ExpectedRows - returns what the confirmation table shows for form, skipping unset fields
func ExpectedRows(form entities.PracticeForm) ([]SubmittedRow, error) {
	var rows []SubmittedRow
	add := func(name, value string) {
		rows = append(rows, SubmittedRow{Name: name, Value: value})
	}

	if form.FirstName != "" && form.LastName != "" {
		add(RowStudentName, form.FirstName+" "+form.LastName)
	}
	if form.Email != "" {
		add(RowStudentEmail, form.Email)
	}
	if form.Gender != "" {
		add(RowGender, string(form.Gender))
	}
	if form.Mobile != "" {
		add(RowMobile, form.Mobile)
	}
	if form.DateOfBirth != "" {
		dob, err := time.Parse(entities.DOBLayout, form.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date of birth %q: %w", form.DateOfBirth, err)
		}
		add(RowDateOfBirth, dob.Format(entities.SubmittedDOBLayout))
	}
	if len(form.Subjects) > 0 {
		add(RowSubjects, joinStrings(form.Subjects))
	}
	if len(form.Hobbies) > 0 {
		add(RowHobbies, joinStrings(form.Hobbies))
	}
	if form.Picture != "" {
		add(RowPicture, baseName(form.Picture))
	}
	if form.Address != "" {
		add(RowAddress, form.Address)
	}
	if form.State != "" && form.City != "" {
		add(RowStateAndCity, string(form.State)+" "+string(form.City))
	}
	return rows, nil
}

func joinStrings[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// baseName - returns the file name of a slash or backslash separated path
func baseName(path string) string {
	return path[strings.LastIndexAny(path, `/\`)+1:]
}
