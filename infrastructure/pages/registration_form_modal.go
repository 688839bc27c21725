package pages

import (
	"context"
	"fmt"

	"demoqa_automation/application/steps"
	"demoqa_automation/domain/entities"

	"github.com/playwright-community/playwright-go"
)

// RegistrationFormModal is the add/edit dialog of the web table
type RegistrationFormModal struct {
	*BasePage

	container    playwright.Locator
	buttonClose  playwright.Locator
	buttonSubmit playwright.Locator
	fields       map[entities.WebtableField]playwright.Locator
}

// NewRegistrationFormModal - creates the modal page object
func NewRegistrationFormModal(page playwright.Page, opts Options) *RegistrationFormModal {
	return newRegistrationFormModal(NewBasePage(page, opts))
}

func newRegistrationFormModal(base *BasePage) *RegistrationFormModal {
	page := base.page
	return &RegistrationFormModal{
		BasePage:     base,
		container:    page.Locator(".modal-content"),
		buttonClose:  page.Locator(`role=button[name="Close"]`),
		buttonSubmit: page.Locator(`role=button[name="Submit"]`),
		fields: map[entities.WebtableField]playwright.Locator{
			entities.FieldFirstName:  page.Locator(`role=textbox[name="First Name"]`),
			entities.FieldLastName:   page.Locator(`role=textbox[name="Last Name"]`),
			entities.FieldEmail:      page.Locator(`role=textbox[name="name@example.com"]`),
			entities.FieldAge:        page.Locator(`role=textbox[name="Age"]`),
			entities.FieldSalary:     page.Locator(`role=textbox[name="Salary"]`),
			entities.FieldDepartment: page.Locator(`role=textbox[name="Department"]`),
		},
	}
}

// ShouldBeVisible - asserts the modal is open
func (m *RegistrationFormModal) ShouldBeVisible(ctx context.Context) error {
	return check(m.expect.Locator(m.container).ToBeVisible(), "Registration form should be visible")
}

// FillForm - types every non-empty field of data
func (m *RegistrationFormModal) FillForm(ctx context.Context, data entities.WebtableRecord) error {
	return steps.Step().Do(ctx, m.rep, func(ctx context.Context) error {
		for _, field := range data.Fields() {
			if err := m.fields[field].Fill(data.Get(field)); err != nil {
				return fmt.Errorf("failed to fill %s: %w", field, err)
			}
		}
		return nil
	}, data)
}

// ClearField - empties the given fields
func (m *RegistrationFormModal) ClearField(ctx context.Context, fields ...entities.WebtableField) error {
	return steps.Step().Do(ctx, m.rep, func(ctx context.Context) error {
		for _, field := range fields {
			input, err := m.field(field)
			if err != nil {
				return err
			}
			if err := input.Clear(); err != nil {
				return fmt.Errorf("failed to clear %s: %w", field, err)
			}
		}
		return nil
	}, fields)
}

// ShouldDisplayFieldError - asserts every given field is marked invalid; all fields are checked before failing
func (m *RegistrationFormModal) ShouldDisplayFieldError(ctx context.Context, fields ...entities.WebtableField) error {
	return steps.Step().Do(ctx, m.rep, func(ctx context.Context) error {
		var soft softChecks
		for _, field := range fields {
			input, err := m.field(field)
			if err != nil {
				return err
			}
			soft.add(check(
				m.expect.Locator(input).ToHaveCSS(entities.ErrorCSSProperty, entities.ErrorCSSValue),
				"Field %s should display an error", field,
			))
		}
		return soft.err()
	}, fields)
}

// ClickSubmitForm - submits the form
func (m *RegistrationFormModal) ClickSubmitForm(ctx context.Context) error {
	if err := m.buttonSubmit.Click(); err != nil {
		return fmt.Errorf("failed to submit registration form: %w", err)
	}
	return nil
}

// CloseForm - dismisses the modal and waits for it to disappear
func (m *RegistrationFormModal) CloseForm(ctx context.Context) error {
	return steps.Step().Do(ctx, m.rep, func(ctx context.Context) error {
		if err := m.buttonClose.Click(); err != nil {
			return fmt.Errorf("failed to close registration form: %w", err)
		}
		return check(m.expect.Locator(m.container).Not().ToBeVisible(), "Registration form should be closed")
	})
}

func (m *RegistrationFormModal) field(field entities.WebtableField) (playwright.Locator, error) {
	input, ok := m.fields[field]
	if !ok {
		return nil, fmt.Errorf("unknown web table field %q", field)
	}
	return input, nil
}
