package pages

import (
	"context"
	"fmt"
	"time"

	"demoqa_automation/application/steps"
	"demoqa_automation/domain/entities"

	"github.com/playwright-community/playwright-go"
)

// Hobby checkboxes are covered by a styled label and sometimes ignore the first click
const (
	hobbyCheckTimeout = time.Second
	hobbyRetryTimeout = 5 * time.Second
)

// PracticeFormPage is the page object of /automation-practice-form
type PracticeFormPage struct {
	*BasePage

	textPageHeader             playwright.Locator
	inputFirstName             playwright.Locator
	inputLastName              playwright.Locator
	inputEmail                 playwright.Locator
	inputMobileNumber          playwright.Locator
	inputDateOfBirth           playwright.Locator
	inputAutocompleteSubjects  playwright.Locator
	optionAutoCompleteSubject  playwright.Locator
	multiValueSelectedSubjects playwright.Locator
	fileInputUploadPicture     playwright.Locator
	textAreaCurrentAddress     playwright.Locator
	inputListState             playwright.Locator
	inputListCity              playwright.Locator
	buttonSubmit               playwright.Locator
}

// NewPracticeFormPage - creates the practice form page object
func NewPracticeFormPage(page playwright.Page, opts Options) *PracticeFormPage {
	return &PracticeFormPage{
		BasePage:                   NewBasePage(page, opts),
		textPageHeader:             page.Locator(`role=heading[name="Practice Form"]`),
		inputFirstName:             page.Locator("#firstName"),
		inputLastName:              page.Locator(`role=textbox[name="Last Name"]`),
		inputEmail:                 page.Locator(`role=textbox[name="name@example.com"]`),
		inputMobileNumber:          page.Locator(`role=textbox[name="Mobile Number"]`),
		inputDateOfBirth:           page.Locator("#dateOfBirthInput"),
		inputAutocompleteSubjects:  page.Locator("#subjectsInput"),
		optionAutoCompleteSubject:  page.Locator(".subjects-auto-complete__option"),
		multiValueSelectedSubjects: page.Locator(".subjects-auto-complete__multi-value"),
		fileInputUploadPicture:     page.Locator("#uploadPicture"),
		textAreaCurrentAddress:     page.Locator(`role=textbox[name="Current Address"]`),
		inputListState:             page.GetByText("Select State"),
		inputListCity:              page.GetByText("Select City"),
		buttonSubmit:               page.Locator(`role=button[name="Submit"]`),
	}
}

func (p *PracticeFormPage) radioButtonGender(gender entities.Gender) playwright.Locator {
	return p.page.GetByText(string(gender), playwright.PageGetByTextOptions{Exact: playwright.Bool(true)})
}

func (p *PracticeFormPage) checkboxHobby(hobby entities.Hobby) playwright.Locator {
	return p.page.GetByLabel(string(hobby))
}

func (p *PracticeFormPage) optionListState(state entities.State) playwright.Locator {
	return p.page.Locator("#state").GetByText(string(state), playwright.LocatorGetByTextOptions{Exact: playwright.Bool(true)})
}

func (p *PracticeFormPage) optionListCity(city entities.City) playwright.Locator {
	return p.page.Locator("#city").GetByText(string(city), playwright.LocatorGetByTextOptions{Exact: playwright.Bool(true)})
}

// GoToPage - opens the practice form
func (p *PracticeFormPage) GoToPage(ctx context.Context) error {
	return steps.When("User goes to Practice Form page").Do(ctx, p.rep, func(ctx context.Context) error {
		if err := p.goTo(ctx, "/automation-practice-form"); err != nil {
			return err
		}
		return check(p.expect.Locator(p.textPageHeader).ToBeVisible(), "Practice Form header should be visible")
	})
}

// FillForm - fills every non-empty field of data
func (p *PracticeFormPage) FillForm(ctx context.Context, data entities.PracticeForm) error {
	return steps.When("User fills the practice form with data - {0}").Do(ctx, p.rep, func(ctx context.Context) error {
		fills := []struct {
			input playwright.Locator
			value string
			name  string
		}{
			{p.inputFirstName, data.FirstName, "first name"},
			{p.inputLastName, data.LastName, "last name"},
			{p.inputEmail, data.Email, "email"},
		}
		for _, f := range fills {
			if err := fill(f.input, f.value, f.name); err != nil {
				return err
			}
		}
		if data.Gender != "" {
			if err := p.SelectGender(ctx, data.Gender); err != nil {
				return err
			}
		}
		if err := fill(p.inputMobileNumber, data.Mobile, "mobile"); err != nil {
			return err
		}
		if err := p.fillDateOfBirth(data.DateOfBirth); err != nil {
			return err
		}
		if len(data.Subjects) > 0 {
			if err := p.SelectSubjects(ctx, data.Subjects); err != nil {
				return err
			}
		}
		if len(data.Hobbies) > 0 {
			if err := p.CheckHobbies(ctx, data.Hobbies); err != nil {
				return err
			}
		}
		if data.Picture != "" {
			if err := p.SetPictureInputFile(ctx, data.Picture); err != nil {
				return err
			}
		}
		if err := fill(p.textAreaCurrentAddress, data.Address, "address"); err != nil {
			return err
		}
		if data.State != "" {
			if err := p.SelectState(ctx, data.State); err != nil {
				return err
			}
		}
		if data.City != "" {
			if err := p.SelectCity(ctx, data.City); err != nil {
				return err
			}
		}
		return nil
	}, data)
}

func fill(input playwright.Locator, value, name string) error {
	if value == "" {
		return nil
	}
	if err := input.Fill(value); err != nil {
		return fmt.Errorf("failed to fill %s: %w", name, err)
	}
	return nil
}

// fillDateOfBirth types the date and closes the picker it opens
func (p *PracticeFormPage) fillDateOfBirth(dob string) error {
	if dob == "" {
		return nil
	}
	if err := p.inputDateOfBirth.Fill(dob); err != nil {
		return fmt.Errorf("failed to fill date of birth: %w", err)
	}
	if err := p.inputDateOfBirth.Press("Escape"); err != nil {
		return fmt.Errorf("failed to close date picker: %w", err)
	}
	return nil
}

// ClearFirstName - empties the first name
func (p *PracticeFormPage) ClearFirstName(ctx context.Context) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		return p.inputFirstName.Clear()
	})
}

// ClearLastName - empties the last name
func (p *PracticeFormPage) ClearLastName(ctx context.Context) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		return p.inputLastName.Clear()
	})
}

// ClearMobile - empties the mobile number
func (p *PracticeFormPage) ClearMobile(ctx context.Context) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		return p.inputMobileNumber.Clear()
	})
}

func (p *PracticeFormPage) shouldDisplayError(input playwright.Locator, name string) error {
	return check(
		p.expect.Locator(input).ToHaveCSS(entities.ErrorCSSProperty, entities.ErrorCSSValue),
		"Field %s should display an error", name,
	)
}

func (p *PracticeFormPage) ShouldDisplayErrorInFirstNameField(ctx context.Context) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		return p.shouldDisplayError(p.inputFirstName, "first name")
	})
}

func (p *PracticeFormPage) ShouldDisplayErrorInLastNameField(ctx context.Context) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		return p.shouldDisplayError(p.inputLastName, "last name")
	})
}

func (p *PracticeFormPage) ShouldDisplayErrorInMobileNumberField(ctx context.Context) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		return p.shouldDisplayError(p.inputMobileNumber, "mobile number")
	})
}

func (p *PracticeFormPage) ShouldDisplayErrorInEmailField(ctx context.Context) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		return p.shouldDisplayError(p.inputEmail, "email")
	})
}

// SelectGender - clicks the gender radio label
func (p *PracticeFormPage) SelectGender(ctx context.Context, gender entities.Gender) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		if err := p.radioButtonGender(gender).Click(); err != nil {
			return fmt.Errorf("failed to select gender %s: %w", gender, err)
		}
		return nil
	})
}

// SelectSubjects - picks each subject from the autocomplete
func (p *PracticeFormPage) SelectSubjects(ctx context.Context, subjects []entities.Subject) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		for _, subject := range subjects {
			if err := p.inputAutocompleteSubjects.Fill(string(subject)); err != nil {
				return fmt.Errorf("failed to type subject %s: %w", subject, err)
			}
			option := p.optionAutoCompleteSubject.Filter(playwright.LocatorFilterOptions{HasText: string(subject)}).First()
			if err := option.Click(); err != nil {
				return fmt.Errorf("failed to pick subject %s: %w", subject, err)
			}
		}
		return nil
	})
}

// ClearSubjects - removes the given subjects from the selection
func (p *PracticeFormPage) ClearSubjects(ctx context.Context, subjects []entities.Subject) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		var soft softChecks
		for _, subject := range subjects {
			chip := p.multiValueSelectedSubjects.Filter(playwright.LocatorFilterOptions{HasText: string(subject)}).First()
			if err := chip.Locator(".subjects-auto-complete__multi-value__remove").Click(); err != nil {
				return fmt.Errorf("failed to remove subject %s: %w", subject, err)
			}
			soft.add(check(p.expect.Locator(chip).Not().ToBeVisible(), "Subject %s should be removed", subject))
		}
		return soft.err()
	})
}

// CheckHobbies - ticks each hobby, retrying until the checkbox reports checked
func (p *PracticeFormPage) CheckHobbies(ctx context.Context, hobbies []entities.Hobby) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		for _, hobby := range hobbies {
			if err := p.checkHobby(ctx, hobby); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *PracticeFormPage) checkHobby(ctx context.Context, hobby entities.Hobby) error {
	checkbox := p.checkboxHobby(hobby)
	deadline := time.Now().Add(hobbyRetryTimeout)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := checkbox.Click(playwright.LocatorClickOptions{Force: playwright.Bool(true)})
		if err == nil {
			err = p.expect.Locator(checkbox).ToBeChecked(playwright.LocatorAssertionsToBeCheckedOptions{
				Timeout: playwright.Float(float64(hobbyCheckTimeout.Milliseconds())),
			})
		}
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("Hobby %s should be checked: %w", hobby, err)
		}
	}
}

// UncheckHobbies - clears the given hobby checkboxes
func (p *PracticeFormPage) UncheckHobbies(ctx context.Context, hobbies []entities.Hobby) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		for _, hobby := range hobbies {
			if err := p.checkboxHobby(hobby).Uncheck(playwright.LocatorUncheckOptions{Force: playwright.Bool(true)}); err != nil {
				return fmt.Errorf("failed to uncheck hobby %s: %w", hobby, err)
			}
		}
		return nil
	})
}

// SetPictureInputFile - uploads the file at path
func (p *PracticeFormPage) SetPictureInputFile(ctx context.Context, path string) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		if err := p.fileInputUploadPicture.SetInputFiles(path); err != nil {
			return fmt.Errorf("failed to upload %s: %w", path, err)
		}
		return nil
	})
}

// SelectState - picks a state from the dropdown
func (p *PracticeFormPage) SelectState(ctx context.Context, state entities.State) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		if err := p.inputListState.Click(); err != nil {
			return fmt.Errorf("failed to open state list: %w", err)
		}
		if err := p.optionListState(state).Click(); err != nil {
			return fmt.Errorf("failed to select state %s: %w", state, err)
		}
		return nil
	})
}

// SelectCity - picks a city from the dropdown; a state must be selected first
func (p *PracticeFormPage) SelectCity(ctx context.Context, city entities.City) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		if err := p.inputListCity.Click(); err != nil {
			return fmt.Errorf("failed to open city list: %w", err)
		}
		if err := p.optionListCity(city).Click(); err != nil {
			return fmt.Errorf("failed to select city %s: %w", city, err)
		}
		return nil
	})
}

// ClickSubmit - submits the form
func (p *PracticeFormPage) ClickSubmit(ctx context.Context) error {
	return steps.Step().Do(ctx, p.rep, func(ctx context.Context) error {
		// the submit button sits below the fold, behind the footer ads
		if err := p.buttonSubmit.Click(playwright.LocatorClickOptions{Force: playwright.Bool(true)}); err != nil {
			return fmt.Errorf("failed to submit practice form: %w", err)
		}
		return nil
	})
}

// ShouldDisplayFormSubmittedModal - asserts the confirmation modal opened and returns it
func (p *PracticeFormPage) ShouldDisplayFormSubmittedModal(ctx context.Context) (*FormSubmittedModal, error) {
	return steps.Call(ctx, p.rep, steps.Step(), func(ctx context.Context) (*FormSubmittedModal, error) {
		modal := newFormSubmittedModal(p.BasePage)
		if err := modal.ShouldBeVisible(ctx); err != nil {
			return nil, err
		}
		return modal, nil
	})
}
