package scenario

import (
	"context"
	"fmt"
	"strconv"

	"demoqa_automation/domain/entities"
	"demoqa_automation/infrastructure/pages"
)

// Suites of the catalogue
const (
	SuiteWebtables     = "Elements > Webtables Page"
	SuitePracticeForms = "Forms > Practice Forms page"
	SuiteSelectMenu    = "Widgets > Select Menu page"
)

var (
	webtableTags     = []string{"@elements", "@webtables"}
	practiceFormTags = []string{"@forms", "@practice-forms"}
	selectMenuTags   = []string{"@widgets", "@select-menu"}
)

// Catalogue - returns every scenario of the suite, in execution order
func Catalogue() []Scenario {
	return []Scenario{
		{
			ID:    "TC01",
			Suite: SuiteWebtables,
			Name:  "should be able to edit existing webtables record",
			Tags:  webtableTags,
			Run:   WithWebtablePage(editExistingWebtableRecord),
		},
		{
			ID:    "TC02",
			Suite: SuiteWebtables,
			Name:  "should be able to validate form field inputs (email, age, salary)",
			Tags:  webtableTags,
			Run:   WithWebtablePage(validateWebtableFieldInputs),
		},
		{
			ID:    "TC03",
			Suite: SuiteWebtables,
			Name:  "should NOT be able to edit exiting webtable record with missing required fields",
			Tags:  webtableTags,
			Run:   WithWebtablePage(editWebtableRecordWithMissingFields),
		},
		{
			ID:    "TC04",
			Suite: SuiteWebtables,
			Name:  "should be able to cancel webtable record edit operation",
			Tags:  webtableTags,
			Run:   WithWebtablePage(cancelWebtableRecordEdit),
		},
		{
			ID:    "TC05",
			Suite: SuiteWebtables,
			Name:  "should be able to delete webtable record",
			Tags:  webtableTags,
			Run:   WithWebtablePage(deleteWebtableRecord),
		},
		{
			ID:    "TC11",
			Suite: SuitePracticeForms,
			Name:  "should be able to submit the form with complete data",
			Tags:  practiceFormTags,
			Run:   WithPracticeFormPage(submitCompletePracticeForm),
		},
		{
			ID:    "TC12",
			Suite: SuitePracticeForms,
			Name:  "should be able to submit form with only required fields",
			Tags:  practiceFormTags,
			Run:   WithPracticeFormPage(submitRequiredPracticeForm),
		},
		{
			ID:    "TC13",
			Suite: SuitePracticeForms,
			Name:  "should NOT be able to submit form with missing required fields",
			Tags:  practiceFormTags,
			Run:   WithPracticeFormPage(submitPracticeFormWithMissingFields),
		},
		{
			ID:    "TC14",
			Suite: SuitePracticeForms,
			Name:  "should be able to validate form field inputs (email, mobile)",
			Tags:  practiceFormTags,
			Run:   WithPracticeFormPage(submitInvalidPracticeForm),
		},
		{
			ID:    "TC21",
			Suite: SuiteSelectMenu,
			Name:  "should be able to select options from multiple select types",
			Tags:  selectMenuTags,
			Run:   WithSelectMenuPage(selectFromEverySelectType),
		},
	}
}

// Web tables

func editExistingWebtableRecord(ctx context.Context, env *Env, w *pages.WebtablePage) error {
	testData, err := w.PickRecord()
	if err != nil {
		return err
	}
	if err := w.SearchForRecord(ctx, testData.Email); err != nil {
		return err
	}

	age, err := strconv.Atoi(testData.Age)
	if err != nil {
		return fmt.Errorf("failed to parse age of %s: %w", testData.Email, err)
	}
	update := entities.WebtableRecord{
		FirstName:  testData.FirstName + " Edited",
		LastName:   testData.LastName + " Edited",
		Age:        strconv.Itoa(age + 1),
		Salary:     env.Data.Salary(),
		Department: env.Data.Department(),
	}
	updated, err := w.EditExistingRecord(ctx, testData.Email, update)
	if err != nil {
		return err
	}
	return w.RecordShouldBeDisplayed(ctx, updated)
}

func validateWebtableFieldInputs(ctx context.Context, env *Env, w *pages.WebtablePage) error {
	testData, err := w.PickRecord()
	if err != nil {
		return err
	}
	invalid := env.Data.WebtableInvalid()

	form, err := w.ClickRecordEditButton(ctx, testData.Email)
	if err != nil {
		return err
	}
	if err := form.FillForm(ctx, invalid); err != nil {
		return err
	}
	if err := form.ClickSubmitForm(ctx); err != nil {
		return err
	}
	if err := form.ShouldDisplayFieldError(ctx, invalid.Fields()...); err != nil {
		return err
	}
	return form.CloseForm(ctx)
}

func editWebtableRecordWithMissingFields(ctx context.Context, env *Env, w *pages.WebtablePage) error {
	testData, err := w.PickRecord()
	if err != nil {
		return err
	}

	form, err := w.ClickRecordEditButton(ctx, testData.Email)
	if err != nil {
		return err
	}
	if err := form.ClearField(ctx, entities.WebtableFields...); err != nil {
		return err
	}
	if err := form.ClickSubmitForm(ctx); err != nil {
		return err
	}
	if err := form.ShouldDisplayFieldError(ctx, entities.WebtableFields...); err != nil {
		return err
	}
	return form.CloseForm(ctx)
}

func cancelWebtableRecordEdit(ctx context.Context, env *Env, w *pages.WebtablePage) error {
	testData, err := w.PickRecord()
	if err != nil {
		return err
	}
	if err := w.SearchForRecord(ctx, testData.Email); err != nil {
		return err
	}

	update := entities.WebtableRecord{
		Salary:     env.Data.Salary(),
		Department: env.Data.Department(),
	}
	form, err := w.ClickRecordEditButton(ctx, testData.Email)
	if err != nil {
		return err
	}
	if err := form.FillForm(ctx, update); err != nil {
		return err
	}
	if err := form.CloseForm(ctx); err != nil {
		return err
	}

	// the row keeps its original values
	return w.RecordShouldBeDisplayed(ctx, testData)
}

func deleteWebtableRecord(ctx context.Context, env *Env, w *pages.WebtablePage) error {
	testData, err := w.PickRecord()
	if err != nil {
		return err
	}
	if err := w.SearchForRecord(ctx, testData.Email); err != nil {
		return err
	}
	if err := w.ClickRecordDeleteButton(ctx, testData.Email); err != nil {
		return err
	}
	return w.RecordShouldNotBeDisplayed(ctx, testData.Email)
}

// Practice form

func submitCompletePracticeForm(ctx context.Context, env *Env, p *pages.PracticeFormPage) error {
	return submitAndVerify(ctx, p, env.Data.PracticeFormComplete())
}

func submitRequiredPracticeForm(ctx context.Context, env *Env, p *pages.PracticeFormPage) error {
	return submitAndVerify(ctx, p, env.Data.PracticeFormRequired())
}

func submitAndVerify(ctx context.Context, p *pages.PracticeFormPage, testData entities.PracticeForm) error {
	if err := p.FillForm(ctx, testData); err != nil {
		return err
	}
	if err := p.ClickSubmit(ctx); err != nil {
		return err
	}

	modal, err := p.ShouldDisplayFormSubmittedModal(ctx)
	if err != nil {
		return err
	}
	if err := modal.ShouldDisplaySubmittedMessage(ctx, entities.PracticeFormSubmittedMessage); err != nil {
		return err
	}
	return modal.ShouldDisplayExpectedFormData(ctx, testData)
}

func submitPracticeFormWithMissingFields(ctx context.Context, env *Env, p *pages.PracticeFormPage) error {
	if err := p.FillForm(ctx, env.Data.PracticeFormComplete()); err != nil {
		return err
	}
	return chain(ctx,
		p.ClearFirstName,
		p.ClearLastName,
		p.ClearMobile,
		p.ClickSubmit,
		p.ShouldDisplayErrorInFirstNameField,
		p.ShouldDisplayErrorInLastNameField,
		p.ShouldDisplayErrorInMobileNumberField,
	)
}

func submitInvalidPracticeForm(ctx context.Context, env *Env, p *pages.PracticeFormPage) error {
	if err := p.FillForm(ctx, env.Data.PracticeFormInvalid()); err != nil {
		return err
	}
	return chain(ctx,
		p.ClickSubmit,
		p.ShouldDisplayErrorInMobileNumberField,
		p.ShouldDisplayErrorInEmailField,
	)
}

// Select menu

func selectFromEverySelectType(ctx context.Context, env *Env, s *pages.SelectMenuPage) error {
	testData := env.Data.SelectMenuRandom()

	if err := s.SelectFromSelectValueOption(ctx, testData.SelectValue); err != nil {
		return err
	}
	if err := s.SelectFromSelectOneOption(ctx, testData.SelectOne); err != nil {
		return err
	}
	if err := s.SelectFromOldStyleSelectMenuOption(ctx, testData.OldStyleSelect); err != nil {
		return err
	}
	if err := s.SelectFromMultiSelectDropDownOption(ctx, testData.MultiSelect); err != nil {
		return err
	}
	return s.SelectFromStandardMultiSelectOption(ctx, testData.StdMultiSelect)
}
