package pages

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"demoqa_automation/application/steps"
	"demoqa_automation/domain/entities"

	"github.com/playwright-community/playwright-go"
)

// Rows rendered without data only hold a single padding span
const webtableRowsSelector = ".rt-tbody .rt-tr:not(:has(span:only-child))"

// ErrRecordNotFound is returned when no stored record matches an email
var ErrRecordNotFound = errors.New("web table record not found")

// WebtablePage is the page object of /webtables
type WebtablePage struct {
	*BasePage

	textPageHeader    playwright.Locator
	buttonAddRecord   playwright.Locator
	inputSearchRecord playwright.Locator
	tableRows         playwright.Locator

	mu sync.Mutex
	// records created during the test, keyed by email
	data map[string]entities.WebtableRecord
}

// NewWebtablePage - creates the web table page object
func NewWebtablePage(page playwright.Page, opts Options) *WebtablePage {
	base := NewBasePage(page, opts)
	return &WebtablePage{
		BasePage:          base,
		textPageHeader:    page.Locator(`role=heading[name="Web Tables"]`),
		buttonAddRecord:   page.Locator(`role=button[name="Add"]`),
		inputSearchRecord: page.Locator(`role=textbox[name="Type to search"]`),
		tableRows:         page.Locator(webtableRowsSelector),
		data:              make(map[string]entities.WebtableRecord),
	}
}

// GoToPage - opens the web table page
func (w *WebtablePage) GoToPage(ctx context.Context) error {
	return steps.When("User goes to Webtables page").Do(ctx, w.rep, func(ctx context.Context) error {
		if err := w.goTo(ctx, "/webtables"); err != nil {
			return err
		}
		return check(w.expect.Locator(w.textPageHeader).ToBeVisible(), "Web Tables header should be visible")
	})
}

// SetWebtableRecords - seeds the table with count generated records
func (w *WebtablePage) SetWebtableRecords(ctx context.Context, count int) error {
	if count < 1 {
		count = 1
	}
	return steps.Given("Webtable records are available for testing").Do(ctx, w.rep, func(ctx context.Context) error {
		for i := 0; i < count; i++ {
			if err := w.CreateNewRecord(ctx, w.opts.Data.WebtableValid()); err != nil {
				return err
			}
		}
		return nil
	})
}

// CleanUpWebtableRecords - deletes every row the cleanup guard allows
func (w *WebtablePage) CleanUpWebtableRecords(ctx context.Context) error {
	return steps.And("Clean up @autotest Webtable records").Do(ctx, w.rep, func(ctx context.Context) error {
		// the search box may hide rows
		if err := w.inputSearchRecord.Clear(); err != nil {
			return fmt.Errorf("failed to clear search: %w", err)
		}
		emails, err := w.tableRows.
			Filter(playwright.LocatorFilterOptions{HasText: "@" + entities.EmailProvider}).
			Locator(".rt-td:nth-child(4)").
			AllTextContents()
		if err != nil {
			return fmt.Errorf("failed to read web table emails: %w", err)
		}
		for _, email := range emails {
			if w.opts.Guard != nil && !w.opts.Guard.AllowDelete(ctx, email) {
				continue
			}
			if err := w.ClickRecordDeleteButton(ctx, email); err != nil {
				return err
			}
		}
		return nil
	})
}

// ClickAddNewRecordButton - opens the registration form for a new record
func (w *WebtablePage) ClickAddNewRecordButton(ctx context.Context) (*RegistrationFormModal, error) {
	return steps.Call(ctx, w.rep, steps.When("User click on Add new record button"), func(ctx context.Context) (*RegistrationFormModal, error) {
		if err := w.buttonAddRecord.Click(); err != nil {
			return nil, fmt.Errorf("failed to click add button: %w", err)
		}
		return newRegistrationFormModal(w.BasePage), nil
	})
}

// CreateNewRecord - adds a record through the registration form and remembers it
func (w *WebtablePage) CreateNewRecord(ctx context.Context, data entities.WebtableRecord) error {
	return steps.When("User Creates a new record to the table - {0}").Do(ctx, w.rep, func(ctx context.Context) error {
		form, err := w.ClickAddNewRecordButton(ctx)
		if err != nil {
			return err
		}
		if err := form.ShouldBeVisible(ctx); err != nil {
			return err
		}
		if err := form.FillForm(ctx, data); err != nil {
			return err
		}
		if err := form.ClickSubmitForm(ctx); err != nil {
			return err
		}
		w.store(data)
		return nil
	}, data)
}

// ClickRecordEditButton - opens the registration form of the row holding email
func (w *WebtablePage) ClickRecordEditButton(ctx context.Context, email string) (*RegistrationFormModal, error) {
	return steps.Call(ctx, w.rep, steps.When("User clicks edit for {0} record"), func(ctx context.Context) (*RegistrationFormModal, error) {
		if err := w.row(email).Locator(`[title="Edit"]`).Click(); err != nil {
			return nil, fmt.Errorf("failed to click edit for %s: %w", email, err)
		}
		return newRegistrationFormModal(w.BasePage), nil
	}, email)
}

// EditExistingRecord - applies update to the row holding email and returns the merged record
func (w *WebtablePage) EditExistingRecord(ctx context.Context, email string, update entities.WebtableRecord) (entities.WebtableRecord, error) {
	return steps.Call(ctx, w.rep, steps.When("User edits an existing record for {0} with {1}"), func(ctx context.Context) (entities.WebtableRecord, error) {
		form, err := w.ClickRecordEditButton(ctx, email)
		if err != nil {
			return entities.WebtableRecord{}, err
		}
		if err := form.FillForm(ctx, update); err != nil {
			return entities.WebtableRecord{}, err
		}
		if err := form.ClickSubmitForm(ctx); err != nil {
			return entities.WebtableRecord{}, err
		}
		return w.update(email, update), nil
	}, email, update)
}

// RecordShouldBeDisplayed - asserts the row of data.Email shows every field of data.
// Email is the only identifier rows have, so cells are matched by position.
func (w *WebtablePage) RecordShouldBeDisplayed(ctx context.Context, data entities.WebtableRecord) error {
	return steps.Then("Record should be displayed in the table - {0}").Do(ctx, w.rep, func(ctx context.Context) error {
		row := w.row(data.Email)
		if err := check(w.expect.Locator(row).ToBeVisible(), "Record with email %s should be visible", data.Email); err != nil {
			return err
		}
		cells := row.Locator(".rt-td")
		for i, field := range entities.WebtableFields {
			want := data.Get(field)
			if err := check(
				w.expect.Locator(cells.Nth(i)).ToHaveText(want),
				"Record %s should be %s", cellNames[field], want,
			); err != nil {
				return err
			}
		}
		return nil
	}, data)
}

var cellNames = map[entities.WebtableField]string{
	entities.FieldFirstName:  "first name",
	entities.FieldLastName:   "last name",
	entities.FieldEmail:      "email",
	entities.FieldAge:        "age",
	entities.FieldSalary:     "salary",
	entities.FieldDepartment: "department",
}

// RecordShouldNotBeDisplayed - asserts no row holds email
func (w *WebtablePage) RecordShouldNotBeDisplayed(ctx context.Context, email string) error {
	return steps.Then("Record should NOT be displayed in the table - {0}").Do(ctx, w.rep, func(ctx context.Context) error {
		return check(w.expect.Locator(w.row(email)).Not().ToBeVisible(), "Record with email %s should NOT be visible", email)
	}, email)
}

// SearchForRecord - types into the search box
func (w *WebtablePage) SearchForRecord(ctx context.Context, searchText string) error {
	return steps.When("User searches for record with text - {0}").Do(ctx, w.rep, func(ctx context.Context) error {
		if err := w.inputSearchRecord.Fill(searchText); err != nil {
			return fmt.Errorf("failed to search for %s: %w", searchText, err)
		}
		return nil
	}, searchText)
}

// OnlyMatchingRecordsShouldBeDisplayed - asserts every visible row contains searchText
func (w *WebtablePage) OnlyMatchingRecordsShouldBeDisplayed(ctx context.Context, searchText string) error {
	return steps.Then("Only records matching - {0} should be displayed in the table").Do(ctx, w.rep, func(ctx context.Context) error {
		rowCount, err := w.tableRows.Count()
		if err != nil {
			return fmt.Errorf("failed to count rows: %w", err)
		}
		matching := w.tableRows.Filter(playwright.LocatorFilterOptions{HasText: searchText})
		return check(w.expect.Locator(matching).ToHaveCount(rowCount), "Only records matching %s should be displayed", searchText)
	}, searchText)
}

// ClickRecordDeleteButton - deletes the row holding email and forgets the record
func (w *WebtablePage) ClickRecordDeleteButton(ctx context.Context, email string) error {
	return steps.When("User deletes {0} record from the webtable").Do(ctx, w.rep, func(ctx context.Context) error {
		if err := w.row(email).Locator(`[title="Delete"]`).Click(); err != nil {
			return fmt.Errorf("failed to delete %s: %w", email, err)
		}
		w.forget(email)
		return nil
	}, email)
}

// Data - returns a copy of the records created so far, keyed by email
func (w *WebtablePage) Data() map[string]entities.WebtableRecord {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make(map[string]entities.WebtableRecord, len(w.data))
	for k, v := range w.data {
		out[k] = v
	}
	return out
}

// Record - returns the stored record of email
func (w *WebtablePage) Record(email string) (entities.WebtableRecord, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	r, ok := w.data[email]
	if !ok {
		return entities.WebtableRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, email)
	}
	return r, nil
}

// PickRecord - returns one of the created records at random
func (w *WebtablePage) PickRecord() (entities.WebtableRecord, error) {
	r, ok := w.opts.Data.PickRecord(w.Data())
	if !ok {
		return entities.WebtableRecord{}, fmt.Errorf("%w: no records were created", ErrRecordNotFound)
	}
	return r, nil
}

func (w *WebtablePage) row(email string) playwright.Locator {
	return w.tableRows.Filter(playwright.LocatorFilterOptions{HasText: email})
}

func (w *WebtablePage) store(r entities.WebtableRecord) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.data[r.Email] = r
}

func (w *WebtablePage) update(email string, update entities.WebtableRecord) entities.WebtableRecord {
	w.mu.Lock()
	defer w.mu.Unlock()

	merged := w.data[email].Merge(update)
	if merged.Email == "" {
		merged.Email = email
	}
	w.data[email] = merged
	return merged
}

func (w *WebtablePage) forget(email string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.data, email)
}
