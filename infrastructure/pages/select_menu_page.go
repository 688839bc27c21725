package pages

import (
	"context"
	"fmt"

	"demoqa_automation/application/steps"
	"demoqa_automation/domain/entities"

	"github.com/playwright-community/playwright-go"
)

// SelectMenuPage is the page object of /select-menu
type SelectMenuPage struct {
	*BasePage

	textPageHeader             playwright.Locator
	selectValueDiv             playwright.Locator
	textSelectValue            playwright.Locator
	selectOneDiv               playwright.Locator
	textSelectOne              playwright.Locator
	oldStyleSelectMenu         playwright.Locator
	multiSelectDropDown        playwright.Locator
	optionsMultiSelectDropDown playwright.Locator
	multiSelectSelectedValues  playwright.Locator
	standardMultiSelect        playwright.Locator
}

// NewSelectMenuPage - creates the select menu page object
func NewSelectMenuPage(page playwright.Page, opts Options) *SelectMenuPage {
	selectValueDiv := page.Locator("div#withOptGroup")
	selectOneDiv := page.Locator("div#selectOne")
	return &SelectMenuPage{
		BasePage:                   NewBasePage(page, opts),
		textPageHeader:             page.Locator(`role=heading[name="Select Menu"]`),
		selectValueDiv:             selectValueDiv,
		textSelectValue:            selectValueDiv.Locator("[class*=singleValue]"),
		selectOneDiv:               selectOneDiv,
		textSelectOne:              selectOneDiv.Locator("[class*=singleValue]"),
		oldStyleSelectMenu:         page.Locator("#oldSelectMenu"),
		multiSelectDropDown:        page.GetByText("Select..."),
		optionsMultiSelectDropDown: page.Locator("div[id^=react-select-][id*=-option-]"),
		multiSelectSelectedValues:  page.Locator("[class*=multiValue]"),
		standardMultiSelect:        page.Locator("#cars"),
	}
}

// GoToPage - opens the select menu page
func (s *SelectMenuPage) GoToPage(ctx context.Context) error {
	return steps.When("User goes to Select Menu page").Do(ctx, s.rep, func(ctx context.Context) error {
		if err := s.goTo(ctx, "/select-menu"); err != nil {
			return err
		}
		return check(s.expect.Locator(s.textPageHeader).ToBeVisible(), "Select Menu header should be visible")
	})
}

// SelectFromSelectValueOption - picks option in the grouped react select
func (s *SelectMenuPage) SelectFromSelectValueOption(ctx context.Context, option string) error {
	return steps.When("User selects from Select Value option").Do(ctx, s.rep, func(ctx context.Context) error {
		return s.selectReactOption(s.selectValueDiv, s.textSelectValue, option, "Select value")
	}, option)
}

// SelectFromSelectOneOption - picks option in the title react select
func (s *SelectMenuPage) SelectFromSelectOneOption(ctx context.Context, option string) error {
	return steps.When("User selects from Select One option").Do(ctx, s.rep, func(ctx context.Context) error {
		return s.selectReactOption(s.selectOneDiv, s.textSelectOne, option, "Select one")
	}, option)
}

func (s *SelectMenuPage) selectReactOption(container, selected playwright.Locator, option, name string) error {
	if err := container.Click(); err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	if err := container.GetByText(option, playwright.LocatorGetByTextOptions{Exact: playwright.Bool(true)}).Click(); err != nil {
		return fmt.Errorf("failed to pick %s in %s: %w", option, name, err)
	}
	return check(s.expect.Locator(selected).ToHaveText(option), "Selected value for %s should be %s", name, option)
}

// SelectFromOldStyleSelectMenuOption - picks option in the native select by its label
func (s *SelectMenuPage) SelectFromOldStyleSelectMenuOption(ctx context.Context, option string) error {
	return steps.When("User selects from Old Style Select Menu option").Do(ctx, s.rep, func(ctx context.Context) error {
		if _, err := s.oldStyleSelectMenu.SelectOption(playwright.SelectOptionValues{
			Labels: &[]string{option},
		}); err != nil {
			return fmt.Errorf("failed to select %s: %w", option, err)
		}
		// option values are indexes, the label is what the user sees
		return check(
			s.expect.Locator(s.oldStyleSelectMenu.Locator("option:checked")).ToHaveText(option),
			"Selected value for Old Style Select Menu should be %s", option,
		)
	}, option)
}

// SelectFromMultiSelectDropDownOption - adds each option to the react multiselect
func (s *SelectMenuPage) SelectFromMultiSelectDropDownOption(ctx context.Context, options []string) error {
	return steps.When("User selects from Multi Select Drop Down option").Do(ctx, s.rep, func(ctx context.Context) error {
		if err := s.multiSelectDropDown.Click(); err != nil {
			return fmt.Errorf("failed to open multiselect: %w", err)
		}
		var soft softChecks
		for _, opt := range options {
			if err := s.optionsMultiSelectDropDown.Filter(playwright.LocatorFilterOptions{HasText: opt}).First().Click(); err != nil {
				return fmt.Errorf("failed to pick %s: %w", opt, err)
			}
			soft.add(check(
				s.expect.Locator(s.multiSelectSelectedValues.Filter(playwright.LocatorFilterOptions{HasText: opt}).First()).ToBeVisible(),
				"Selected value for Multi Select Drop Down should select %s", opt,
			))
		}
		return soft.err()
	}, options)
}

// SelectFromStandardMultiSelectOption - selects options in the native multiple select.
// The widget shows no summary, so the check reads the selected <option> elements.
func (s *SelectMenuPage) SelectFromStandardMultiSelectOption(ctx context.Context, options []string) error {
	return steps.When("User selects from Standard Multi Select option").Do(ctx, s.rep, func(ctx context.Context) error {
		if _, err := s.standardMultiSelect.SelectOption(playwright.SelectOptionValues{
			Labels: &options,
		}); err != nil {
			return fmt.Errorf("failed to select %v: %w", options, err)
		}
		return check(
			s.expect.Locator(s.standardMultiSelect.Locator("option:checked")).ToHaveText(InDocumentOrder(options, entities.MultiStandardOptions)),
			"Selected values for Standard Multi Select should be %v", options,
		)
	}, options)
}

// InDocumentOrder - returns the members of selected ordered as they appear in all
func InDocumentOrder(selected, all []string) []string {
	want := make(map[string]bool, len(selected))
	for _, s := range selected {
		want[s] = true
	}
	ordered := make([]string, 0, len(selected))
	for _, o := range all {
		if want[o] {
			ordered = append(ordered, o)
		}
	}
	return ordered
}
