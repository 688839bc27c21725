package steps_test

import (
	"context"
	"errors"
	"testing"

	"demoqa_automation/application/steps"
	"demoqa_automation/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrationForm struct {
	filled []entities.WebtableRecord
}

func (f *registrationForm) fillForm(_ context.Context, data entities.WebtableRecord) error {
	f.filled = append(f.filled, data)
	return nil
}

func (f *registrationForm) clickSubmitForm(context.Context) error {
	return nil
}

func goToHomePage(context.Context) (string, error) {
	return "/", nil
}

func TestWrap_DerivesNameFromMethodValue(t *testing.T) {
	rep := &stubReporter{}
	form := &registrationForm{}

	fill := steps.WrapErr1(steps.Step(), rep, form.fillForm)
	submit := steps.WrapErr0(steps.Step(), rep, form.clickSubmitForm)

	record := entities.WebtableRecord{FirstName: "Ada"}
	require.NoError(t, fill(context.Background(), record))
	require.NoError(t, submit(context.Background()))

	assert.Equal(t, []string{"Fill form", "Click submit form"}, rep.titles())
	assert.Equal(t, []entities.WebtableRecord{record}, form.filled)
}

func TestWrap_DerivesNameFromFunction(t *testing.T) {
	rep := &stubReporter{}

	got, err := steps.Wrap0(steps.Step(), rep, goToHomePage)(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/", got)
	assert.Equal(t, []string{"Go to home page"}, rep.titles())
}

func TestWrap_ReturnsIdenticalValue(t *testing.T) {
	rep := &stubReporter{}
	want := &entities.WebtableRecord{Email: "a@autotest.com"}

	clickEdit := steps.Wrap1(steps.When("User clicks edit for {0} record"), rep,
		func(_ context.Context, email string) (*entities.WebtableRecord, error) {
			return want, nil
		})

	got, err := clickEdit(context.Background(), "a@autotest.com")
	require.NoError(t, err)

	assert.Same(t, want, got)
	assert.Equal(t, []string{`WHEN User clicks edit for "a@autotest.com" record`}, rep.titles())
}

func TestWrap_PropagatesErrorUnchanged(t *testing.T) {
	rep := &stubReporter{}
	want := errors.New("timeout 5000ms exceeded")

	edit := steps.Wrap2(steps.When("User edits an existing record for {0} with {1}"), rep,
		func(_ context.Context, email string, update map[string]string) (entities.WebtableRecord, error) {
			return entities.WebtableRecord{}, want
		})

	_, err := edit(context.Background(), "a@test.com", map[string]string{"salary": "5000"})

	assert.Same(t, want, err)
	assert.Equal(t, []string{`WHEN User edits an existing record for "a@test.com" with {"salary":"5000"}`}, rep.titles())
}

func TestWrap_InterfaceArgumentNilKeepsPlaceholder(t *testing.T) {
	rep := &stubReporter{}

	search := steps.WrapErr1(steps.When("User searches for record with text - {0}"), rep,
		func(context.Context, any) error { return nil })

	require.NoError(t, search(context.Background(), nil))
	assert.Equal(t, []string{"WHEN User searches for record with text - {0}"}, rep.titles())
}

func TestWrap3_RendersAllArguments(t *testing.T) {
	rep := &stubReporter{}

	navigate := steps.Wrap3(steps.And("{0} > {1} ({2})"), rep,
		func(_ context.Context, section, page string, exact bool) (bool, error) {
			return exact, nil
		})

	got, err := navigate(context.Background(), "Elements", "Web Tables", true)
	require.NoError(t, err)

	assert.True(t, got)
	assert.Equal(t, []string{`AND "Elements" > "Web Tables" (true)`}, rep.titles())
}

func TestWrap_FailsFastOnNil(t *testing.T) {
	var nilFn func(context.Context) error

	assert.Panics(t, func() { steps.WrapErr0(steps.Step(), &stubReporter{}, nilFn) })
	assert.Panics(t, func() { steps.WrapErr0(steps.Step(), nil, goToHomePageErr) })
}

func goToHomePageErr(context.Context) error { return nil }
