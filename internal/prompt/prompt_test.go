package prompt

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectlist/internal/domain"
	"selectlist/internal/selection"
)

func people(mode selection.Mode) *selection.Controller[domain.Person] {
	values := []domain.Person{{Name: "Duck"}, {Name: "Jeffrey"}, {Name: "Pudge"}, {Name: "Santa"}}
	items := selection.NewItems(values, func(p domain.Person) bool { return p.Name == "Santa" })
	return selection.NewController(items, selection.WithMode(mode))
}

// scripted answers the prompt with the given indices in order
func scripted(t *testing.T, answers ...int) (Runner, *[][]entry) {
	var seen [][]entry
	return func(sel *promptui.Select) (int, error) {
		require.NotEmpty(t, answers, "prompt shown more often than scripted")
		seen = append(seen, sel.Items.([]entry))
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}, &seen
}

func TestRunTogglesUntilDone(t *testing.T) {
	c := people(selection.Multiple)
	run, seen := scripted(t, 1, 2, 0)

	require.NoError(t, New("People", c).WithRunner(run).Run())
	assert.Equal(t, []domain.Person{{Name: "Duck"}, {Name: "Jeffrey"}, {Name: "Santa"}}, c.Selected())

	require.Len(t, *seen, 3)
	first := (*seen)[0]
	assert.Equal(t, entry{Label: "Done", Done: true}, first[0])
	assert.Equal(t, entry{Label: "Santa", Marker: "[x]", Selected: true}, first[4])
	assert.Equal(t, "[x]", (*seen)[2][1].Marker, "second prompt reflects the first toggle")
}

func TestRunSingleMode(t *testing.T) {
	c := people(selection.Single)
	run, seen := scripted(t, 4, 1, 0)

	require.NoError(t, New("People", c).WithRunner(run).Run())
	assert.Equal(t, []domain.Person{{Name: "Duck"}}, c.Selected())
	assert.Equal(t, "( )", (*seen)[1][4].Marker, "tapping selected Santa cleared it")
}

func TestRunPropagatesPromptErrors(t *testing.T) {
	c := people(selection.Single)
	h := New("People", c).WithRunner(func(*promptui.Select) (int, error) {
		return 0, promptui.ErrInterrupt
	})

	err := h.Run()
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, promptui.ErrInterrupt))
}

func TestRunRejectsOutOfRangeAnswers(t *testing.T) {
	c := people(selection.Single)
	run, _ := scripted(t, 9)

	err := New("People", c).WithRunner(run).Run()
	assert.ErrorIs(t, err, selection.ErrIndexOutOfRange)
}

func TestPrintSummary(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	PrintSummary(&buf, "People", []domain.Person{{Name: "Duck"}, {Name: "Santa"}})
	assert.Equal(t, "✔ People: Duck, Santa\n", buf.String())

	buf.Reset()
	PrintSummary(&buf, "People", nil)
	assert.Equal(t, "✔ People: nothing selected\n", buf.String())
}
