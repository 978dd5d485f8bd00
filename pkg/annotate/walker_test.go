package annotate_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/pseudomuto/steward/pkg/annotate"
	"github.com/pseudomuto/steward/pkg/model"
	"github.com/pseudomuto/steward/pkg/ui"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

// fixture returns datasets x collections x fields members without categories.
func fixture(datasets, collections, fields int) []model.Dataset {
	result := make([]model.Dataset, datasets)
	for d := range result {
		ds := model.Dataset{
			FidesKey: fmt.Sprintf("db_%d", d),
			Name:     fmt.Sprintf("db_%d", d),
		}

		for c := range collections {
			col := model.Collection{Name: fmt.Sprintf("table_%d", c)}
			for f := range fields {
				col.Fields = append(col.Fields, model.Field{Name: fmt.Sprintf("col_%d", f)})
			}
			ds.Collections = append(ds.Collections, col)
		}

		result[d] = ds
	}

	return result
}

func newWalker(input string, annotateAll bool) (*Walker, *bytes.Buffer) {
	var out bytes.Buffer
	printer := ui.New(&out, false)

	return &Walker{
		Prompter:    NewPrompter(strings.NewReader(input), printer),
		Out:         printer,
		Valid:       validCategories,
		Validate:    true,
		AnnotateAll: annotateAll,
	}, &out
}

func TestWalkAnnotatesEveryDataset(t *testing.T) {
	// 2 datasets, each with 2 collections of 3 fields: 18 members in total
	w, _ := newWalker(strings.Repeat("user\n", 18), true)

	result, err := w.Walk(fixture(2, 2, 3))
	require.NoError(t, err)
	require.False(t, result.Aborted)
	require.Len(t, result.Datasets, 2)

	for _, ds := range result.Datasets {
		require.Equal(t, []string{"user"}, ds.DataCategories, ds.Name)

		for _, col := range ds.Collections {
			require.Equal(t, []string{"user"}, col.DataCategories, "%s.%s", ds.Name, col.Name)

			for _, field := range col.Fields {
				require.Equal(t, []string{"user"}, field.DataCategories, "%s.%s.%s", ds.Name, col.Name, field.Name)
			}
		}
	}
}

func TestWalkFieldsOnly(t *testing.T) {
	w, out := newWalker(strings.Repeat("user\n", 12), false)

	result, err := w.Walk(fixture(2, 2, 3))
	require.NoError(t, err)
	require.Len(t, result.Datasets, 2)
	require.Equal(t, 12, strings.Count(out.String(), "Enter comma separated data categories"))

	for _, ds := range result.Datasets {
		require.Nil(t, ds.DataCategories)
		for _, col := range ds.Collections {
			require.Nil(t, col.DataCategories)
			for _, field := range col.Fields {
				require.Equal(t, []string{"user"}, field.DataCategories)
			}
		}
	}
}

func TestWalkAbort(t *testing.T) {
	w, _ := newWalker("user\nq\ny\n", false)

	result, err := w.Walk(fixture(2, 2, 3))
	require.NoError(t, err)
	require.True(t, result.Aborted)

	want := fixture(2, 2, 3)
	want[0].Collections[0].Fields[0].DataCategories = []string{"user"}

	if diff := cmp.Diff(want, result.Datasets); diff != "" {
		t.Errorf("Walk() mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkAbortOnDataset(t *testing.T) {
	w, _ := newWalker(strings.Repeat("user\n", 9)+"q\ny\n", true)

	result, err := w.Walk(fixture(2, 2, 3))
	require.NoError(t, err)
	require.True(t, result.Aborted)
	require.Len(t, result.Datasets, 2)

	first := result.Datasets[0]
	require.Equal(t, []string{"user"}, first.DataCategories)
	require.Equal(t, []string{"user"}, first.Collections[1].DataCategories)
	require.Equal(t, []string{"user"}, first.Collections[1].Fields[2].DataCategories)

	if diff := cmp.Diff(fixture(2, 2, 3)[1], result.Datasets[1]); diff != "" {
		t.Errorf("second dataset changed (-want +got):\n%s", diff)
	}
}

func TestWalkKeepsExistingCategories(t *testing.T) {
	datasets := fixture(1, 1, 3)
	datasets[0].DataCategories = []string{"system.operations"}
	datasets[0].Collections[0].Fields[1].DataCategories = []string{"user.contact.email"}

	w, out := newWalker("user\nuser\nuser\n", true)

	result, err := w.Walk(datasets)
	require.NoError(t, err)

	ds := result.Datasets[0]
	require.Equal(t, []string{"system.operations"}, ds.DataCategories)
	require.Equal(t, []string{"user"}, ds.Collections[0].DataCategories)
	require.Equal(t, []string{"user"}, ds.Collections[0].Fields[0].DataCategories)
	require.Equal(t, []string{"user.contact.email"}, ds.Collections[0].Fields[1].DataCategories)
	require.Equal(t, []string{"user"}, ds.Collections[0].Fields[2].DataCategories)

	require.NotContains(t, out.String(), "Dataset [db_0] has no data categories")
	require.NotContains(t, out.String(), "Field [table_0.col_1] has no data categories")
	require.Equal(t, 3, strings.Count(out.String(), "Enter comma separated data categories"))
}

func TestWalkSkip(t *testing.T) {
	w, out := newWalker("s\ns\ns\n", false)

	result, err := w.Walk(fixture(1, 1, 3))
	require.NoError(t, err)
	require.False(t, result.Aborted)

	for _, field := range result.Datasets[0].Collections[0].Fields {
		require.NotNil(t, field.DataCategories)
		require.Empty(t, field.DataCategories)
	}
	require.Contains(t, out.String(), "Setting data categories for table_0.col_0 to: []")
}

func TestWalkInputClosed(t *testing.T) {
	w, _ := newWalker("user\n", false)

	result, err := w.Walk(fixture(1, 1, 3))
	require.ErrorIs(t, err, ErrInputClosed)
	require.Nil(t, result)
}

func TestWalkTranscript(t *testing.T) {
	datasets := []model.Dataset{
		{
			FidesKey: "users_db",
			Name:     "Users",
			Collections: []model.Collection{
				{
					Name: "users",
					Fields: []model.Field{
						{Name: "id"},
						{Name: "email"},
						{Name: "created_at"},
					},
				},
			},
		},
	}

	w, out := newWalker("bogus\nuser\nq\nmaybe\nn\nq\ny\n", false)

	result, err := w.Walk(datasets)
	require.NoError(t, err)
	require.True(t, result.Aborted)

	golden.Assert(t, out.String(), "walk_abort.golden")
}
