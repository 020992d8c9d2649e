package ids

import (
	"testing"

	"github.com/arthur-debert/wixsync/pkg/collections"
	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	t.Run("uppercase_form_is_first_candidate", func(t *testing.T) {
		pool := collections.New[string]()
		id, err := GenerateID(pool, "component")
		require.NoError(t, err)
		assert.Equal(t, "COMPONENT", id)

		has, _ := pool.Has("COMPONENT")
		assert.True(t, has, "allocated id must be registered")
	})

	t.Run("suffix_is_appended_to_unnormalized_base", func(t *testing.T) {
		pool := collections.New[string]()
		first, err := GenerateID(pool, "component")
		require.NoError(t, err)
		second, err := GenerateID(pool, "component")
		require.NoError(t, err)
		third, err := GenerateID(pool, "component")
		require.NoError(t, err)

		assert.Equal(t, []string{"COMPONENT", "component1", "component2"}, []string{first, second, third})
	})

	t.Run("skips_preseeded_candidates", func(t *testing.T) {
		pool := collections.New[string]()
		for _, known := range []string{"MAIN", "Main1", "Main2"} {
			require.NoError(t, pool.Add(known))
		}
		id, err := GenerateID(pool, "Main")
		require.NoError(t, err)
		assert.Equal(t, "Main3", id)
	})

	t.Run("empty_base_is_rejected", func(t *testing.T) {
		_, err := GenerateID(collections.New[string](), "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNullItem))
	})
}

func TestGenerateIDDeterminism(t *testing.T) {
	run := func() []string {
		pool := collections.New[string]()
		require.NoError(t, pool.Add("ROOT_a.txtComponent"))
		var out []string
		for _, name := range []string{"a.txt", "a.txt", "b.txt"} {
			id, err := GenerateScopedID(pool, "root", name+"Component")
			require.NoError(t, err)
			out = append(out, id)
		}
		return out
	}

	first := run()
	assert.Equal(t, []string{"root_a.txtComponent1", "root_a.txtComponent2", "ROOT_b.txtComponent"}, first)
	assert.Equal(t, first, run())
}

func TestGenerateScopedID(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		leaf  string
		want  string
	}{
		{"scenario_root", "root", "readme.txtComponent", "ROOT_readme.txtComponent"},
		{"scenario_bin", "bin", "app.exeComponent", "BIN_app.exeComponent"},
		{"scope_with_spaces", "my docs", "guide.pdfComponent", "MY_DOCS_guide.pdfComponent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateScopedID(collections.New[string](), tt.scope, tt.leaf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestDirectoryID(t *testing.T) {
	assert.Equal(t, "MYAPP", DirectoryID("MyApp"))
	assert.Equal(t, "MY_APP_DATA", DirectoryID("My App Data"))
	assert.Equal(t, "BIN", DirectoryID("bin"))
}
