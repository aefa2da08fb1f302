package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentai/campus_bot/internal/model"
)

func TestBuildFiltersAndGroups(t *testing.T) {
	idx := Build([]model.Person{
		{ID: 1, FirstName: "Anna", LastName: "Meyer", AcademicDegree: "Prof. Dr."},
		{ID: 2, FirstName: "Bernd", LastName: "Meyer", AcademicDegree: "Prof."},
		{ID: 3, FirstName: "Clara", LastName: "Huber", AcademicDegree: "Prof. Dr.-Ing."},
		{ID: 4, FirstName: "Dora", LastName: "Schmidt", AcademicDegree: "M.Sc."},
		{ID: 5, FirstName: "Emil", LastName: "Weber", AcademicDegree: "Prof.", IsDeleted: true},
	})

	require.Equal(t, 2, idx.Len())

	group, err := idx.Resolve("Meyer")
	require.NoError(t, err)
	require.Len(t, group, 2)
	assert.Equal(t, int64(1), group[0].ID)
	assert.Equal(t, int64(2), group[1].ID)

	// The lecturer without professorial rank and the deleted record must not
	// be resolvable.
	group, err = idx.Resolve("Schmidt")
	require.NoError(t, err)
	for _, p := range group {
		assert.NotEqual(t, int64(4), p.ID)
		assert.NotEqual(t, int64(5), p.ID)
	}
}

func TestResolvePicksClosestSurname(t *testing.T) {
	idx := Build([]model.Person{
		{ID: 1, LastName: "Meyer", AcademicDegree: "Prof."},
		{ID: 2, LastName: "Huber", AcademicDegree: "Prof."},
	})

	// "Mayer" is distance 1 from "Meyer" and distance 3 from "Huber".
	group, err := idx.Resolve("Mayer")
	require.NoError(t, err)
	require.Len(t, group, 1)
	assert.Equal(t, int64(1), group[0].ID)
}

func TestResolveIsDeterministicOnTies(t *testing.T) {
	idx := Build([]model.Person{
		{ID: 1, LastName: "Maier", AcademicDegree: "Prof."},
		{ID: 2, LastName: "Mayer", AcademicDegree: "Prof."},
	})

	// "Meier" has distance 1 to both surnames; the first-built key wins.
	for i := 0; i < 10; i++ {
		group, err := idx.Resolve("Meier")
		require.NoError(t, err)
		require.Len(t, group, 1)
		assert.Equal(t, int64(1), group[0].ID)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	idx := Build([]model.Person{
		{ID: 1, LastName: "Meyer", AcademicDegree: "Prof."},
		{ID: 2, LastName: "Huber", AcademicDegree: "Prof."},
	})

	first, err := idx.Resolve("Hubre")
	require.NoError(t, err)
	second, err := idx.Resolve("Hubre")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveAlwaysReturnsAGroup(t *testing.T) {
	idx := Build([]model.Person{
		{ID: 1, LastName: "Meyer", AcademicDegree: "Prof."},
	})

	// Nearest-neighbour lookup: even nonsense input resolves somewhere.
	group, err := idx.Resolve("xxxxxxxxxxxxxxxx")
	require.NoError(t, err)
	assert.NotEmpty(t, group)
}

func TestResolveEmptyIndex(t *testing.T) {
	idx := Build(nil)

	_, err := idx.Resolve("Meyer")
	assert.ErrorIs(t, err, ErrNoProfessors)
}

func TestResolveReturnsACopy(t *testing.T) {
	idx := Build([]model.Person{
		{ID: 1, LastName: "Meyer", AcademicDegree: "Prof."},
		{ID: 2, LastName: "Meyer", AcademicDegree: "Prof. Dr."},
	})

	group, err := idx.Resolve("Meyer")
	require.NoError(t, err)
	group[0].LastName = "mutated"

	again, err := idx.Resolve("Meyer")
	require.NoError(t, err)
	assert.Equal(t, "Meyer", again[0].LastName)
}
