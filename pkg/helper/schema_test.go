package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claritel/claritel_go_admin_service/models"
	"claritel/claritel_go_admin_service/pkg/helper"
)

func TestDeriveColumnName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Customer Email", "customer_email"},
		{"  Phone   Number ", "phone_number"},
		{"Price ($)", "price_"},
		{"UPPER", "upper"},
		{"already_slugged", "already_slugged"},
		{"tabs\tand\nnewlines", "tabs_and_newlines"},
		{"héllo wörld", "hllo_wrld"},
		{"123 go", "123_go"},
	}

	for _, tc := range cases {
		got := helper.DeriveColumnName(tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)

		// derivation must be idempotent
		assert.Equal(t, got, helper.DeriveColumnName(got), "input %q", tc.in)
	}
}

func TestAddColumnFirstIsAlwaysPrimary(t *testing.T) {
	cols, err := helper.AddColumn(nil, "Customer Email", "string", false, false)
	require.NoError(t, err)
	require.Len(t, cols, 1)

	assert.Equal(t, models.Column{
		Name:         "customer_email",
		DisplayName:  "Customer Email",
		Type:         "string",
		Required:     false,
		IsPrimaryKey: true,
	}, cols[0])
}

func TestAddColumnDuplicateName(t *testing.T) {
	cols, err := helper.AddColumn(nil, "Email", "string", false, true)
	require.NoError(t, err)

	_, err = helper.AddColumn(cols, "E Mail!", "string", false, false)
	require.NoError(t, err) // e_mail, no collision

	_, err = helper.AddColumn(cols, "EMAIL", "string", true, false)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAddColumnEmptyDisplayName(t *testing.T) {
	var validationErr *models.ValidationError

	_, err := helper.AddColumn(nil, "", "string", false, false)
	require.ErrorAs(t, err, &validationErr)

	_, err = helper.AddColumn(nil, "   ", "string", false, false)
	require.ErrorAs(t, err, &validationErr)

	// symbols only: slug comes out empty
	_, err = helper.AddColumn(nil, "!!!", "string", false, false)
	require.ErrorAs(t, err, &validationErr)
}

func TestAddColumnSecondPrimaryRejected(t *testing.T) {
	cols, err := helper.AddColumn(nil, "Id", "string", false, true)
	require.NoError(t, err)

	_, err = helper.AddColumn(cols, "Email", "string", false, true)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestDeleteColumnPromotesFirstRemaining(t *testing.T) {
	cols := []models.Column{
		{Name: "id", DisplayName: "Id", Type: "string", IsPrimaryKey: true},
		{Name: "email", DisplayName: "Email", Type: "string"},
	}

	next, err := helper.DeleteColumn(cols, "id")
	require.NoError(t, err)
	require.Len(t, next, 1)

	assert.Equal(t, "email", next[0].Name)
	assert.True(t, next[0].IsPrimaryKey)

	// deleting the last column leaves an empty, primary-less set
	next, err = helper.DeleteColumn(next, "email")
	require.NoError(t, err)
	assert.Empty(t, next)
}

func TestDeleteColumnNonPrimaryKeepsPrimary(t *testing.T) {
	cols := []models.Column{
		{Name: "id", DisplayName: "Id", Type: "string", IsPrimaryKey: true},
		{Name: "email", DisplayName: "Email", Type: "string"},
		{Name: "phone", DisplayName: "Phone", Type: "string"},
	}

	next, err := helper.DeleteColumn(cols, "email")
	require.NoError(t, err)
	require.Len(t, next, 2)

	assert.True(t, next[0].IsPrimaryKey)
	assert.False(t, next[1].IsPrimaryKey)
}

func TestDeleteColumnUnknown(t *testing.T) {
	var validationErr *models.ValidationError

	_, err := helper.DeleteColumn(nil, "ghost")
	require.ErrorAs(t, err, &validationErr)
}

func TestEditColumnRename(t *testing.T) {
	cols := []models.Column{
		{Name: "id", DisplayName: "Id", Type: "string", IsPrimaryKey: true},
		{Name: "email", DisplayName: "Email", Type: "string"},
	}

	next, err := helper.EditColumn(cols, "email", "Customer Email", "string", true, false)
	require.NoError(t, err)

	assert.Equal(t, "customer_email", next[1].Name)
	assert.Equal(t, "Customer Email", next[1].DisplayName)
	assert.True(t, next[1].Required)

	// original set untouched
	assert.Equal(t, "email", cols[1].Name)
}

func TestEditColumnNameCollision(t *testing.T) {
	cols := []models.Column{
		{Name: "id", DisplayName: "Id", Type: "string", IsPrimaryKey: true},
		{Name: "email", DisplayName: "Email", Type: "string"},
	}

	var validationErr *models.ValidationError
	_, err := helper.EditColumn(cols, "email", "ID", "string", false, false)
	require.ErrorAs(t, err, &validationErr)

	// re-deriving a column's own name is not a collision
	_, err = helper.EditColumn(cols, "email", "  EMAIL  ", "string", false, false)
	require.NoError(t, err)
}

func TestEditColumnPrimaryKeyExclusivity(t *testing.T) {
	cols := []models.Column{
		{Name: "id", DisplayName: "Id", Type: "string", IsPrimaryKey: true},
		{Name: "email", DisplayName: "Email", Type: "string"},
	}

	var validationErr *models.ValidationError

	// flagging a second column primary is rejected
	_, err := helper.EditColumn(cols, "email", "Email", "string", false, true)
	require.ErrorAs(t, err, &validationErr)

	// stripping the only primary is rejected too
	_, err = helper.EditColumn(cols, "id", "Id", "string", false, false)
	require.ErrorAs(t, err, &validationErr)

	// keeping the primary where it is works
	next, err := helper.EditColumn(cols, "id", "Id", "number", true, true)
	require.NoError(t, err)
	assert.Equal(t, "number", next[0].Type)
}

func TestNormalizeColumnSet(t *testing.T) {
	t.Run("derives missing names and promotes first", func(t *testing.T) {
		cols, err := helper.NormalizeColumnSet([]models.Column{
			{DisplayName: "Customer Email", Type: "string"},
			{DisplayName: "Phone", Type: "string"},
		})
		require.NoError(t, err)

		assert.Equal(t, "customer_email", cols[0].Name)
		assert.True(t, cols[0].IsPrimaryKey)
		assert.False(t, cols[1].IsPrimaryKey)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := helper.NormalizeColumnSet([]models.Column{
			{DisplayName: "Email", Type: "string"},
			{DisplayName: "E M A I L", Type: "string"},
		})

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects two primaries", func(t *testing.T) {
		_, err := helper.NormalizeColumnSet([]models.Column{
			{DisplayName: "A", Type: "string", IsPrimaryKey: true},
			{DisplayName: "B", Type: "string", IsPrimaryKey: true},
		})

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := helper.NormalizeColumnSet([]models.Column{
			{DisplayName: "A", Type: "uuid"},
		})

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("empty set stays empty", func(t *testing.T) {
		cols, err := helper.NormalizeColumnSet(nil)
		require.NoError(t, err)
		assert.Empty(t, cols)
	})
}
