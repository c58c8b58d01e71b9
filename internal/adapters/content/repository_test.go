package content

import (
	"bytes"
	"testing"

	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citizenshipbridge/internal/domain"
)

func TestNewRepository_EmbeddedContent(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	for _, slug := range []string{"home", "about", "contact", "donate", "partner", "volunteer", "privacy"} {
		p, err := repo.Page(slug)
		require.NoError(t, err, slug)
		assert.NotEmpty(t, p.Title, slug)
		assert.NotEmpty(t, p.Sections, slug)
	}

	org := repo.Organization()
	assert.Equal(t, "Citizenship Bridge Inc.", org.Name)
	assert.Equal(t, "info@citizenshipbridge.org", org.Email)
	assert.NotEmpty(t, repo.Navigation())
}

func TestRepository_PageNotFound(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)
	_, err = repo.Page("login")
	require.ErrorIs(t, err, domain.ErrPageNotFound)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "pages: [::"},
		{"missing slug", "pages:\n  - title: X\n"},
		{"duplicate slug", "pages:\n  - slug: a\n  - slug: a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestContactCard(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	data, err := ContactCard(repo.Organization())
	require.NoError(t, err)

	card, err := vcard.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)
	assert.Equal(t, "4.0", card.Value(vcard.FieldVersion))
	assert.Equal(t, "Citizenship Bridge Inc.", card.PreferredValue(vcard.FieldFormattedName))
	assert.Equal(t, "info@citizenshipbridge.org", card.PreferredValue(vcard.FieldEmail))
	addr := card.Address()
	require.NotNil(t, addr)
	assert.Equal(t, "Anytown", addr.Locality)
	assert.Equal(t, "12345", addr.PostalCode)
}
