package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/emersion/go-vcard"

	"citizenshipbridge/internal/domain"
)

// ContactCard encodes the organization as a vCard 4.0 document.
func ContactCard(org domain.Organization) ([]byte, error) {
	card := make(vcard.Card)
	card.SetKind(vcard.KindOrganization)
	card.SetValue(vcard.FieldFormattedName, org.Name)
	card.SetValue(vcard.FieldOrganization, org.Name)
	if org.Email != "" {
		card.SetValue(vcard.FieldEmail, org.Email)
	}
	if org.Phone != "" {
		card.SetValue(vcard.FieldTelephone, "tel:"+org.Phone)
	}
	if org.URL != "" {
		card.SetValue(vcard.FieldURL, org.URL)
	}
	card.SetAddress(&vcard.Address{
		StreetAddress: strings.Join(org.Street, ", "),
		Locality:      org.Locality,
		Region:        org.Region,
		PostalCode:    org.Postcode,
		Country:       org.Country,
	})
	vcard.ToV4(card)

	var buf bytes.Buffer
	if err := vcard.NewEncoder(&buf).Encode(card); err != nil {
		return nil, fmt.Errorf("encode vcard: %w", err)
	}
	return buf.Bytes(), nil
}
