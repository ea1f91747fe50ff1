package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"requests/listing-create/v1.json", "ListingCreateRequest/1.0.0"},
		{"requests/listing-update/v1.json", "ListingUpdateRequest/1.0.0"},
		{"requests/saved-search-create/v1.json", "SavedSearchCreateRequest/1.0.0"},
		{"requests/malformed.json", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, generateKeyFromPath(tt.path), tt.path)
	}
}

func TestValidatePayloadListingCreate(t *testing.T) {
	valid := []byte(`{
		"title": "Sunny apartment",
		"status_id": 1,
		"agent_id": 2,
		"property_id": 3,
		"list_price": 2500000
	}`)
	require.NoError(t, ValidatePayload("ListingCreateRequest", "1.0.0", valid))

	missingTitle := []byte(`{"status_id": 1, "agent_id": 2, "property_id": 3}`)
	assert.Error(t, ValidatePayload("ListingCreateRequest", "1.0.0", missingTitle))

	unknownField := []byte(`{
		"title": "t",
		"status_id": 1,
		"agent_id": 2,
		"property_id": 3,
		"owner_id": 9
	}`)
	assert.Error(t, ValidatePayload("ListingCreateRequest", "1.0.0", unknownField))

	wrongType := []byte(`{"title": "t", "status_id": "one", "agent_id": 2, "property_id": 3}`)
	assert.Error(t, ValidatePayload("ListingCreateRequest", "1.0.0", wrongType))
}

func TestValidatePayloadSavedSearchCreate(t *testing.T) {
	valid := []byte(`{
		"query": "vasastan",
		"price_max": 4000000,
		"property_types": ["apartment"],
		"send_email": true
	}`)
	require.NoError(t, ValidatePayload("SavedSearchCreateRequest", "1.0.0", valid))

	emptyQuery := []byte(`{"query": ""}`)
	assert.Error(t, ValidatePayload("SavedSearchCreateRequest", "1.0.0", emptyQuery))

	negativePrice := []byte(`{"query": "q", "price_min": -1}`)
	assert.Error(t, ValidatePayload("SavedSearchCreateRequest", "1.0.0", negativePrice))
}

func TestValidatePayloadRejectsUnknownSchema(t *testing.T) {
	err := ValidatePayload("NoSuchRequest", "1.0.0", []byte(`{}`))
	assert.ErrorContains(t, err, "not found")
}

func TestValidatePayloadRejectsInvalidJSON(t *testing.T) {
	err := ValidatePayload("ListingCreateRequest", "1.0.0", []byte(`{not json`))
	assert.ErrorContains(t, err, "not a valid JSON")
}
