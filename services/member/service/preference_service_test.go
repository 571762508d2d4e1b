package service

import (
	"testing"

	"masil/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryPtr(c models.PreferenceCategory) *models.PreferenceCategory { return &c }

func TestValidatePriorities(t *testing.T) {
	err := validatePriorities(
		categoryPtr(models.CategoryHeight),
		categoryPtr(models.CategoryReligion),
		categoryPtr(models.CategoryAsset),
	)
	assert.NoError(t, err)
}

func TestValidatePriorities_PartiallySet(t *testing.T) {
	err := validatePriorities(categoryPtr(models.CategoryHeight), nil, nil)
	assert.NoError(t, err)
}

func TestValidatePriorities_Duplicate(t *testing.T) {
	err := validatePriorities(
		categoryPtr(models.CategoryHeight),
		categoryPtr(models.CategoryHeight),
		nil,
	)
	assert.ErrorIs(t, err, ErrInvalidPriorities)
}

func TestValidatePriorities_UnknownCategory(t *testing.T) {
	unknown := models.PreferenceCategory("UNKNOWN")
	err := validatePriorities(&unknown, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidPriorities)
}

func TestJobListRoundTrip(t *testing.T) {
	jobs := []models.JobType{models.JobOffice, models.JobProfessional}

	data, err := marshalJobs(jobs)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	restored, err := unmarshalJobs(data)
	require.NoError(t, err)
	assert.Equal(t, jobs, restored)
}

func TestJobListRoundTrip_Empty(t *testing.T) {
	data, err := marshalJobs(nil)
	require.NoError(t, err)
	assert.Empty(t, data)

	restored, err := unmarshalJobs("")
	require.NoError(t, err)
	assert.Nil(t, restored)
}
