package cmd

import (
	"testing"

	"github.com/ekomkassa/hubctl/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActivator struct {
	active      *model.Profile
	selected    string
	selectedSet bool
}

func (f *fakeActivator) GetActiveProfile() (*model.Profile, error) {
	return f.active, nil
}

func (f *fakeActivator) SetActiveProfile(name string) error {
	f.selected = name
	f.selectedSet = true

	return nil
}

func TestActivateIfFirstSelectsWhenNoneActive(t *testing.T) {
	db := &fakeActivator{}

	isActive, err := activateIfFirst(db, "prod")
	require.NoError(t, err)
	assert.True(t, isActive)
	assert.Equal(t, "prod", db.selected)
}

func TestActivateIfFirstKeepsExistingSelection(t *testing.T) {
	db := &fakeActivator{active: &model.Profile{Name: "prod"}}

	isActive, err := activateIfFirst(db, "staging")
	require.NoError(t, err)
	assert.False(t, isActive)
	assert.False(t, db.selectedSet)
}

func TestActivateIfFirstReportsAlreadyActive(t *testing.T) {
	db := &fakeActivator{active: &model.Profile{Name: "prod"}}

	isActive, err := activateIfFirst(db, "prod")
	require.NoError(t, err)
	assert.True(t, isActive)
	assert.False(t, db.selectedSet)
}
