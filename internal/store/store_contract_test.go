package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/gocommerce/catalog/internal/domain"
	perrors "github.com/gocommerce/catalog/internal/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const skipIntegrationTests = "CATALOG_SKIP_INTEGRATION_TESTS"

// contractSuite holds the behaviour every ProductStore must share.
// Backend suites embed it and set store and reset in SetupSuite.
type contractSuite struct {
	suite.Suite
	store  ProductStore
	reset  func()
	logger *slog.Logger
	ctx    context.Context
}

// SetupTest empties the store before each test.
func (s *contractSuite) SetupTest() {
	s.reset()
}

var baseTime = time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

func newRecord(name, category string, createdAt time.Time) domain.Record {
	return domain.Record{
		ID:          uuid.NewString(),
		Name:        name,
		Description: "A product used by store tests",
		Price:       19.99,
		Category:    category,
		ImageURL:    "http://images.local/products/" + name + ".png",
		ImageID:     "catalog/products/" + name + ".png",
		IsActive:    true,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func (s *contractSuite) insert(records ...domain.Record) {
	for _, r := range records {
		s.Require().NoError(s.store.Insert(s.ctx, r))
	}
}

func (s *contractSuite) TestInsertAndFindByID() {
	// given
	r := newRecord("Keyboard", "electronics", baseTime)
	s.insert(r)

	// when
	got, err := s.store.FindByID(s.ctx, r.ID)

	// then
	s.Require().NoError(err)
	s.Equal(r, *got)
}

func (s *contractSuite) TestFindByIDNotFound() {
	_, err := s.store.FindByID(s.ctx, uuid.NewString())
	s.ErrorIs(err, perrors.ErrProductNotFound)
}

func (s *contractSuite) TestInsertDuplicateActiveName() {
	// given
	s.insert(newRecord("Keyboard", "electronics", baseTime))

	// when
	err := s.store.Insert(s.ctx, newRecord("Keyboard", "office", baseTime.Add(time.Second)))

	// then
	s.ErrorIs(err, perrors.ErrDuplicateName)
}

func (s *contractSuite) TestInactiveNameCanBeReused() {
	// given
	old := newRecord("Keyboard", "electronics", baseTime)
	old.IsActive = false
	s.insert(old)

	// when
	err := s.store.Insert(s.ctx, newRecord("Keyboard", "electronics", baseTime.Add(time.Second)))

	// then
	s.NoError(err)
}

func (s *contractSuite) TestFindActiveByName() {
	// given
	inactive := newRecord("Mouse", "electronics", baseTime)
	inactive.IsActive = false
	active := newRecord("Mouse", "electronics", baseTime.Add(time.Second))
	s.insert(inactive, active)

	// when
	got, err := s.store.FindActiveByName(s.ctx, "Mouse", "")

	// then
	s.Require().NoError(err)
	s.Equal(active.ID, got.ID)

	// when the only match is excluded
	_, err = s.store.FindActiveByName(s.ctx, "Mouse", active.ID)

	// then
	s.ErrorIs(err, perrors.ErrProductNotFound)

	_, err = s.store.FindActiveByName(s.ctx, "mouse", "")
	s.ErrorIs(err, perrors.ErrProductNotFound, "name match is exact")
}

func (s *contractSuite) TestFind() {
	// given
	keyboard := newRecord("Keyboard", "electronics", baseTime)
	mug := newRecord("Coffee Mug", "kitchen", baseTime.Add(time.Minute))
	mug.Description = "Holds 50% more coffee"
	lamp := newRecord("Desk Lamp", "electronics", baseTime.Add(2*time.Minute))
	lamp.IsActive = false
	s.insert(keyboard, mug, lamp)

	electronics := "electronics"
	inactive := false
	percent := "50%"
	upper := "KEY"
	wildcard := "5_%"
	regexMeta := "Mug.*"

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "no filter returns newest first", filter: Filter{}, want: []string{lamp.ID, mug.ID, keyboard.ID}},
		{name: "category", filter: Filter{Category: &electronics}, want: []string{lamp.ID, keyboard.ID}},
		{name: "inactive only", filter: Filter{IsActive: &inactive}, want: []string{lamp.ID}},
		{name: "search description literally", filter: Filter{Search: &percent}, want: []string{mug.ID}},
		{name: "search is case insensitive", filter: Filter{Search: &upper}, want: []string{keyboard.ID}},
		{name: "like wildcards match literally", filter: Filter{Search: &wildcard}, want: []string{}},
		{name: "regex metacharacters match literally", filter: Filter{Search: &regexMeta}, want: []string{}},
		{name: "filters combine", filter: Filter{Category: &electronics, IsActive: &inactive}, want: []string{lamp.ID}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			// when
			records, err := s.store.Find(s.ctx, tt.filter)

			// then
			s.Require().NoError(err)
			ids := make([]string, 0, len(records))
			for _, r := range records {
				ids = append(ids, r.ID)
			}
			s.Equal(tt.want, ids)
		})
	}
}

func (s *contractSuite) TestUpdate() {
	// given
	r := newRecord("Keyboard", "electronics", baseTime)
	s.insert(r)

	changed := r
	changed.Name = "Mechanical Keyboard"
	changed.Price = 89.5
	changed.ImageURL = "http://images.local/products/new.png"
	changed.ImageID = "catalog/products/new.png"
	changed.IsActive = false
	changed.CreatedAt = baseTime.Add(time.Hour)
	changed.UpdatedAt = baseTime.Add(time.Minute)

	// when
	err := s.store.Update(s.ctx, changed)

	// then
	s.Require().NoError(err)
	got, err := s.store.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal("Mechanical Keyboard", got.Name)
	s.Equal(89.5, got.Price)
	s.Equal("catalog/products/new.png", got.ImageID)
	s.Equal(changed.UpdatedAt, got.UpdatedAt)
	s.True(got.IsActive, "activity flag is not written by Update")
	s.Equal(baseTime, got.CreatedAt, "creation time is not written by Update")
}

func (s *contractSuite) TestUpdateNotFound() {
	err := s.store.Update(s.ctx, newRecord("Ghost", "electronics", baseTime))
	s.ErrorIs(err, perrors.ErrProductNotFound)
}

func (s *contractSuite) TestUpdateIntoActiveName() {
	// given
	a := newRecord("Keyboard", "electronics", baseTime)
	b := newRecord("Mouse", "electronics", baseTime)
	s.insert(a, b)

	// when
	b.Name = "Keyboard"
	err := s.store.Update(s.ctx, b)

	// then
	s.ErrorIs(err, perrors.ErrDuplicateName)
}

func (s *contractSuite) TestDeactivate() {
	// given
	r := newRecord("Keyboard", "electronics", baseTime)
	s.insert(r)
	at := baseTime.Add(time.Minute)

	// when
	err := s.store.Deactivate(s.ctx, r.ID, at)

	// then
	s.Require().NoError(err)
	got, err := s.store.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.False(got.IsActive)
	s.Equal(at, got.UpdatedAt)
	s.Equal(r.Name, got.Name)

	// when deactivated again
	err = s.store.Deactivate(s.ctx, r.ID, at.Add(time.Minute))

	// then
	s.ErrorIs(err, perrors.ErrAlreadyInactive)
}

func (s *contractSuite) TestDeactivateMissing() {
	err := s.store.Deactivate(s.ctx, uuid.NewString(), baseTime)
	s.ErrorIs(err, perrors.ErrAlreadyInactive)
}

func (s *contractSuite) TestDeleteAll() {
	// given
	s.insert(newRecord("Keyboard", "electronics", baseTime), newRecord("Mouse", "electronics", baseTime))

	// when
	n, err := s.store.DeleteAll(s.ctx)

	// then
	s.Require().NoError(err)
	s.EqualValues(2, n)
	records, err := s.store.Find(s.ctx, Filter{})
	s.Require().NoError(err)
	s.Empty(records)
}
